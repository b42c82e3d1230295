package catalog

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	UseCases []UseCaseDefinition `yaml:"use_cases"`
}

// Load parses a catalog document and validates its integrity. Violations are
// load-time failures so a malformed catalog never reaches a running wizard.
func Load(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse document: %w", err)
	}
	if len(doc.UseCases) == 0 {
		return nil, fmt.Errorf("catalog: document defines no use cases")
	}

	store := &Store{
		order: make([]UseCaseID, 0, len(doc.UseCases)),
		byID:  make(map[UseCaseID]UseCaseDefinition, len(doc.UseCases)),
	}
	for _, def := range doc.UseCases {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}
		if _, exists := store.byID[def.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate use case %q", def.ID)
		}
		store.order = append(store.order, def.ID)
		store.byID[def.ID] = def
	}

	for _, id := range KnownUseCaseIDs {
		if _, ok := store.byID[id]; !ok {
			return nil, fmt.Errorf("catalog: missing use case %q", id)
		}
	}
	if len(store.order) != len(KnownUseCaseIDs) {
		return nil, fmt.Errorf("catalog: document defines %d use cases, want %d", len(store.order), len(KnownUseCaseIDs))
	}

	return store, nil
}

// LoadFS reads the catalog document at path from fsys and loads it.
func LoadFS(fsys fs.FS, path string) (*Store, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Load(data)
}

func validateDefinition(def UseCaseDefinition) error {
	id := UseCaseID(strings.TrimSpace(string(def.ID)))
	if id == "" {
		return fmt.Errorf("catalog: use case with empty id")
	}
	if !knownUseCase(id) {
		return fmt.Errorf("catalog: unrecognised use case %q", id)
	}
	if strings.TrimSpace(def.Label) == "" {
		return fmt.Errorf("catalog: use case %q has no label", id)
	}
	if strings.TrimSpace(def.Description) == "" {
		return fmt.Errorf("catalog: use case %q has no description", id)
	}
	if len(def.Included) == 0 {
		return fmt.Errorf("catalog: use case %q has no included scope items", id)
	}

	expansions := make(map[string]struct{}, len(def.Expansions))
	for _, exp := range def.Expansions {
		if strings.TrimSpace(exp.ID) == "" {
			return fmt.Errorf("catalog: use case %q has an expansion with empty id", id)
		}
		if strings.TrimSpace(exp.Label) == "" {
			return fmt.Errorf("catalog: use case %q expansion %q has no label", id, exp.ID)
		}
		if _, exists := expansions[exp.ID]; exists {
			return fmt.Errorf("catalog: use case %q duplicate expansion %q", id, exp.ID)
		}
		expansions[exp.ID] = struct{}{}
	}

	// Every unlock reference must point at an expansion this use case offers.
	for _, item := range def.NotIncluded {
		if strings.TrimSpace(item.Text) == "" {
			return fmt.Errorf("catalog: use case %q has a scope item with empty text", id)
		}
		for _, ref := range item.UnlockedBy {
			if _, ok := expansions[ref]; !ok {
				return fmt.Errorf("catalog: use case %q scope item %q references unknown expansion %q", id, item.Text, ref)
			}
		}
	}
	return nil
}

func knownUseCase(id UseCaseID) bool {
	for _, known := range KnownUseCaseIDs {
		if id == known {
			return true
		}
	}
	return false
}
