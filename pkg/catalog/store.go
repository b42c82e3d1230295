package catalog

// Store holds a validated, immutable set of use case definitions. Array order
// in the source document is display order.
type Store struct {
	order []UseCaseID
	byID  map[UseCaseID]UseCaseDefinition
}

// Get returns the definition for id. The boolean is false when the id is not
// recognised; callers treat that as "no use case selected".
func (s *Store) Get(id UseCaseID) (UseCaseDefinition, bool) {
	def, ok := s.byID[id]
	return def, ok
}

// List returns every definition in display order.
func (s *Store) List() []UseCaseDefinition {
	out := make([]UseCaseDefinition, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len reports the number of use cases in the store.
func (s *Store) Len() int {
	return len(s.order)
}
