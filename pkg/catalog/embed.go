package catalog

import (
	"embed"
	"sync"
)

//go:embed data/use_cases.yaml
var embedded embed.FS

var defaultStore = sync.OnceValue(func() *Store {
	store, err := LoadFS(embedded, "data/use_cases.yaml")
	if err != nil {
		// The embedded document ships with the binary; failing to load it is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return store
})

// Default returns the store built from the embedded catalog document.
func Default() *Store {
	return defaultStore()
}
