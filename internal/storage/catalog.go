package storage

import (
	"sync"

	"github.com/polyrpc/demoapi/pkg/resource"
)

// ModelCatalog holds the AI models known to the backend, keyed by name.
// Unlike the id-assigning collections, the catalog is a fixed registry:
// models are registered at startup and only their Loaded flag changes.
type ModelCatalog struct {
	mu     sync.RWMutex
	models []resource.ModelInfo
}

// NewModelCatalog creates a catalog with the given models.
func NewModelCatalog(models ...resource.ModelInfo) *ModelCatalog {
	return &ModelCatalog{
		models: append([]resource.ModelInfo(nil), models...),
	}
}

// List returns a snapshot of all models in registration order.
func (c *ModelCatalog) List() []resource.ModelInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]resource.ModelInfo, len(c.models))
	copy(out, c.models)
	return out
}

// Find returns the model with the given name.
func (c *ModelCatalog) Find(name string) (resource.ModelInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, m := range c.models {
		if m.Name == name {
			return m, true
		}
	}
	return resource.ModelInfo{}, false
}

// SetLoaded flips the loaded flag of a named model. Returns false if no
// model has that name.
func (c *ModelCatalog) SetLoaded(name string, loaded bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.models {
		if c.models[i].Name == name {
			c.models[i].Loaded = loaded
			return true
		}
	}
	return false
}
