package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/milindvishnoi/FSND/extension/types"
)

var (
	// extensionRegistry stores all registered modules
	extensionRegistry = make(map[string]types.Interface)
	// mutex protects concurrent access to registry
	mutex = &sync.RWMutex{}
)

// Register registers a module, normally from its package init. A later
// registration under the same name replaces the earlier one.
func Register(extension types.Interface) {
	mutex.Lock()
	defer mutex.Unlock()

	extensionRegistry[extension.Name()] = extension
}

// Get returns a registered module by name
func Get(name string) (types.Interface, bool) {
	mutex.RLock()
	defer mutex.RUnlock()

	e, ok := extensionRegistry[name]
	return e, ok
}

// Names returns the registered module names in ascending order
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves names to modules in the given order. An empty list selects
// every registered module.
func Select(names []string) ([]types.Interface, error) {
	if len(names) == 0 {
		names = Names()
	}

	mutex.RLock()
	defer mutex.RUnlock()

	seen := make(map[string]bool, len(names))
	out := make([]types.Interface, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		e, ok := extensionRegistry[name]
		if !ok {
			return nil, fmt.Errorf("module %q is not registered", name)
		}
		seen[name] = true
		out = append(out, e)
	}
	return out, nil
}

// ClearRegistry clears the registry (mainly for testing)
func ClearRegistry() {
	mutex.Lock()
	defer mutex.Unlock()
	extensionRegistry = make(map[string]types.Interface)
}
