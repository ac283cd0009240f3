package format

import (
	"strings"
	"sync"
)

// Registry maps file extensions to formatters.
// Extensions are stored without the leading dot, lowercased.
type Registry struct {
	mu    sync.RWMutex
	byExt map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Formatter)}
}

// NewRegistryFromCommands builds a registry from an extension-to-argv
// table, the shape the config file uses.
func NewRegistryFromCommands(commands map[string][]string) (*Registry, error) {
	r := NewRegistry()
	for ext, argv := range commands {
		f, err := NewCommand(argv)
		if err != nil {
			return nil, err
		}
		r.Register(ext, f)
	}
	return r, nil
}

// Register associates a formatter with a file extension.
func (r *Registry) Register(ext string, f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byExt[normalizeExt(ext)] = f
}

// For returns the formatter registered for the extension, if any.
func (r *Registry) For(ext string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.byExt[normalizeExt(ext)]
	return f, ok
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
