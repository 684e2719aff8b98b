package render

import "sync"

// Renderer projects a preview into a visual tree. Renderers are pure.
type Renderer func(Preview) *Node

// Registry maps template ids to renderers. Ids keep their first
// registration order, which drives default selection and enumeration.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	renderers map[string]Renderer
	preferred string
}

// Option configures a Registry.
type Option func(*Registry)

// WithDefault sets the id used when a lookup misses. When it is not
// registered the first registered id is used instead.
func WithDefault(id string) Option {
	return func(r *Registry) {
		r.preferred = id
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts or overwrites a renderer. Overwriting keeps the original
// position.
func (r *Registry) Register(id string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[id]; !exists {
		r.order = append(r.order, id)
	}
	r.renderers[id] = renderer
}

// Resolve returns the renderer registered under id.
func (r *Registry) Resolve(id string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[id]
	return renderer, ok
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// DefaultID returns the id used for fallback, or "" when the registry is
// empty.
func (r *Registry) DefaultID() string {
	if r == nil {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultIDLocked()
}

func (r *Registry) defaultIDLocked() string {
	if _, ok := r.renderers[r.preferred]; ok {
		return r.preferred
	}
	if len(r.order) == 0 {
		return ""
	}
	return r.order[0]
}

// Select resolves id, falling back to the default template when id is
// unknown. It reports false only when the registry is empty; callers then
// show NoPreview.
func (r *Registry) Select(id string) (string, Renderer, bool) {
	if r == nil {
		return "", nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if renderer, ok := r.renderers[id]; ok {
		return id, renderer, true
	}
	fallback := r.defaultIDLocked()
	if fallback == "" {
		return "", nil, false
	}
	return fallback, r.renderers[fallback], true
}

// Render selects a template and renders the preview, degrading to
// NoPreview. It returns the id actually used.
func (r *Registry) Render(id string, p Preview) (string, *Node) {
	used, renderer, ok := r.Select(id)
	if !ok {
		return "", NoPreview()
	}
	return used, renderer(p)
}

const (
	Template1ID = "template1"
	Template2ID = "template2"
	Template3ID = "template3"
	Template4ID = "template4"
)

// NewDefaultRegistry registers the built-in templates in order.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	r.Register(Template1ID, Template1)
	r.Register(Template2ID, Template2)
	r.Register(Template3ID, Template3)
	r.Register(Template4ID, Template4)
	return r
}
