package catalog

import "sync"

// Cache keys for the two property collections. Cached responses are
// always stored and invalidated under one of these keys, never through a
// global broadcast.
const (
	CollectionKey = "properties"
	FeaturedKey   = "properties:featured"
)

// Notifier is a small pub/sub hub keyed by collection name. Subscribers
// register a callback for a specific key; a mutation invalidates only the
// keys it affects.
type Notifier struct {
	mu   sync.Mutex
	subs map[string][]func()
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string][]func())}
}

// OnInvalidate registers fn to run whenever key is invalidated. The
// callback must not block; it typically just drops a cache entry.
func (n *Notifier) OnInvalidate(key string, fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[key] = append(n.subs[key], fn)
}

// Invalidate runs all callbacks registered for key.
func (n *Notifier) Invalidate(key string) {
	n.mu.Lock()
	fns := append([]func(){}, n.subs[key]...)
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
