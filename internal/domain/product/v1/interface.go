package productv1

import "context"

// Registry is the set of active instruments.
type Registry interface {
	// Products returns the active product ids in a stable order.
	Products() []string
	// Add registers a product id and reports whether it was new.
	Add(productID string) bool
	// Load seeds the set from the discovery store.
	Load(ctx context.Context) error
	// Watch adds products announced on the discovery channel until ctx is done.
	Watch(ctx context.Context) error
}
