package concurrent

import "context"

// Supplier defines an arbitrary operation producing a value
// of type T
type Supplier[T any] interface {
	Supply(ctx context.Context) (T, error)
}

// SupplierFunc allows a function to act as a Supplier
type SupplierFunc[T any] func(ctx context.Context) (T, error)

// Supply implementation of Supplier for SupplierFunc
func (f SupplierFunc[T]) Supply(ctx context.Context) (T, error) {
	return f(ctx)
}

// Result of a supplier
type Result[T any] struct {
	value T
	err   error
}

// Value returned by the supplier
func (r Result[T]) Value() T {
	return r.value
}

// Err returned by the supplier
func (r Result[T]) Err() error {
	return r.err
}
