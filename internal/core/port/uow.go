package port

import "context"

// UnitOfWork runs fn within a single store transaction. Repositories route
// their statements through the transaction carried in fn's context, so all
// mutations of one request commit atomically, once.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
