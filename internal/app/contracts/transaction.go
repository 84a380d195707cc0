package contracts

import "context"

// Transactor runs fn as one unit of work. Repository calls made with the ctx
// passed to fn take part in the same transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
