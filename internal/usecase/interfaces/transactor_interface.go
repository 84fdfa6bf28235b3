package interfaces

import "context"

//go:generate mockgen -source=transactor_interface.go -destination=mocks/transactor_interface_mock.go -package=mock_interfaces

// ITransactor runs a unit of work inside a single persistence transaction.
//
// The transaction travels in the context handed to fn; repositories called with that
// context join it. fn returning an error (or panicking) rolls everything back.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
