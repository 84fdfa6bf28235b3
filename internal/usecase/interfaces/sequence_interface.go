package interfaces

import "context"

//go:generate mockgen -source=sequence_interface.go -destination=mocks/sequence_interface_mock.go -package=mock_interfaces

// ISequence hands out strictly increasing numbers per sequence name.
//
// floor is only used the first time a name is seen: the first value returned is
// greater than both floor and anything already stored for that sequence.
// A number is never returned twice, even when the caller later discards it.
type ISequence interface {
	Next(ctx context.Context, name string, floor int64) (int64, error)
}
