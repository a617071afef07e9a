package concurrent

import (
	"golang.org/x/sync/errgroup"

	"github.com/prefabric/prefabric/pkg/sequence"
)

// Concurrent runs the action function for each element of the iterator in a
// separate goroutine. It waits for all goroutines to finish. If action
// returns an error, it returns the first error encountered.
func Concurrent[T any](i *sequence.Iterator[T], action func(T) error) error {
	group := errgroup.Group{}
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		group.Go(func() error {
			return action(value)
		})
	}

	return group.Wait()
}

// ConcurrentLimit behaves like Concurrent but bounds the number of
// simultaneously running goroutines.
func ConcurrentLimit[T any](i *sequence.Iterator[T], limit int, action func(T) error) error {
	group := errgroup.Group{}
	group.SetLimit(limit)
	next, stop := i.Pull()
	defer stop()

	for {
		value, valid := next()
		if !valid {
			break
		}

		group.Go(func() error {
			return action(value)
		})
	}

	return group.Wait()
}
