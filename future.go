package scrollscene

import (
	"context"
	stderrors "errors"
	"sync"
)

// Future holds the result of work that finishes at some later point.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve settles the future. Only the first call has an effect.
func (f *Future[T]) resolve(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Done returns a channel that is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Ready returns true if the future has settled.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result blocks until the future settles and returns its value and error.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}

// Wait is like Result, but gives up when the context is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// All returns a future that settles once every one of the given futures has settled. Its value holds each
// future's value in order, and its error joins every failure.
func All[T any](futures ...*Future[T]) *Future[[]T] {

	joined := newFuture[[]T]()

	go func() {
		values := make([]T, len(futures))
		var errs []error
		for i, f := range futures {
			value, err := f.Result()
			values[i] = value
			if err != nil {
				errs = append(errs, err)
			}
		}
		joined.resolve(values, stderrors.Join(errs...))
	}()

	return joined

}
