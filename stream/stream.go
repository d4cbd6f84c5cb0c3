package stream

import (
	"context"
)

// Slice, et al., taken from:
// https://betterprogramming.pub/writing-a-stream-api-in-go-afbc3c4350e2

func Slice[T any](ctx context.Context, in []T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, element := range in {
			select {
			case <-ctx.Done():
				return
			case out <- element:
			}
		}
	}()
	return out
}

func Filter[T any](ctx context.Context, predicate func(T) bool, in <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for element := range in {
			if predicate(element) {
				select {
				case <-ctx.Done():
					return
				case out <- element:
				}
			}
		}
	}()
	return out
}

func Transform[I any, O any](ctx context.Context, transformer func(I) O, in <-chan I) <-chan O {
	out := make(chan O)
	go func() {
		defer close(out)
		for element := range in {
			select {
			case <-ctx.Done():
				return
			case out <- transformer(element):
			}
		}
	}()
	return out
}

func Collect[T any](ctx context.Context, in <-chan T) []T {
	out := make([]T, 0)
	for element := range in {
		select {
		case <-ctx.Done():
			return out
		default:
			out = append(out, element)
		}
	}
	return out
}

// Pair is a window of two adjacent elements of a sequence.
type Pair[T any] struct {
	A, B T
}

// Pairwise emits the adjacent-element windows of in: (x0,x1), (x1,x2), ...
// A sequence of fewer than two elements yields nothing.
func Pairwise[T any](ctx context.Context, in <-chan T) <-chan Pair[T] {
	out := make(chan Pair[T])
	go func() {
		defer close(out)
		last, ok := <-in
		if !ok {
			return
		}
		for element := range in {
			select {
			case <-ctx.Done():
				return
			case out <- Pair[T]{A: last, B: element}:
			}
			last = element
		}
	}()
	return out
}

// Tee copies every element of in to both returned channels.
// Both outputs must be consumed; a slow reader stalls its twin.
func Tee[T any](ctx context.Context, in <-chan T) (<-chan T, <-chan T) {
	out1, out2 := make(chan T), make(chan T)
	go func() {
		defer close(out1)
		defer close(out2)
		for element := range in {
			var c1, c2 = out1, out2
			for i := 0; i < 2; i++ {
				select {
				case <-ctx.Done():
					return
				case c1 <- element:
					c1 = nil
				case c2 <- element:
					c2 = nil
				}
			}
		}
	}()
	return out1, out2
}
