package compose

// Compose returns a function applying fns right to left:
// Compose(f1, f2, f3)(x) == f1(f2(f3(x))).
// The first error stops the chain and is returned as is.
// With no stages the returned function is the identity.
func Compose[T any](fns ...func(T) (T, error)) func(T) (T, error) {
	stages := make([]func(T) (T, error), len(fns))
	copy(stages, fns)

	return func(value T) (T, error) {
		result := value
		for i := len(stages) - 1; i >= 0; i-- {
			next, err := stages[i](result)
			if err != nil {
				var zero T
				return zero, err
			}
			result = next
		}
		return result, nil
	}
}

// Pipe returns a function applying fns left to right:
// Pipe(f1, f2, f3)(x) == f3(f2(f1(x))).
func Pipe[T any](fns ...func(T) (T, error)) func(T) (T, error) {
	reversed := make([]func(T) (T, error), len(fns))
	for i, fn := range fns {
		reversed[len(fns)-1-i] = fn
	}
	return Compose(reversed...)
}

// Compose2 chains two typed stages right to left: outer(inner(x)).
func Compose2[A, B, C any](outer func(B) (C, error), inner func(A) (B, error)) func(A) (C, error) {
	return func(value A) (C, error) {
		mid, err := inner(value)
		if err != nil {
			var zero C
			return zero, err
		}
		return outer(mid)
	}
}

// Compose3 chains three typed stages right to left: f(g(h(x))).
func Compose3[A, B, C, D any](f func(C) (D, error), g func(B) (C, error), h func(A) (B, error)) func(A) (D, error) {
	return Compose2(f, Compose2(g, h))
}

// Lift turns an infallible transform into a stage that never fails.
func Lift[A, B any](fn func(A) B) func(A) (B, error) {
	return func(value A) (B, error) {
		return fn(value), nil
	}
}
