package tuple

// Cons holds a pair of values: the first element of
// a nested tuple and the rest of it.
type Cons[H, R any] struct {
	Head H
	Tail R
}

// MkCons returns a Cons holding h and r.
func MkCons[H, R any](h H, r R) Cons[H, R] {
	return Cons[H, R]{
		Head: h,
		Tail: r,
	}
}

// T returns the head and tail of the pair.
func (c Cons[H, R]) T() (H, R) {
	return c.Head, c.Tail
}
