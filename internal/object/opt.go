package object

// Opt is a field value that may be unset. Unset is distinct from the zero value of T.
type Opt[T any] struct {
	value T
	ok    bool
}

// Some returns a set value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// None returns an unset value.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Value returns the value, or the zero value of T when unset.
func (o Opt[T]) Value() T {
	return o.value
}

// Or returns the value, or def when unset.
func (o Opt[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}
