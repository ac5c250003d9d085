package snapflag

import "fmt"

// Optional holds a flag value that may be absent. The zero value is absent.
// Bind it with OptionalVar; after Parse it is present only if the flag was
// given and its value converted successfully.
type Optional[T Scalar] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T Scalar](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// Value returns the held value, or the zero value of T when absent.
func (o Optional[T]) Value() T { return o.value }

// Or returns the held value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Reset makes the Optional absent again.
func (o *Optional[T]) Reset() {
	var zero T
	o.value, o.set = zero, false
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}
