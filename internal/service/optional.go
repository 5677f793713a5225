package service

// Optional holds a value that may be left unset. The zero Optional is unset,
// which is different from a set zero value such as "" or false.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Unset returns an empty Optional
func Unset[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr treats a nil pointer as unset
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

// IsSet reports whether a value was supplied
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was set
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value, or def when unset
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when unset
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}
