package coopbus

import "reflect"

// Content carries a message's payload as an untyped Go value, the
// equivalent of pleb's std::any-backed content class.
type Content struct {
	value any
}

// NewContent wraps v as a message payload.
func NewContent(v any) Content { return Content{value: v} }

// Value returns the payload exactly as stored.
func (c Content) Value() any { return c.value }

// IncompatibleContentError is returned when a payload's dynamic type
// doesn't match what the caller asked for.
type IncompatibleContentError struct {
	Want, Got reflect.Type
}

func (e *IncompatibleContentError) Error() string {
	want, got := "<nil>", "<nil>"
	if e.Want != nil {
		want = e.Want.String()
	}
	if e.Got != nil {
		got = e.Got.String()
	}
	return "coopbus: incompatible content: want " + want + ", got " + got
}

// As attempts to view the content as T, mirroring content::get: a
// failed attempt is not an error, just a false return.
func As[T any](c Content) (T, bool) {
	v, ok := c.value.(T)
	return v, ok
}

// MustAs returns the content viewed as T, or T's zero value if the
// dynamic type doesn't match.
func MustAs[T any](c Content) T {
	v, _ := As[T](c)
	return v
}

// MoveAs is As, but failure is reported as an error rather than a
// bool -- the form used when adapting a response onto a channel
// future, where a mismatch must reach the caller as a failure.
func MoveAs[T any](c Content) (T, error) {
	v, ok := As[T](c)
	if !ok {
		want := reflect.TypeOf((*T)(nil)).Elem()
		return v, &IncompatibleContentError{Want: want, Got: reflect.TypeOf(c.value)}
	}
	return v, nil
}

// Get views the content as T, following one level of pointer
// indirection -- the Go analogue of content::get<T>, which transparently
// unwraps a shared_ptr<T> alongside an exact T. A payload stored as T
// returns a pointer to a private copy; a payload stored as *T returns
// the stored pointer itself, so mutating through it is visible to
// every other holder of the same Content.
func Get[T any](c Content) (*T, bool) {
	switch v := c.value.(type) {
	case T:
		return &v, true
	case *T:
		return v, true
	default:
		return nil, false
	}
}

// GetMutable is Get, but only succeeds when the payload was stored
// indirectly as *T: mutating a private copy of a by-value T would
// never be visible to anyone else holding the same Content, so that
// case is deliberately excluded here (unlike Get).
func GetMutable[T any](c Content) (*T, bool) {
	v, ok := c.value.(*T)
	return v, ok
}
