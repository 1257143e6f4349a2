// Package try turns (value, error) pairs into a value, mainly in tests.
//
//	user := try.To(users.Register(ctx, spec)).OrFatal(t)
package try

// Fataler is anything which can stop with Fatal, like *testing.T or *log.Logger.
type Fataler interface {
	Fatal(...any)
}

// Either is a pair of a value and an error.
//
// It is "ok" when the error is nil.
type Either[T any] interface {
	// Get returns the pair as it is.
	Get() (T, error)

	// OrFatal returns the value when ok, otherwise calls ftl.Fatal with the error.
	//
	// When ftl has a method `Helper()`, it is called before Fatal.
	OrFatal(ftl Fataler) T

	// OrDefault returns the value when ok, otherwise d.
	OrDefault(d T) T
}

func To[T any](value T, err error) Either[T] {
	if err == nil {
		return ok[T]{value: value}
	}
	return ng[T]{err: err}
}

type ok[T any] struct {
	value T
}

func (o ok[T]) Get() (T, error) {
	return o.value, nil
}

func (o ok[T]) OrFatal(Fataler) T {
	return o.value
}

func (o ok[T]) OrDefault(T) T {
	return o.value
}

type ng[T any] struct {
	err error
}

func (n ng[T]) Get() (T, error) {
	return *new(T), n.err
}

func (n ng[T]) OrFatal(ftl Fataler) T {
	if h, ok := ftl.(interface{ Helper() }); ok {
		h.Helper()
	}
	ftl.Fatal(n.err)
	return *new(T)
}

func (n ng[T]) OrDefault(d T) T {
	return d
}
