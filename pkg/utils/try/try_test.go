package try_test

import (
	"errors"
	"testing"

	"github.com/opst/knitsocial/pkg/utils/try"
)

type fataler struct {
	fatal  [][]any
	helper int
}

func (f *fataler) Fatal(args ...any) {
	f.fatal = append(f.fatal, args)
}

func (f *fataler) Helper() {
	f.helper += 1
}

func TestTry(t *testing.T) {
	t.Run("when it does not have error, OrFatal returns the value without Fatal", func(t *testing.T) {
		f := &fataler{}
		actual := try.To(42, nil).OrFatal(f)
		if actual != 42 {
			t.Errorf("unmatch: (actual, expected) = (%d, %d)", actual, 42)
		}
		if len(f.fatal) != 0 || f.helper != 0 {
			t.Errorf("Fatal or Helper is called unexpectedly: %+v", f)
		}
	})

	t.Run("when it has error, OrFatal calls Helper and Fatal with the error", func(t *testing.T) {
		f := &fataler{}
		err := errors.New("fake error")
		try.To(42, err).OrFatal(f)

		if f.helper != 1 {
			t.Errorf("Helper is called %d times", f.helper)
		}
		if len(f.fatal) != 1 || f.fatal[0][0] != err {
			t.Errorf("Fatal is not called with the error: %+v", f.fatal)
		}
	})

	t.Run("OrDefault falls back only when it has error", func(t *testing.T) {
		if v := try.To(1, nil).OrDefault(2); v != 1 {
			t.Errorf("unmatch: %d", v)
		}
		if v := try.To(1, errors.New("fake")).OrDefault(2); v != 2 {
			t.Errorf("unmatch: %d", v)
		}
	})

	t.Run("Get returns zero value with the error", func(t *testing.T) {
		v, err := try.To("value", errors.New("fake")).Get()
		if v != "" || err == nil {
			t.Errorf("unmatch: (%q, %v)", v, err)
		}
	})
}
