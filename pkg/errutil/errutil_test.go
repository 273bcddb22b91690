package errutil

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{err: nil, code: OK},
		{err: ErrIllegalParameter, code: mjIllegalParameter},
		{err: pkgerrors.Wrap(ErrUnknownWinType, "label=x"), code: mjUnknownWinType},
		{err: pkgerrors.Wrapf(pkgerrors.Wrap(ErrOutOfRange, "boss"), "reset"), code: mjOutOfRange},
		{err: errors.New("something else"), code: Unknown},
	}

	for _, c := range cases {
		if got := Code(c.err); got != c.code {
			t.Fatalf("expect: %d, got: %d, err: %v", c.code, got, c.err)
		}
	}
}

func TestCodesAreDistinct(t *testing.T) {
	seen := map[int]error{}
	for err, code := range errs {
		if other, ok := seen[code]; ok {
			t.Fatalf("code %d shared by %v and %v", code, err, other)
		}
		seen[code] = err
	}
}
