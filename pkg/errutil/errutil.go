package errutil

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrIllegalParameter = errors.New("illegal parameter")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrOutOfRange       = errors.New("index out of range")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrDuplicatePlayer  = errors.New("duplicate player")
	ErrUnknownWinType   = errors.New("unknown win type")
	ErrZeroSumViolated  = errors.New("total points do not sum to 0")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNotImplemented   = errors.New("not implemented")
)

//Code code for the error, wrapped errors are unwrapped to their cause first
func Code(err error) int {
	if err == nil {
		return OK
	}
	if c, ok := errs[pkgerrors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
