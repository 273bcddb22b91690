package errutil

const (
	codeBase = 1000
)

const OK = 0

const (
	Unknown = codeBase + iota
	mjIllegalParameter
	mjInvalidNumber
	mjOutOfRange
	mjPlayerNotFound
	mjDuplicatePlayer
	mjUnknownWinType
	mjZeroSumViolated
	mjUnknownCommand
	mjNotImplemented
)

var errs = map[error]int{
	ErrIllegalParameter: mjIllegalParameter,
	ErrInvalidNumber:    mjInvalidNumber,
	ErrOutOfRange:       mjOutOfRange,
	ErrPlayerNotFound:   mjPlayerNotFound,
	ErrDuplicatePlayer:  mjDuplicatePlayer,
	ErrUnknownWinType:   mjUnknownWinType,
	ErrZeroSumViolated:  mjZeroSumViolated,
	ErrUnknownCommand:   mjUnknownCommand,
	ErrNotImplemented:   mjNotImplemented,
}
