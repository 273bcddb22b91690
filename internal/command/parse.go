package command

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/lonng/mjrecorder/protocol"
	"github.com/pkg/errors"
)

const commentPrefix = "#"

// Parse turns one script line into a command. Blank lines and comments yield
// a nil command. A line starting with '{' is decoded as a protocol.Request.
//
//	round <winner[,winner]> <type[,type]>
//	repay <giver> <points> <receiver>
//	reset <boss> [score ...]
//	boss <player>
//	undo
//	show
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return nil, nil
	}

	if strings.HasPrefix(line, "{") {
		req := &protocol.Request{}
		if err := json.Unmarshal([]byte(line), req); err != nil {
			return nil, errors.Wrapf(errutil.ErrIllegalParameter, "decode request: %v", err)
		}
		return FromRequest(req)
	}

	if i := strings.Index(line, commentPrefix); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case protocol.OpRound:
		if err := arity(verb, args, 2, 2); err != nil {
			return nil, err
		}
		return Round{Winner: args[0], WinTypes: args[1]}, nil

	case protocol.OpRepay:
		if err := arity(verb, args, 3, 3); err != nil {
			return nil, err
		}
		points, err := number(args[1])
		if err != nil {
			return nil, err
		}
		return Repay{Giver: args[0], Points: points, Receiver: args[2]}, nil

	case protocol.OpReset:
		if err := arity(verb, args, 1, -1); err != nil {
			return nil, err
		}
		c := Reset{Boss: args[0]}
		for _, s := range args[1:] {
			score, err := number(s)
			if err != nil {
				return nil, err
			}
			c.Scores = append(c.Scores, score)
		}
		return c, nil

	case protocol.OpBoss:
		if err := arity(verb, args, 1, 1); err != nil {
			return nil, err
		}
		return Boss{Player: args[0]}, nil

	case protocol.OpUndo:
		if err := arity(verb, args, 0, 0); err != nil {
			return nil, err
		}
		return Undo{}, nil

	case protocol.OpShow:
		return Show{}, nil
	}

	return nil, errors.Wrapf(errutil.ErrUnknownCommand, "verb=%s", verb)
}

// FromRequest builds the command for a decoded request
func FromRequest(req *protocol.Request) (Command, error) {
	if req == nil {
		return nil, errutil.ErrIllegalParameter
	}

	switch strings.ToLower(req.Op) {
	case protocol.OpRound:
		return Round{Winner: req.Winner, WinTypes: req.WinTypes}, nil
	case protocol.OpRepay:
		return Repay{Giver: req.Giver, Points: req.Points, Receiver: req.Receiver}, nil
	case protocol.OpReset:
		if req.Boss == "" {
			return nil, errors.Wrap(errutil.ErrIllegalParameter, "reset without boss")
		}
		return Reset{Boss: req.Boss, Scores: req.Scores}, nil
	case protocol.OpBoss:
		return Boss{Player: req.Boss}, nil
	case protocol.OpUndo:
		return Undo{}, nil
	case protocol.OpShow:
		return Show{}, nil
	}

	return nil, errors.Wrapf(errutil.ErrUnknownCommand, "op=%s", req.Op)
}

// arity checks the argument count, hi < 0 means unbounded
func arity(verb string, args []string, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return errors.Wrapf(errutil.ErrIllegalParameter, "%s: unexpected argument count %d", verb, len(args))
	}
	return nil
}

func number(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(errutil.ErrInvalidNumber, "%q", s)
	}
	return n, nil
}
