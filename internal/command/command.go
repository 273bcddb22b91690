package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lonng/mjrecorder/internal/recorder"
	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/pkg/errors"
)

// Engine the operations a command can be applied to, *recorder.Recorder
// satisfies it
type Engine interface {
	Players() []string
	RecordRound(winner, winTypes string) (*recorder.Settlement, error)
	RepayPoints(giver string, points int, receiver string) error
	Reset(newBoss int, newScores []int) error
	SetBoss(player string) error
	Undo() bool
}

// Command one discrete request against the engine
type Command interface {
	Apply(e Engine) error
	String() string
}

// Round 胡牌结算
type Round struct {
	Winner   string
	WinTypes string
}

func (c Round) Apply(e Engine) error {
	_, err := e.RecordRound(c.Winner, c.WinTypes)
	return err
}

func (c Round) String() string {
	return fmt.Sprintf("round %s %s", c.Winner, c.WinTypes)
}

// Repay 还分
type Repay struct {
	Giver    string
	Points   int
	Receiver string
}

func (c Repay) Apply(e Engine) error {
	return e.RepayPoints(c.Giver, c.Points, c.Receiver)
}

func (c Repay) String() string {
	return fmt.Sprintf("repay %s %d %s", c.Giver, c.Points, c.Receiver)
}

// Reset 重置庄家和分数, Boss is a player name or a seat index
type Reset struct {
	Boss   string
	Scores []int
}

func (c Reset) Apply(e Engine) error {
	idx, err := seat(e.Players(), c.Boss)
	if err != nil {
		return err
	}
	return e.Reset(idx, c.Scores)
}

func (c Reset) String() string {
	if c.Scores == nil {
		return "reset " + c.Boss
	}
	return fmt.Sprintf("reset %s %v", c.Boss, c.Scores)
}

// Boss 指定庄家
type Boss struct {
	Player string
}

func (c Boss) Apply(e Engine) error {
	return e.SetBoss(c.Player)
}

func (c Boss) String() string {
	return "boss " + c.Player
}

// Undo 撤销
type Undo struct{}

func (Undo) Apply(e Engine) error {
	e.Undo()
	return nil
}

func (Undo) String() string {
	return "undo"
}

// Show asks the front end to redraw, it does not touch the engine
type Show struct{}

func (Show) Apply(Engine) error { return nil }
func (Show) String() string { return "show" }

// seat resolves a player name first, then a seat index
func seat(players []string, s string) (int, error) {
	for i, p := range players {
		if p == s {
			return i, nil
		}
	}

	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(errutil.ErrPlayerNotFound, "boss=%s", s)
	}
	return idx, nil
}
