package recorder

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/lonng/mjrecorder/pkg/set"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const minPlayers = 2

var logger = log.WithField("component", "recorder")

// Score one row of the ordered score table
type Score struct {
	Player string
	Score  int
}

type options struct {
	table  *Table
	boss   int
	logger *log.Entry
}

// Option configures a Recorder
type Option func(*options)

// WithTable replaces the default win-type table
func WithTable(t Table) Option {
	return func(opts *options) {
		opts.table = &t
	}
}

// WithBoss specifies the initial boss index
func WithBoss(idx int) Option {
	return func(opts *options) {
		opts.boss = idx
	}
}

// WithLogger specifies the log entry used for the recorder
func WithLogger(l *log.Entry) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

// Recorder 记分器: 玩家分数, 庄家, 胡牌类型表和历史记录.
// A Recorder is meant to be driven by a single session, it is not safe for
// concurrent use.
type Recorder struct {
	players []string
	seats   map[string]int
	scores  map[string]int
	boss    int
	table   Table
	history history
	logger  *log.Entry
}

// New creates a recorder for the ordered, unique player names
func New(players []string, opts ...Option) (*Recorder, error) {
	if len(players) < minPlayers {
		return nil, errors.Wrapf(errutil.ErrIllegalParameter, "need at least %d players, got %d", minPlayers, len(players))
	}

	o := &options{logger: logger}
	for _, opt := range opts {
		opt(o)
	}

	seen := set.New()
	seats := make(map[string]int, len(players))
	scores := make(map[string]int, len(players))
	for i, p := range players {
		if strings.TrimSpace(p) == "" {
			return nil, errors.Wrapf(errutil.ErrIllegalParameter, "empty name at seat %d", i)
		}
		if !seen.Add(p) {
			return nil, errors.Wrapf(errutil.ErrDuplicatePlayer, "name=%s", p)
		}
		seats[p] = i
		scores[p] = 0
	}

	if o.boss < 0 || o.boss >= len(players) {
		return nil, errors.Wrapf(errutil.ErrOutOfRange, "boss=%d players=%d", o.boss, len(players))
	}

	table := DefaultTable()
	if o.table != nil && o.table.types != nil {
		table = *o.table
	}

	r := &Recorder{
		players: append([]string(nil), players...),
		seats:   seats,
		scores:  scores,
		boss:    o.boss,
		table:   table,
		logger:  o.logger,
	}

	r.logger.Debugf("新建记分器: 玩家=%v 庄家=%s", r.players, r.CurrentBoss())
	return r, nil
}

// Reset overrides the boss and optionally the scores. newScores are aligned
// to the player order, nil keeps the current scores. The totals are not
// checked and the reset is not recorded for Undo.
func (r *Recorder) Reset(newBoss int, newScores []int) error {
	if newBoss < 0 || newBoss >= len(r.players) {
		return errors.Wrapf(errutil.ErrOutOfRange, "boss=%d players=%d", newBoss, len(r.players))
	}
	if newScores != nil && len(newScores) != len(r.players) {
		return errors.Wrapf(errutil.ErrIllegalParameter, "got %d scores for %d players", len(newScores), len(r.players))
	}

	var changes []string
	if newBoss != r.boss {
		changes = append(changes, fmt.Sprintf("boss_idx from %d to %d", r.boss, newBoss))
		r.boss = newBoss
	}
	if newScores != nil {
		old := r.orderedScores()
		for i, p := range r.players {
			r.scores[p] = newScores[i]
		}
		changes = append(changes, fmt.Sprintf("scores from %v to %v", old, newScores))
	}

	text := "reset: nothing changed"
	if len(changes) > 0 {
		text = "reset: " + strings.Join(changes, ", ")
	}
	r.history.pushText(text)

	r.logger.Infof("重置: %s", text)
	return nil
}

// SetBoss makes player the boss
func (r *Recorder) SetBoss(player string) error {
	idx, ok := r.seats[player]
	if !ok {
		return errors.Wrapf(errutil.ErrPlayerNotFound, "boss=%s", player)
	}

	before := r.snapshot()
	r.boss = idx
	r.history.pushSnapshot(fmt.Sprintf("庄家 %s -> %s.", r.players[before.Boss], player), before)

	r.logger.Debugf("设置庄家: %s", player)
	return nil
}

// RecordRound settles a round. winner is a player name or a comma-joined list
// of names, winTypes a comma-joined list of win-type labels or aliases.
func (r *Recorder) RecordRound(winner, winTypes string) (*Settlement, error) {
	winners, err := r.parseWinners(winner)
	if err != nil {
		return nil, err
	}
	types, err := r.parseWinTypes(winTypes)
	if err != nil {
		return nil, err
	}

	boss := r.CurrentBoss()
	s := settle(r.players, boss, winners, types)

	if sum := s.Sum(); sum != 0 {
		r.logger.Errorf("结算后总分不为0: 赢家=%v 类型=%s 变化=%v 合计=%d", winners, s.typeToken(), s.Deltas, sum)
		return nil, errors.Wrapf(errutil.ErrZeroSumViolated, "deltas=%v", s.Deltas)
	}

	before := r.snapshot()
	for p, d := range s.Deltas {
		r.scores[p] += d
	}

	text := fmt.Sprintf("%s (庄家: %s) 赢 %d 分，胡的类型 ： %s. 分数： %s",
		s.winnerToken(), boss, s.Points, s.typeToken(), r.formatScores())
	r.history.pushSnapshot(text, before)

	if s.PassBoss {
		r.boss = (r.boss + 1) % len(r.players)
	}

	r.logger.Debugf("结算: 赢家=%v 庄家=%s 类型=%s 变化=%v 过庄=%t",
		winners, boss, s.typeToken(), s.Deltas, s.PassBoss)
	return s, nil
}

// RepayPoints moves points from the receiver to the giver. A negative amount
// moves points the other way, giver == receiver leaves the scores unchanged.
func (r *Recorder) RepayPoints(giver string, points int, receiver string) error {
	if _, ok := r.seats[giver]; !ok {
		return errors.Wrapf(errutil.ErrPlayerNotFound, "giver=%s", giver)
	}
	if _, ok := r.seats[receiver]; !ok {
		return errors.Wrapf(errutil.ErrPlayerNotFound, "receiver=%s", receiver)
	}

	before := r.snapshot()
	r.scores[giver] += points
	r.scores[receiver] -= points

	text := fmt.Sprintf("%s gave %d points to %s. 分数： %s", giver, points, receiver, r.formatScores())
	r.history.pushSnapshot(text, before)

	r.logger.Debugf("还分: %s -> %s %d", giver, receiver, points)
	return nil
}

// Undo reverts the latest undoable operation, any reset logged after it is
// dropped as well. Without such an operation the scores go back to zero and
// the boss to the first player, in which case false is returned.
func (r *Recorder) Undo() bool {
	s, ok := r.history.popSnapshot()
	if !ok {
		for p := range r.scores {
			r.scores[p] = 0
		}
		r.boss = 0
		r.logger.Info("没有可以撤销的记录, 分数清零")
		return false
	}

	r.restore(s)
	r.logger.Infof("撤销: 分数=%s 庄家=%s", r.formatScores(), r.CurrentBoss())
	return true
}

func (r *Recorder) parseWinners(token string) ([]string, error) {
	seen := set.New()
	var winners []string
	for _, w := range strings.Split(token, ",") {
		w = strings.TrimSpace(w)
		if w == "" {
			return nil, errors.Wrapf(errutil.ErrIllegalParameter, "winner=%q", token)
		}
		if _, ok := r.seats[w]; !ok {
			return nil, errors.Wrapf(errutil.ErrPlayerNotFound, "winner=%s", w)
		}
		if !seen.Add(w) {
			return nil, errors.Wrapf(errutil.ErrDuplicatePlayer, "winner=%s", w)
		}
		winners = append(winners, w)
	}
	return winners, nil
}

func (r *Recorder) parseWinTypes(token string) ([]WinType, error) {
	var types []WinType
	for _, label := range strings.Split(token, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, errors.Wrapf(errutil.ErrIllegalParameter, "win types=%q", token)
		}
		wt, err := r.table.Lookup(label)
		if err != nil {
			return nil, err
		}
		types = append(types, wt)
	}
	return types, nil
}

func (r *Recorder) snapshot() Snapshot {
	return Snapshot{Scores: r.scores, Boss: r.boss}.clone()
}

func (r *Recorder) restore(s Snapshot) {
	for _, p := range r.players {
		r.scores[p] = s.Scores[p]
	}
	r.boss = s.Boss
}

func (r *Recorder) orderedScores() []int {
	ret := make([]int, len(r.players))
	for i, p := range r.players {
		ret[i] = r.scores[p]
	}
	return ret
}

func (r *Recorder) formatScores() string {
	buf := &bytes.Buffer{}
	for i, p := range r.players {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%s=%d", p, r.scores[p])
	}
	return buf.String()
}

// Players the ordered roster
func (r *Recorder) Players() []string {
	return append([]string(nil), r.players...)
}

// Scores a copy of the score table
func (r *Recorder) Scores() map[string]int {
	return r.snapshot().Scores
}

// Standings scores in player order
func (r *Recorder) Standings() []Score {
	ret := make([]Score, len(r.players))
	for i, p := range r.players {
		ret[i] = Score{Player: p, Score: r.scores[p]}
	}
	return ret
}

// Total sum of all scores
func (r *Recorder) Total() int {
	sum := 0
	for _, v := range r.scores {
		sum += v
	}
	return sum
}

func (r *Recorder) CurrentBoss() string {
	return r.players[r.boss]
}

func (r *Recorder) BossIndex() int {
	return r.boss
}

func (r *Recorder) Table() Table {
	return r.table
}

// History descriptions of every logged operation, oldest first
func (r *Recorder) History() []string {
	return r.history.texts()
}

func (r *Recorder) Entries() []Entry {
	return r.history.list()
}
