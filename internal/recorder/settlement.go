package recorder

import (
	"strings"
)

// 番数倍率, 目前固定为1
const multiplier = 1

// Settlement result of one RecordRound call
type Settlement struct {
	Winners  []string
	Boss     string // boss at the start of the round
	Types    []WinType
	Deltas   map[string]int
	Points   int // total gained by the winners
	PassBoss bool
}

// Sum of all deltas, always 0 for a consistent settlement
func (s *Settlement) Sum() int {
	sum := 0
	for _, d := range s.Deltas {
		sum += d
	}
	return sum
}

func (s *Settlement) winnerToken() string {
	return strings.Join(s.Winners, ",")
}

func (s *Settlement) typeToken() string {
	labels := make([]string, len(s.Types))
	for i, wt := range s.Types {
		labels[i] = wt.Label
	}
	return strings.Join(labels, ",")
}

// settle computes the point deltas of a round. Each win type is evaluated
// against the same boss, every player except the winner pays the base points,
// doubled when the payer or the winner is the boss unless the type is a bonus.
func settle(players []string, boss string, winners []string, types []WinType) *Settlement {
	s := &Settlement{
		Winners: winners,
		Boss:    boss,
		Types:   types,
		Deltas:  make(map[string]int, len(players)),
	}
	for _, p := range players {
		s.Deltas[p] = 0
	}

	for _, winner := range winners {
		for _, wt := range types {
			base := wt.Points * multiplier
			winPoints := 0
			for _, p := range players {
				if p == winner {
					continue
				}
				deduction := base
				if !wt.Bonus && (p == boss || winner == boss) {
					deduction *= 2
				}
				s.Deltas[p] -= deduction
				winPoints += deduction
			}
			s.Deltas[winner] += winPoints
			s.Points += winPoints

			// 庄家没胡且不是杠, 过庄
			if boss != winner && !wt.Bonus {
				s.PassBoss = true
			}
		}
	}
	return s
}
