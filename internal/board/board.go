// Package board draws the recorder state for a terminal
package board

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lonng/mjrecorder/internal/recorder"
	"github.com/lonng/mjrecorder/protocol"
	"golang.org/x/text/width"
)

// View read side of the recorder
type View interface {
	CurrentBoss() string
	BossIndex() int
	Standings() []recorder.Score
	History() []string
}

// Render writes the boss, the aligned score rows and the history
func Render(w io.Writer, v View) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "当前庄家: %s\n分数:\n", v.CurrentBoss())

	standings := v.Standings()
	names := make([]string, len(standings))
	for i, s := range standings {
		names[i] = s.Player
	}
	pad := padder(names)
	for _, s := range standings {
		fmt.Fprintf(bw, "%s: %d\n", pad(s.Player), s.Score)
	}

	bw.WriteString("\nHistory:\n")
	for _, h := range v.History() {
		bw.WriteString(h)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderJSON writes the state as a protocol.StateResponse
func RenderJSON(w io.Writer, v View) error {
	resp := &protocol.StateResponse{
		Boss:      v.CurrentBoss(),
		BossIndex: v.BossIndex(),
		Scores:    []protocol.ScoreInfo{},
		History:   v.History(),
	}
	for _, s := range v.Standings() {
		resp.Scores = append(resp.Scores, protocol.ScoreInfo{Player: s.Player, Score: s.Score})
	}
	return json.NewEncoder(w).Encode(resp)
}

// RenderTable lists the win types with their points
func RenderTable(w io.Writer, t recorder.Table) error {
	types := t.Types()
	labels := make([]string, len(types))
	for i, wt := range types {
		labels[i] = wt.Label
	}
	pad := padder(labels)

	bw := bufio.NewWriter(w)
	for _, wt := range types {
		bonus := ""
		if wt.Bonus {
			bonus = " (杠)"
		}
		fmt.Fprintf(bw, "%s  %-14s %d%s\n", pad(wt.Label), wt.Kind.Alias(), wt.Points, bonus)
	}
	return bw.Flush()
}

// TableInfo converts the table for JSON output
func TableInfo(t recorder.Table) []protocol.WinTypeInfo {
	ret := []protocol.WinTypeInfo{}
	for _, wt := range t.Types() {
		ret = append(ret, protocol.WinTypeInfo{
			Label:  wt.Label,
			Alias:  wt.Kind.Alias(),
			Points: wt.Points,
			Bonus:  wt.Bonus,
		})
	}
	return ret
}

// padder returns a func that right pads a string to the widest of ss, wide
// runes count as two columns
func padder(ss []string) func(string) string {
	widest := 0
	for _, s := range ss {
		if n := Width(s); n > widest {
			widest = n
		}
	}
	return func(s string) string {
		return s + strings.Repeat(" ", widest-Width(s))
	}
}

// Width display width of s in terminal columns
func Width(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
