package setting

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

func load(t *testing.T, config string) (*Game, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewBufferString(config)); err != nil {
		t.Fatal(err)
	}
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	g, err := Load(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Players, DefaultPlayers) || g.Boss != 0 || g.Debug || len(g.WinTypes) != 0 {
		t.Fatalf("unexpected defaults: %+v", g)
	}

	r, err := g.Recorder()
	if err != nil {
		t.Fatal(err)
	}
	if r.CurrentBoss() != "东" {
		t.Fatalf("expect boss 东, got %s", r.CurrentBoss())
	}
}

func TestLoad(t *testing.T) {
	g, err := load(t, `
[core]
debug = true

[game]
players = ["A", "B", "C", "D"]
boss = 1

[wintypes]
"边赢" = 2
"gap-win" = 3
`)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Debug || g.Boss != 1 || len(g.Players) != 4 {
		t.Fatalf("unexpected config: %+v", g)
	}
	if g.WinTypes["边赢"] != 2 || g.WinTypes["gap-win"] != 3 {
		t.Fatalf("unexpected overrides: %v", g.WinTypes)
	}

	r, err := g.Recorder()
	if err != nil {
		t.Fatal(err)
	}
	// boss B wins an edge win worth 2, every loser pays double
	if _, err := r.RecordRound("B", "边赢"); err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": -4, "B": 12, "C": -4, "D": -4}
	if got := r.Scores(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expect %v, got %v", want, got)
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := load(t, `
[wintypes]
"边赢" = "many"
`)
	if errors.Cause(err) != errutil.ErrInvalidNumber {
		t.Fatalf("expect invalid number, got %v", err)
	}

	g, err := load(t, `
[game]
boss = 9
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Recorder(); errors.Cause(err) != errutil.ErrOutOfRange {
		t.Fatalf("expect out of range, got %v", err)
	}

	g, err = load(t, `
[wintypes]
"海底捞月" = 8
`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Recorder(); errors.Cause(err) != errutil.ErrUnknownWinType {
		t.Fatalf("expect unknown win type, got %v", err)
	}
}
