package constant

import "testing"

func TestParseWinKind(t *testing.T) {
	cases := []struct {
		input string
		kind  WinKind
		ok    bool
	}{
		{input: "边赢", kind: WinKindEdge, ok: true},
		{input: "edge-win", kind: WinKindEdge, ok: true},
		{input: "暗杠", kind: WinKindConcealedKong, ok: true},
		{input: "exposed-kong", kind: WinKindExposedKong, ok: true},
		{input: "自己起窟窿", kind: WinKindSelfDealGap, ok: true},
		{input: "", kind: WinKindNone, ok: false},
		{input: "清一色", kind: WinKindNone, ok: false},
	}

	for _, c := range cases {
		k, ok := ParseWinKind(c.input)
		if k != c.kind || ok != c.ok {
			t.Fatalf("input: %q, expect: %v/%t, got: %v/%t", c.input, c.kind, c.ok, k, ok)
		}
	}
}

func TestWinKindTable(t *testing.T) {
	cases := []struct {
		kind   WinKind
		points int
		bonus  bool
	}{
		{WinKindSelfDealGap, 4, false},
		{WinKindSelfDealEdge, 2, false},
		{WinKindEdge, 1, false},
		{WinKindGap, 2, false},
		{WinKindConcealedKong, 2, true},
		{WinKindExposedKong, 1, true},
	}

	for _, c := range cases {
		if c.kind.Points() != c.points || c.kind.IsBonus() != c.bonus {
			t.Errorf("%s: expect %d/%t, got %d/%t", c.kind, c.points, c.bonus, c.kind.Points(), c.kind.IsBonus())
		}
	}

	if WinKind(42).String() != "" || WinKindNone.Points() != 0 {
		t.Fail()
	}
}
