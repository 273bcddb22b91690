package recorder

import "testing"

func TestHistoryPopSnapshot(t *testing.T) {
	h := &history{}
	if _, ok := h.popSnapshot(); ok {
		t.Fatal("empty history has no snapshot")
	}

	h.pushText("reset 1")
	first := Snapshot{Scores: map[string]int{"A": 1}, Boss: 1}
	h.pushSnapshot("round 1", first)
	h.pushSnapshot("round 2", Snapshot{Scores: map[string]int{"A": 2}, Boss: 2})
	h.pushText("reset 2")

	first.Scores["A"] = 100

	s, ok := h.popSnapshot()
	if !ok || s.Boss != 2 {
		t.Fatalf("expect the latest snapshot, got %+v", s)
	}
	if texts := h.texts(); len(texts) != 2 || texts[1] != "round 1" {
		t.Fatalf("unexpected texts %v", texts)
	}

	s, ok = h.popSnapshot()
	if !ok || s.Scores["A"] != 1 {
		t.Fatalf("snapshot must be copied on push, got %+v", s)
	}

	if _, ok := h.popSnapshot(); ok {
		t.Fatal("only text entries are left")
	}
	if entries := h.list(); len(entries) != 1 || entries[0].Text() != "reset 1" {
		t.Fatalf("unexpected entries %v", entries)
	}
}
