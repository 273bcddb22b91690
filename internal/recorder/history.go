package recorder

// Snapshot 某一时刻的分数和庄家
type Snapshot struct {
	Scores map[string]int
	Boss   int
}

func (s Snapshot) clone() Snapshot {
	scores := make(map[string]int, len(s.Scores))
	for p, v := range s.Scores {
		scores[p] = v
	}
	return Snapshot{Scores: scores, Boss: s.Boss}
}

// Entry one line of the game history, either a TextEntry or a SnapshotEntry
type Entry interface {
	Text() string
	isEntry()
}

// TextEntry is logged by Reset and cannot be undone
type TextEntry struct {
	text string
}

func (e TextEntry) Text() string { return e.text }
func (TextEntry) isEntry() {}

// SnapshotEntry carries the state from right before the operation it describes
type SnapshotEntry struct {
	text   string
	before Snapshot
}

func (e SnapshotEntry) Text() string { return e.text }
func (SnapshotEntry) isEntry() {}

// Before returns a copy of the captured state
func (e SnapshotEntry) Before() Snapshot {
	return e.before.clone()
}

type history struct {
	entries []Entry
}

func (h *history) pushText(text string) {
	h.entries = append(h.entries, TextEntry{text: text})
}

func (h *history) pushSnapshot(text string, before Snapshot) {
	h.entries = append(h.entries, SnapshotEntry{text: text, before: before.clone()})
}

// popSnapshot drops the latest snapshot entry together with the text entries
// logged after it
func (h *history) popSnapshot() (Snapshot, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		e, ok := h.entries[i].(SnapshotEntry)
		if !ok {
			continue
		}
		h.entries = h.entries[:i]
		return e.before, true
	}
	return Snapshot{}, false
}

func (h *history) texts() []string {
	ret := make([]string, len(h.entries))
	for i, e := range h.entries {
		ret[i] = e.Text()
	}
	return ret
}

func (h *history) list() []Entry {
	ret := make([]Entry, len(h.entries))
	copy(ret, h.entries)
	return ret
}
