package set

import "testing"

func TestSet(t *testing.T) {
	s := New("东", "北", "东")
	if s.Len() != 2 {
		t.Fatalf("expect 2 members, got %d", s.Len())
	}

	if !s.Contains("北") || s.Contains("西") || s.Contains("") {
		t.Fail()
	}

	if s.Add("北") {
		t.Errorf("adding an existing member should report false")
	}
	if !s.Add("西") {
		t.Errorf("adding a new member should report true")
	}

	s.Remove("东")
	if s.Contains("东") || s.Len() != 2 {
		t.Fail()
	}
}
