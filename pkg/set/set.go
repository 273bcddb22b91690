package set

// Set string set, Add reports whether the value was new
type Set struct {
	m map[string]struct{}
}

func (s *Set) Contains(val string) bool {
	_, ok := s.m[val]
	return ok
}

func (s *Set) Add(val string) bool {
	if s.Contains(val) {
		return false
	}
	s.m[val] = struct{}{}
	return true
}

func (s *Set) Remove(val string) {
	delete(s.m, val)
}

func (s *Set) Len() int {
	return len(s.m)
}

func New(vals ...string) *Set {
	s := &Set{
		m: make(map[string]struct{}, len(vals)),
	}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}
