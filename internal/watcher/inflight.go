package watcher

import "sync"

// inflightSet tracks recordings currently being processed so a path never
// runs twice at once, regardless of which goroutine delivers the event.
type inflightSet struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{paths: make(map[string]struct{})}
}

// TryAdd claims the path, returning false if it is already claimed.
func (s *inflightSet) TryAdd(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.paths[path]; ok {
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

// Remove releases the path.
func (s *inflightSet) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.paths, path)
}
