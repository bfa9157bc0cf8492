package storage

import "sync"

// SessionStorage is a process-scoped string map, safe for concurrent use.
type SessionStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{values: make(map[string]string)}
}

func (s *SessionStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *SessionStorage) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

func (s *SessionStorage) Delete(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}

func (s *SessionStorage) Clear() {
	s.mu.Lock()
	clear(s.values)
	s.mu.Unlock()
}
