// pkg/mem/reference_store.go
package mem

import (
	"sync"
	"time"
)

type ReferenceStore interface {
	// Reserve records ref for ttl. It returns false if ref is already held and not expired.
	Reserve(ref string, ttl time.Duration) bool
}

type ReferenceIDs struct {
	mu   sync.Mutex
	data map[string]time.Time
	now  func() time.Time
}

func NewReferenceIDs() *ReferenceIDs {
	return &ReferenceIDs{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *ReferenceIDs) Reserve(ref string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.data[ref]; ok && now.Before(expiresAt) {
		return false
	}
	s.data[ref] = now.Add(ttl)
	s.sweep(now)
	return true
}

// sweep drops expired entries once the map grows; caller holds mu.
func (s *ReferenceIDs) sweep(now time.Time) {
	if len(s.data) < 1024 {
		return
	}
	for k, exp := range s.data {
		if !now.Before(exp) {
			delete(s.data, k)
		}
	}
}
