package service

import (
	"content_calendar/internal/model"
	"content_calendar/internal/util"
	"content_calendar/pkg/logger"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore 进程内的向导会话，重启即丢失
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Wizard
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Wizard),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

func (s *SessionStore) Create(profile model.Profile) (string, *Wizard) {
	id := uuid.New().String()
	w := NewWizard(profile)
	w.Touch(s.now())

	s.mu.Lock()
	s.sessions[id] = w
	s.mu.Unlock()

	return id, w
}

// Get 过期会话视为不存在
func (s *SessionStore) Get(id string) (*Wizard, error) {
	s.mu.Lock()
	w, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	now := s.now()
	if now.Sub(w.Touch(now)) > s.ttl {
		s.Delete(id)
		return nil, util.ErrSessionNotFound
	}
	return w, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep 清理过期会话，返回清理数量
func (s *SessionStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, w := range s.sessions {
		if now.Sub(w.idleSince()) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run 定期清理，直到 Stop 被调用
func (s *SessionStore) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Log.Debug("Expired sessions removed", zap.Int("count", n))
			}
		case <-s.stop:
			return
		}
	}
}

func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
