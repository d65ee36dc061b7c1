package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"baccarat-ev/internal/application/session"
	"baccarat-ev/internal/application/tracker"
)

// Store 以記憶體保存每個瀏覽器 session 的 Tracker，重啟後即消失。
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionRecord
	now      func() time.Time
}

type sessionRecord struct {
	tracker  *tracker.Tracker
	lastSeen time.Time
}

// NewStore 建立新的記憶體 Store 實例。
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*sessionRecord),
		now:      time.Now,
	}
}

var _ session.Store = (*Store)(nil)

// WithTracker 在鎖內取得（必要時建立）session 的 Tracker 並執行 fn，確保同一 session 的操作依序完成。
func (s *Store) WithTracker(ctx context.Context, id string, create func() *tracker.Tracker, fn func(*tracker.Tracker) error) error {
	if id == "" {
		return fmt.Errorf("session id required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		rec = &sessionRecord{tracker: create()}
		s.sessions[id] = rec
	}
	rec.lastSeen = s.now()
	return fn(rec.tracker)
}

// Delete 移除 session；不存在時回傳 session.ErrSessionNotFound。
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return session.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Count 回傳目前 session 數。
func (s *Store) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// DeleteIdle 移除 lastSeen 早於 before 的 session，回傳移除數量。
func (s *Store) DeleteIdle(ctx context.Context, before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, rec := range s.sessions {
		if rec.lastSeen.Before(before) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
