package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"baccarat-ev/internal/application/tracker"
	"baccarat-ev/internal/domain/outcome"
)

// ErrSessionNotFound 表示 session 不存在或已過期。
var ErrSessionNotFound = errors.New("session not found")

// Store 定義 session 儲存介面，具體儲存層自行實作。
type Store interface {
	WithTracker(ctx context.Context, id string, create func() *tracker.Tracker, fn func(*tracker.Tracker) error) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	DeleteIdle(ctx context.Context, before time.Time) int
}

// Service 管理每個瀏覽器 session 的 Tracker 生命週期。
type Service struct {
	store Store
	rules outcome.Rules
}

// NewService 建立 session 服務。
func NewService(store Store, rules outcome.Rules) *Service {
	return &Service{store: store, rules: rules}
}

// Rules 回傳新 Tracker 使用的規則。
func (s *Service) Rules() outcome.Rules {
	return s.rules
}

func (s *Service) newTracker() *tracker.Tracker {
	return tracker.New(s.rules)
}

// Open 取得 session 目前狀態，不存在時建立空的 Tracker。
func (s *Service) Open(ctx context.Context, id string) (tracker.Snapshot, error) {
	var snap tracker.Snapshot
	err := s.store.WithTracker(ctx, id, s.newTracker, func(t *tracker.Tracker) error {
		snap = t.Snapshot()
		return nil
	})
	if err != nil {
		return tracker.Snapshot{}, fmt.Errorf("open session: %w", err)
	}
	return snap, nil
}

// Append 記錄一局結果。
func (s *Service) Append(ctx context.Context, id string, sym outcome.Symbol) (tracker.Snapshot, error) {
	var snap tracker.Snapshot
	err := s.store.WithTracker(ctx, id, s.newTracker, func(t *tracker.Tracker) error {
		if err := t.Append(sym); err != nil {
			return err
		}
		snap = t.Snapshot()
		return nil
	})
	if err != nil {
		return tracker.Snapshot{}, fmt.Errorf("append outcome: %w", err)
	}
	return snap, nil
}

// Clear 清空紀錄但保留 session。
func (s *Service) Clear(ctx context.Context, id string) (tracker.Snapshot, error) {
	var snap tracker.Snapshot
	err := s.store.WithTracker(ctx, id, s.newTracker, func(t *tracker.Tracker) error {
		t.Clear()
		snap = t.Snapshot()
		return nil
	})
	if err != nil {
		return tracker.Snapshot{}, fmt.Errorf("clear session: %w", err)
	}
	return snap, nil
}

// Discard 丟棄 session；不存在時視為成功。
func (s *Service) Discard(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("discard session: %w", err)
	}
	return nil
}

// Active 回傳目前 session 數。
func (s *Service) Active(ctx context.Context) int {
	return s.store.Count(ctx)
}
