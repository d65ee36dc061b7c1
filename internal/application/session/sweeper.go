package session

import (
	"context"
	"log"
	"time"
)

// Sweeper 定期移除閒置過久的 session。
type Sweeper struct {
	store    Store
	idleTTL  time.Duration
	interval time.Duration
	now      func() time.Time
	stopChan chan struct{}
	done     chan struct{}
}

// NewSweeper 建立背景清理器。
func NewSweeper(store Store, idleTTL, interval time.Duration) *Sweeper {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		store:    store,
		idleTTL:  idleTTL,
		interval: interval,
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start 啟動迴圈。
func (w *Sweeper) Start() {
	log.Printf("[Sweeper] starting idle_ttl=%v interval=%v", w.idleTTL, w.interval)
	ticker := time.NewTicker(w.interval)
	go func() {
		defer close(w.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.RunOnce(context.Background())
			case <-w.stopChan:
				return
			}
		}
	}()
}

// Stop 停止迴圈並等待結束。
func (w *Sweeper) Stop() {
	close(w.stopChan)
	<-w.done
}

// RunOnce 執行一次清理，回傳移除數量。
func (w *Sweeper) RunOnce(ctx context.Context) int {
	removed := w.store.DeleteIdle(ctx, w.now().Add(-w.idleTTL))
	if removed > 0 {
		log.Printf("[Sweeper] removed idle sessions count=%d remaining=%d", removed, w.store.Count(ctx))
	}
	return removed
}
