package tracker

import (
	"fmt"
	"slices"

	"baccarat-ev/internal/domain/outcome"
)

// Tracker 保存單一牌局的開牌紀錄，每次變動後重新計算轉移機率與 EV。
// 非併發安全，呼叫端需自行序列化存取。
type Tracker struct {
	rules   outcome.Rules
	history []outcome.Symbol
	probs   *outcome.Probabilities
	evLog   []float64
}

// Snapshot 為 Tracker 當下狀態的複本。
type Snapshot struct {
	History        []outcome.Symbol
	Transitions    outcome.TransitionTable
	Probabilities  *outcome.Probabilities
	EVLog          []float64
	Recommendation outcome.Recommendation
}

// New 建立空的 Tracker。
func New(rules outcome.Rules) *Tracker {
	return &Tracker{rules: rules}
}

// Rules 回傳使用中的規則。
func (t *Tracker) Rules() outcome.Rules {
	return t.rules
}

// Append 記錄一局結果並重新計算。
func (t *Tracker) Append(s outcome.Symbol) error {
	if !s.Valid() {
		return fmt.Errorf("append: %w: %q", outcome.ErrInvalidSymbol, s)
	}
	t.history = append(t.history, s)
	t.recompute()
	return nil
}

// Clear 清空紀錄、EV 與機率。
func (t *Tracker) Clear() {
	t.history = nil
	t.evLog = nil
	t.probs = nil
}

// recompute 在紀錄不足兩筆或最後一局沒有轉移資料時保留前一次的結果。
func (t *Tracker) recompute() {
	if len(t.history) < 2 {
		return
	}
	table := outcome.BuildTransitions(t.history)
	last := t.history[len(t.history)-1]
	probs, ok := outcome.Conditional(table, last)
	if !ok {
		return
	}
	t.probs = &probs
	t.evLog = append(t.evLog, t.rules.ChosenEV(probs))
}

// Recommendation 依目前機率產生建議。
func (t *Tracker) Recommendation() outcome.Recommendation {
	return outcome.Recommend(t.rules, t.probs)
}

// Probabilities 回傳目前機率；尚未計算時為 nil。
func (t *Tracker) Probabilities() *outcome.Probabilities {
	if t.probs == nil {
		return nil
	}
	p := *t.probs
	return &p
}

// History 回傳開牌紀錄的複本。
func (t *Tracker) History() []outcome.Symbol {
	return slices.Clone(t.history)
}

// EVLog 回傳每次成功計算的 EV 紀錄複本。
func (t *Tracker) EVLog() []float64 {
	return slices.Clone(t.evLog)
}

// Snapshot 回傳目前狀態的複本。
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		History:        t.History(),
		Transitions:    outcome.BuildTransitions(t.history),
		Probabilities:  t.Probabilities(),
		EVLog:          t.EVLog(),
		Recommendation: t.Recommendation(),
	}
}
