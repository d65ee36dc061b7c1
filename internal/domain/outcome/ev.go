package outcome

import "fmt"

// Rules 定義賠率與下注門檻。
type Rules struct {
	BankerPayout float64 `json:"banker_payout"` // 莊贏抽水後 0.95
	PlayerPayout float64 `json:"player_payout"`
	MinWinRate   float64 `json:"min_win_rate"`
}

// DefaultRules 回傳標準百家樂規則：莊 0.95、閒 1.0、勝率門檻 55%。
func DefaultRules() Rules {
	return Rules{
		BankerPayout: 0.95,
		PlayerPayout: 1.0,
		MinWinRate:   0.55,
	}
}

// Validate 檢查規則是否合理。
func (r Rules) Validate() error {
	if r.BankerPayout <= 0 {
		return fmt.Errorf("banker payout must be positive, got %v", r.BankerPayout)
	}
	if r.PlayerPayout <= 0 {
		return fmt.Errorf("player payout must be positive, got %v", r.PlayerPayout)
	}
	if r.MinWinRate <= 0 || r.MinWinRate >= 1 {
		return fmt.Errorf("min win rate must be in (0,1), got %v", r.MinWinRate)
	}
	return nil
}

// Probabilities 為依最後一局條件化後，下一局開莊／開閒的機率。兩者相加為 1。
type Probabilities struct {
	Banker float64 `json:"banker"`
	Player float64 `json:"player"`
}

// Conditional 以最後一局所在列正規化。該列沒有任何轉移時回傳 false。
func Conditional(t TransitionTable, last Symbol) (Probabilities, bool) {
	b := t.Count(last, Banker)
	p := t.Count(last, Player)
	total := b + p
	if total == 0 {
		return Probabilities{}, false
	}
	return Probabilities{
		Banker: float64(b) / float64(total),
		Player: float64(p) / float64(total),
	}, true
}

// ExpectedValue = 機率 * 賠率 - 1。
func ExpectedValue(prob, payout float64) float64 {
	return prob*payout - 1
}

// Expected 回傳莊、閒各自的 EV。
func (r Rules) Expected(p Probabilities) (bankerEV, playerEV float64) {
	return ExpectedValue(p.Banker, r.BankerPayout), ExpectedValue(p.Player, r.PlayerPayout)
}

// ChosenEV 取兩邊 EV 較大者，記入 EV 紀錄。
func (r Rules) ChosenEV(p Probabilities) float64 {
	b, pl := r.Expected(p)
	return max(b, pl)
}
