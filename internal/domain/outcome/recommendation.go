package outcome

// Kind 為建議類型。
type Kind string

const (
	KindInsufficient Kind = "insufficient"
	KindBanker       Kind = "banker"
	KindPlayer       Kind = "player"
	KindObserve      Kind = "observe"
)

// Recommendation 為下注建議；WinRate / EV 僅在建議下注時有值。
type Recommendation struct {
	Kind    Kind
	WinRate float64
	EV      float64
}

// Side 回傳建議下注的一方，非下注建議時回傳空字串。
func (r Recommendation) Side() Symbol {
	switch r.Kind {
	case KindBanker:
		return Banker
	case KindPlayer:
		return Player
	}
	return ""
}

// Recommend 依目前機率產生建議，莊優先判斷。
func Recommend(rules Rules, probs *Probabilities) Recommendation {
	if probs == nil {
		return Recommendation{Kind: KindInsufficient}
	}
	bEV, pEV := rules.Expected(*probs)
	if bEV > 0 && probs.Banker > rules.MinWinRate {
		return Recommendation{Kind: KindBanker, WinRate: probs.Banker, EV: bEV}
	}
	if pEV > 0 && probs.Player > rules.MinWinRate {
		return Recommendation{Kind: KindPlayer, WinRate: probs.Player, EV: pEV}
	}
	return Recommendation{Kind: KindObserve}
}
