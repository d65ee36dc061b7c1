package outcome

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSymbol 表示輸入不是莊（B）或閒（P）。
var ErrInvalidSymbol = errors.New("invalid symbol")

// Symbol 為單局開牌結果，只有莊、閒兩種。
type Symbol string

const (
	Banker Symbol = "B"
	Player Symbol = "P"
)

// Symbols 依固定順序回傳所有合法結果（莊在前）。
func Symbols() []Symbol {
	return []Symbol{Banker, Player}
}

// Valid 檢查是否為合法結果。
func (s Symbol) Valid() bool {
	return s == Banker || s == Player
}

func (s Symbol) index() int {
	if s == Player {
		return 1
	}
	return 0
}

// ParseSymbol 接受 B/P 或 banker/player（不分大小寫）。
func ParseSymbol(raw string) (Symbol, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "B", "BANKER":
		return Banker, nil
	case "P", "PLAYER":
		return Player, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, raw)
}
