package outcome

// TransitionTable 記錄相鄰兩局 (前一局, 下一局) 的出現次數，涵蓋 2x2 所有組合。
type TransitionTable struct {
	counts [2][2]int
}

// BuildTransitions 由完整歷史重新計算轉移表。
// 最後一局沒有下一局，因此每列總和等於該結果在歷史中（不含最後一筆）的出現次數。
func BuildTransitions(history []Symbol) TransitionTable {
	var t TransitionTable
	for i := 0; i+1 < len(history); i++ {
		t.Add(history[i], history[i+1])
	}
	return t
}

// Add 累加一次 from -> to 的轉移。
func (t *TransitionTable) Add(from, to Symbol) {
	t.counts[from.index()][to.index()]++
}

// Count 回傳 from -> to 的次數。
func (t TransitionTable) Count(from, to Symbol) int {
	return t.counts[from.index()][to.index()]
}

// RowTotal 回傳從 from 出發的轉移總數。
func (t TransitionTable) RowTotal(from Symbol) int {
	row := t.counts[from.index()]
	return row[0] + row[1]
}

// Map 轉成巢狀 map，方便序列化輸出。
func (t TransitionTable) Map() map[Symbol]map[Symbol]int {
	out := make(map[Symbol]map[Symbol]int, 2)
	for _, from := range Symbols() {
		row := make(map[Symbol]int, 2)
		for _, to := range Symbols() {
			row[to] = t.Count(from, to)
		}
		out[from] = row
	}
	return out
}
