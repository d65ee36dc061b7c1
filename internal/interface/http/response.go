package httpapi

import (
	"baccarat-ev/internal/application/tracker"
	"baccarat-ev/internal/domain/outcome"
	"baccarat-ev/internal/infrastructure/i18n"

	"github.com/gin-gonic/gin"
)

const (
	errCodeBadRequest    = "BAD_REQUEST"
	errCodeInvalidSymbol = "INVALID_SYMBOL"
	errCodeInternal      = "INTERNAL_ERROR"
)

type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, errorResponse{
		Success:   false,
		Error:     msg,
		ErrorCode: code,
	})
}

type recommendationView struct {
	Kind    outcome.Kind   `json:"kind"`
	Side    outcome.Symbol `json:"side,omitempty"`
	WinRate *float64       `json:"win_rate"`
	EV      *float64       `json:"ev"`
	Message string         `json:"message"`
}

type snapshotResponse struct {
	Success        bool                                      `json:"success"`
	Lang           string                                    `json:"lang"`
	History        []outcome.Symbol                          `json:"history"`
	Transitions    map[outcome.Symbol]map[outcome.Symbol]int `json:"transitions"`
	BankerProb     *float64                                  `json:"banker_prob"`
	PlayerProb     *float64                                  `json:"player_prob"`
	EVLog          []float64                                 `json:"ev_log"`
	Recommendation recommendationView                        `json:"recommendation"`
}

type chartPoint struct {
	Step int     `json:"step"`
	EV   float64 `json:"ev"`
}

type chartResponse struct {
	Success bool             `json:"success"`
	Lang    string           `json:"lang"`
	Labels  i18n.ChartLabels `json:"labels"`
	Points  []chartPoint     `json:"points"`
}

func newSnapshotResponse(snap tracker.Snapshot, r i18n.Renderer) snapshotResponse {
	out := snapshotResponse{
		Success:     true,
		Lang:        r.Lang(),
		History:     snap.History,
		Transitions: snap.Transitions.Map(),
		EVLog:       snap.EVLog,
		Recommendation: recommendationView{
			Kind:    snap.Recommendation.Kind,
			Side:    snap.Recommendation.Side(),
			Message: r.Recommendation(snap.Recommendation),
		},
	}
	if out.History == nil {
		out.History = []outcome.Symbol{}
	}
	if out.EVLog == nil {
		out.EVLog = []float64{}
	}
	if p := snap.Probabilities; p != nil {
		out.BankerProb = floatPtr(p.Banker)
		out.PlayerProb = floatPtr(p.Player)
	}
	if out.Recommendation.Side != "" {
		out.Recommendation.WinRate = floatPtr(snap.Recommendation.WinRate)
		out.Recommendation.EV = floatPtr(snap.Recommendation.EV)
	}
	return out
}

// newChartResponse 以 1 起算的局數作為 x 軸。
func newChartResponse(evLog []float64, r i18n.Renderer) chartResponse {
	points := make([]chartPoint, 0, len(evLog))
	for i, ev := range evLog {
		points = append(points, chartPoint{Step: i + 1, EV: ev})
	}
	return chartResponse{
		Success: true,
		Lang:    r.Lang(),
		Labels:  r.ChartLabels(),
		Points:  points,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
