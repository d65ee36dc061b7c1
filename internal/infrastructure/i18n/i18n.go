package i18n

import (
	"fmt"
	"strconv"

	"baccarat-ev/internal/domain/outcome"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	keyInsufficient = "recommend.insufficient"
	keyBanker       = "recommend.banker"
	keyPlayer       = "recommend.player"
	keyObserve      = "recommend.observe"
	keyChartDataset = "chart.dataset"
	keyChartY       = "chart.axis.y"
	keyChartX       = "chart.axis.x"
)

// supported 第一個為預設語系。
var supported = []language.Tag{
	language.TraditionalChinese,
	language.English,
}

var (
	matcher = language.NewMatcher(supported)
	cat     = mustCatalog(messages)
)

var messages = map[language.Tag]map[string]string{
	language.TraditionalChinese: {
		keyInsufficient: "資料不足",
		keyBanker:       "建議下注【莊】，勝率 %s%%，EV %s",
		keyPlayer:       "建議下注【閒】，勝率 %s%%，EV %s",
		keyObserve:      "目前無正EV下注建議，建議觀望",
		keyChartDataset: "每局期望值 (EV)",
		keyChartY:       "期望值",
		keyChartX:       "局數",
	},
	language.English: {
		keyInsufficient: "Insufficient data",
		keyBanker:       "Bet BANKER: win rate %s%%, EV %s",
		keyPlayer:       "Bet PLAYER: win rate %s%%, EV %s",
		keyObserve:      "No positive-EV bet right now; observe",
		keyChartDataset: "EV per hand",
		keyChartY:       "Expected value",
		keyChartX:       "Hand",
	},
}

// buildCatalog 將訊息表寫入 catalog，任一訊息無法編譯即回傳錯誤。
func buildCatalog(entries map[language.Tag]map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.TraditionalChinese))
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("set message %s/%s: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

func mustCatalog(entries map[language.Tag]map[string]string) *catalog.Builder {
	b, err := buildCatalog(entries)
	if err != nil {
		panic(err)
	}
	return b
}

// Resolve 將語系代碼（如 zh-TW、en-US）對應到支援的語系，無法對應時回傳 fallback。
func Resolve(code string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(code)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}

// Negotiate 先看 query 指定的語系，再看 Accept-Language，最後使用 fallback。
func Negotiate(override, acceptLanguage string, fallback language.Tag) language.Tag {
	if override != "" {
		if tag := Resolve(override, language.Und); tag != language.Und {
			return tag
		}
	}
	if acceptLanguage != "" {
		return Resolve(acceptLanguage, fallback)
	}
	return fallback
}

// Code 回傳前端使用的語系代碼。
func Code(tag language.Tag) string {
	if tag == language.English {
		return "en"
	}
	return "zh-TW"
}

// Default 回傳預設語系。
func Default() language.Tag {
	return supported[0]
}

// Renderer 依語系輸出建議與圖表文字。
type Renderer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewRenderer 建立指定語系的 Renderer。
func NewRenderer(tag language.Tag) Renderer {
	return Renderer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Lang 回傳語系代碼。
func (r Renderer) Lang() string {
	return Code(r.tag)
}

// Recommendation 將建議轉為文字；勝率以百分比兩位小數、EV 三位小數呈現。
func (r Renderer) Recommendation(rec outcome.Recommendation) string {
	switch rec.Kind {
	case outcome.KindBanker:
		return r.printer.Sprintf(keyBanker, percent(rec.WinRate), fixed(rec.EV, 3))
	case outcome.KindPlayer:
		return r.printer.Sprintf(keyPlayer, percent(rec.WinRate), fixed(rec.EV, 3))
	case outcome.KindObserve:
		return r.printer.Sprintf(keyObserve)
	default:
		return r.printer.Sprintf(keyInsufficient)
	}
}

// ChartLabels 回傳圖表資料集名稱與兩軸標題。
type ChartLabels struct {
	Dataset string `json:"dataset"`
	XAxis   string `json:"x_axis"`
	YAxis   string `json:"y_axis"`
}

func (r Renderer) ChartLabels() ChartLabels {
	return ChartLabels{
		Dataset: r.printer.Sprintf(keyChartDataset),
		XAxis:   r.printer.Sprintf(keyChartX),
		YAxis:   r.printer.Sprintf(keyChartY),
	}
}

func percent(v float64) string {
	return fixed(v*100, 2)
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
