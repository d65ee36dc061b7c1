package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"baccarat-ev/internal/domain/outcome"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API 與 Tracker 的執行設定。
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Session SessionConfig `yaml:"session"`
	Rules   RulesConfig   `yaml:"rules"`
	UI      UIConfig      `yaml:"ui"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// AllowedOrigins 為允許帶 cookie 跨域呼叫的來源；空白表示僅同源。
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type SessionConfig struct {
	Secret        string        `yaml:"secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	IdleTTL       time.Duration `yaml:"idle_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	SecureCookie  bool          `yaml:"secure_cookie"`
}

// RulesConfig 對應 outcome.Rules，未設定時採用標準賠率。
type RulesConfig struct {
	BankerPayout float64 `yaml:"banker_payout"`
	PlayerPayout float64 `yaml:"player_payout"`
	MinWinRate   float64 `yaml:"min_win_rate"`
}

type UIConfig struct {
	WebDir      string `yaml:"web_dir"`
	DefaultLang string `yaml:"default_lang"`
}

// OutcomeRules 轉為 domain 規則。
func (r RulesConfig) OutcomeRules() outcome.Rules {
	return outcome.Rules{
		BankerPayout: r.BankerPayout,
		PlayerPayout: r.PlayerPayout,
		MinWinRate:   r.MinWinRate,
	}
}

// LoadFromFile 從 YAML 組態檔載入設定，檔案不存在時只用預設值與環境變數。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	if err := cfg.Rules.OutcomeRules().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid rules: %w", err)
	}
	return cfg, nil
}

// WithDefaults 回傳補齊預設值後的設定，供測試或直接建構伺服器使用。
func WithDefaults(cfg Config) Config {
	return applyDefaults(cfg)
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "dev-secret-change-me"
	}
	if cfg.Session.TokenTTL == 0 {
		cfg.Session.TokenTTL = 24 * time.Hour
	}
	if cfg.Session.IdleTTL == 0 {
		cfg.Session.IdleTTL = 30 * time.Minute
	}
	if cfg.Session.SweepInterval == 0 {
		cfg.Session.SweepInterval = time.Minute
	}
	def := outcome.DefaultRules()
	if cfg.Rules.BankerPayout == 0 {
		cfg.Rules.BankerPayout = def.BankerPayout
	}
	if cfg.Rules.PlayerPayout == 0 {
		cfg.Rules.PlayerPayout = def.PlayerPayout
	}
	if cfg.Rules.MinWinRate == 0 {
		cfg.Rules.MinWinRate = def.MinWinRate
	}
	if cfg.UI.WebDir == "" {
		cfg.UI.WebDir = "web"
	}
	if cfg.UI.DefaultLang == "" {
		cfg.UI.DefaultLang = "zh-TW"
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("CORS_ALLOWED_ORIGINS"); val != "" {
		var origins []string
		for _, o := range strings.Split(val, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		cfg.Session.Secret = val
	}
	if val := os.Getenv("SESSION_IDLE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Session.IdleTTL = d
		}
	}
	if val := os.Getenv("SESSION_SWEEP_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Session.SweepInterval = d
		}
	}
	if val := os.Getenv("SESSION_SECURE_COOKIE"); val != "" {
		cfg.Session.SecureCookie = (val == "true")
	}
	if val := os.Getenv("RULES_BANKER_PAYOUT"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Rules.BankerPayout = f
		}
	}
	if val := os.Getenv("RULES_PLAYER_PAYOUT"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Rules.PlayerPayout = f
		}
	}
	if val := os.Getenv("RULES_MIN_WIN_RATE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Rules.MinWinRate = f
		}
	}
	if val := os.Getenv("DEFAULT_LANG"); val != "" {
		cfg.UI.DefaultLang = val
	}
	if val := os.Getenv("WEB_DIR"); val != "" {
		cfg.UI.WebDir = val
	}
	return cfg
}
