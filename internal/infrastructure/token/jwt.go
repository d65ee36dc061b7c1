package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken 表示 session token 無法驗證。
var ErrInvalidToken = errors.New("invalid session token")

// Issuer 產生／驗證瀏覽器 session 使用的 JWT。
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Claims 定義 session token 的 payload。
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issued 為簽發結果。
type Issued struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// NewIssuer 建立簽發器。
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL 回傳 token 有效期間。
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue 產生新的 session id 並簽發 token。
func (i *Issuer) Issue() (Issued, error) {
	sid, err := randomID()
	if err != nil {
		return Issued{}, fmt.Errorf("generate session id: %w", err)
	}
	now := i.now()
	exp := now.Add(i.ttl)
	claims := Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Issued{}, fmt.Errorf("sign session token: %w", err)
	}
	return Issued{Token: signed, SessionID: sid, ExpiresAt: exp}, nil
}

// Parse 驗證 token 並回傳 session id。
func (i *Issuer) Parse(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalidToken
	}
	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}

func randomID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
