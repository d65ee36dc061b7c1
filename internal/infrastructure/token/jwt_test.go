package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)

	out, err := iss.Issue()
	if err != nil {
		t.Fatal(err)
	}
	if len(out.SessionID) != 32 {
		t.Errorf("expected 32 hex chars, got %q", out.SessionID)
	}
	sid, err := iss.Parse(out.Token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sid != out.SessionID {
		t.Errorf("expected %s, got %s", out.SessionID, sid)
	}

	other, _ := iss.Issue()
	if other.SessionID == out.SessionID {
		t.Error("session ids must be unique")
	}
}

func TestIssuer_Rejects(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)
	out, _ := iss.Issue()

	t.Run("Empty", func(t *testing.T) {
		if _, err := iss.Parse(" "); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewIssuer("other-secret", time.Hour)
		if _, err := other.Parse(out.Token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Tampered", func(t *testing.T) {
		parts := strings.Split(out.Token, ".")
		parts[1] = parts[1] + "x"
		if _, err := iss.Parse(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		past := NewIssuer("test-secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		old, err := past.Issue()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := iss.Parse(old.Token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	if NewIssuer("s", 0).TTL() != 24*time.Hour {
		t.Error("expected 24h default ttl")
	}
}
