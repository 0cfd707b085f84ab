package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// MaxRecentSessions bounds the recent-session history.
const MaxRecentSessions = 5

var sessionIDPattern = regexp.MustCompile(`^[A-Z]{2}\d{3}_.+$`)

type SessionID string

// ValidateSessionID trims the raw identifier and checks its shape.
func ValidateSessionID(raw string) (SessionID, error) {
	trimmed := strings.TrimSpace(raw)
	if !sessionIDPattern.MatchString(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSessionID, trimmed)
	}

	return SessionID(trimmed), nil
}

type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusExpired SessionStatus = "expired"
	SessionStatusInvalid SessionStatus = "invalid"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusActive, SessionStatusExpired, SessionStatusInvalid:
		return true
	default:
		return false
	}
}

type SessionHistoryEntry struct {
	SessionID  SessionID
	Timestamp  time.Time
	Domain     string
	ExpiryDate *float64
	Status     SessionStatus
}

// Expiry converts ExpiryDate to a time, returning the zero time when absent.
func (e SessionHistoryEntry) Expiry() time.Time {
	if e.ExpiryDate == nil {
		return time.Time{}
	}

	sec, frac := math.Modf(*e.ExpiryDate)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

type LastSession struct {
	SessionID SessionID
	Timestamp time.Time
	Bundle    SessionBundle
	Status    SessionStatus
}
