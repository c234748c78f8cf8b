package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// OAuth state tokens guard the callback against CSRF. They are single-use
// and expire quickly, so an in-process map is sufficient.

const stateTTL = 10 * time.Minute

type stateEntry struct {
	provider  string
	userAgent string
	expiresAt time.Time
}

var (
	stateMu    sync.Mutex
	stateStore = make(map[string]stateEntry)
)

func GenerateOAuthState(provider, userAgent string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	stateMu.Lock()
	defer stateMu.Unlock()

	pruneExpiredStates()
	stateStore[state] = stateEntry{
		provider:  provider,
		userAgent: userAgent,
		expiresAt: time.Now().Add(stateTTL),
	}

	return state, nil
}

// ValidateOAuthState consumes the token; a second validation of the same
// token fails.
func ValidateOAuthState(state, provider, userAgent string) error {
	stateMu.Lock()
	defer stateMu.Unlock()

	entry, ok := stateStore[state]
	if !ok {
		return fmt.Errorf("unknown state token")
	}
	delete(stateStore, state)

	if time.Now().After(entry.expiresAt) {
		return fmt.Errorf("state token expired")
	}
	if entry.provider != provider {
		return fmt.Errorf("state token issued for different provider")
	}
	if entry.userAgent != userAgent {
		return fmt.Errorf("state token issued for different client")
	}

	return nil
}

func pruneExpiredStates() {
	now := time.Now()
	for state, entry := range stateStore {
		if now.After(entry.expiresAt) {
			delete(stateStore, state)
		}
	}
}
