package utils

import (
	"sync"
	"time"
)

var (
	blacklistedTokens = make(map[string]time.Time)
	blacklistMutex    sync.RWMutex
)

// BlacklistToken keeps a logged-out token rejected until it would have
// expired anyway.
func BlacklistToken(token string) {
	blacklistMutex.Lock()
	defer blacklistMutex.Unlock()
	blacklistedTokens[token] = time.Now().Add(24 * time.Hour)
}

func IsTokenBlacklisted(token string) bool {
	blacklistMutex.RLock()
	expiry, exists := blacklistedTokens[token]
	blacklistMutex.RUnlock()

	if !exists {
		return false
	}
	if time.Now().Before(expiry) {
		return true
	}

	blacklistMutex.Lock()
	delete(blacklistedTokens, token)
	blacklistMutex.Unlock()
	return false
}

func init() {
	go cleanupBlacklist()
}

func cleanupBlacklist() {
	for {
		time.Sleep(1 * time.Hour)
		blacklistMutex.Lock()
		now := time.Now()
		for token, expiry := range blacklistedTokens {
			if now.After(expiry) {
				delete(blacklistedTokens, token)
			}
		}
		blacklistMutex.Unlock()
	}
}
