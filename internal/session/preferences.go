// Package session keeps the two per-session dashboard preferences:
// which hotel the operator is working on and the scope mode of the
// views.  Preferences are written fire-and-forget to Redis so they
// survive a dashboard reload; when no Redis is reachable the store
// degrades to process-local memory, matching how the rest of the
// application treats Redis as optional.
package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Preferences are the session-scoped dashboard settings.
type Preferences struct {
	ActiveHotelID string `json:"active_hotel_id"`
	ScopeMode     string `json:"scope_mode"`
}

const prefsTTL = 24 * time.Hour

// PreferenceStore reads and writes Preferences keyed by session id.
// A nil Redis client is allowed and leaves only the in-memory copy.
type PreferenceStore struct {
	rdb *redis.Client

	mu    sync.RWMutex
	local map[string]Preferences
}

// NewPreferenceStore constructs a PreferenceStore around an optional
// Redis client.
func NewPreferenceStore(rdb *redis.Client) *PreferenceStore {
	return &PreferenceStore{rdb: rdb, local: make(map[string]Preferences)}
}

func prefsKey(sessionID string) string { return "session:" + sessionID + ":prefs" }

// Get returns the preferences for a session.  The local copy wins when
// present; otherwise Redis is consulted.  Unknown sessions get zero
// preferences, which the dashboard treats as "first hotel, default
// scope".
func (p *PreferenceStore) Get(ctx context.Context, sessionID string) Preferences {
	p.mu.RLock()
	prefs, ok := p.local[sessionID]
	p.mu.RUnlock()
	if ok {
		return prefs
	}
	if p.rdb == nil {
		return Preferences{}
	}
	raw, err := p.rdb.Get(ctx, prefsKey(sessionID)).Bytes()
	if err != nil {
		return Preferences{}
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return Preferences{}
	}
	p.mu.Lock()
	p.local[sessionID] = prefs
	p.mu.Unlock()
	return prefs
}

// Set stores the preferences for a session.  The local copy is updated
// synchronously; the Redis write is fire-and-forget, so a slow or dead
// broker never delays the request that changed the preference.
func (p *PreferenceStore) Set(ctx context.Context, sessionID string, prefs Preferences) {
	p.mu.Lock()
	p.local[sessionID] = prefs
	p.mu.Unlock()
	if p.rdb == nil {
		return
	}
	raw, err := json.Marshal(prefs)
	if err != nil {
		log.Printf("session: marshal preferences failed: %v", err)
		return
	}
	go func() {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := p.rdb.Set(wctx, prefsKey(sessionID), raw, prefsTTL).Err(); err != nil {
			log.Printf("session: persist preferences failed: %v", err)
		}
	}()
}
