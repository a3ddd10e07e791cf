package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Session is the in-memory login state for one operator. There are only two
// states: a session exists (logged in) or it does not.
type Session struct {
	ID         string
	Username   string
	LoggedInAt time.Time
}

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions expire with the 24h token lifetime; expired items are purged
	// every 10 minutes.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*Session), true
	}
	return nil, false
}

func (r *SessionRepository) Exists(sessionID string) bool {
	_, found := r.cache.Get(sessionID)
	return found
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
