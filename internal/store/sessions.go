package store

import "sync"

type (
	// SessionStore tracks which usernames are currently signed in, so
	// that sign-out invalidates a session server-side even while its
	// token is still within its expiry window.
	SessionStore interface {
		Active(username string) bool
		Set(username string)
		Remove(username string)
	}

	inMemorySessions struct {
		mu   sync.Mutex
		data map[string]struct{}
	}
)

func (sessions *inMemorySessions) Active(username string) bool {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()

	_, exists := sessions.data[username]
	return exists
}

func (sessions *inMemorySessions) Set(username string) {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()

	sessions.data[username] = struct{}{}
}

// Remove is idempotent; removing an absent session is a no-op.
func (sessions *inMemorySessions) Remove(username string) {
	sessions.mu.Lock()
	defer sessions.mu.Unlock()

	delete(sessions.data, username)
}

func NewSessionStore() SessionStore {
	return &inMemorySessions{data: make(map[string]struct{})}
}
