package telegram

import (
	"sync"

	"github.com/SheedNova/Film-App/internal/board"
)

// sessionManager holds per-chat board state and access control. State values
// are immutable, so reads hand out the current value and writes swap in the
// result of a transition under the lock.
type sessionManager struct {
	mu       sync.Mutex
	sessions map[int64]board.State
	allowed  map[int64]bool // nil or empty = allow all
}

// newSessionManager creates a session manager.
// If allowedUserIDs is empty, all users are allowed.
func newSessionManager(allowedUserIDs []int64) *sessionManager {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &sessionManager{
		sessions: make(map[int64]board.State),
		allowed:  allowed,
	}
}

// isAllowed checks if a user is authorized to use the bot.
func (sm *sessionManager) isAllowed(userID int64) bool {
	if len(sm.allowed) == 0 {
		return true
	}
	return sm.allowed[userID]
}

// state returns the chat's current state. A chat that was never seen gets
// the zero State: nothing on display, no favorites.
func (sm *sessionManager) state(chatID int64) board.State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.sessions[chatID]
}

// update applies a transition to the chat's state under the lock and returns
// the new state. Transitions are pure and cheap; anything slow (API calls)
// happens before calling update.
func (sm *sessionManager) update(chatID int64, fn func(board.State) board.State) board.State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	st := fn(sm.sessions[chatID])
	sm.sessions[chatID] = st
	return st
}

// reset clears a chat's state: board emptied, favorites gone.
func (sm *sessionManager) reset(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, chatID)
}
