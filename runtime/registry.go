package runtime

import (
	"sync"

	"chat-hub/contract"
)

// Registry tracks every live session per user. A user may hold several
// concurrent sessions (several devices); the user counts as online while
// at least one session remains.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]map[string]contract.EventSink // userID -> sessionID -> sink
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]map[string]contract.EventSink),
	}
}

// Register adds a session's sink. The first boolean reports whether this
// is the user's first live session, which is the offline-to-online edge.
func (r *Registry) Register(userID, sessionID string, sink contract.EventSink) (first bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userSessions, ok := r.sessions[userID]
	if !ok {
		userSessions = make(map[string]contract.EventSink)
		r.sessions[userID] = userSessions
	}
	first = len(userSessions) == 0
	userSessions[sessionID] = sink
	return first
}

// Unregister removes a session. The boolean reports whether it was the
// user's last live session, the online-to-offline edge.
func (r *Registry) Unregister(userID, sessionID string) (last bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userSessions, ok := r.sessions[userID]
	if !ok {
		return false
	}
	if _, ok := userSessions[sessionID]; !ok {
		return false
	}
	delete(userSessions, sessionID)
	if len(userSessions) == 0 {
		// No empty maps left behind, they would leak over time.
		delete(r.sessions, userID)
		return true
	}
	return false
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions[userID]) > 0
}

func (r *Registry) SessionsOf(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions[userID]))
	for sessionID := range r.sessions[userID] {
		ids = append(ids, sessionID)
	}
	return ids
}

// SinksFor resolves the given users to their live sinks, every session of
// every user, skipping excludeUserID entirely. Offline users simply
// contribute nothing.
func (r *Registry) SinksFor(userIDs []string, excludeUserID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sinks []contract.EventSink
	for _, userID := range userIDs {
		if userID == excludeUserID {
			continue
		}
		for _, sink := range r.sessions[userID] {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

// AllSinks returns every live sink in the process, used for global
// events such as presence changes.
func (r *Registry) AllSinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sinks []contract.EventSink
	for _, userSessions := range r.sessions {
		for _, sink := range userSessions {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}
