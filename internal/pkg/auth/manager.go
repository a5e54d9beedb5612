package auth

// SessionManager owns the explicit login/logout lifecycle. It is created
// once at startup and handed to every component that needs the current
// identity; there is no package-level session anywhere.
type SessionManager struct {
	current *Session
}

// NewSessionManager creates a manager with no active session.
func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// Set installs the session created at login.
func (m *SessionManager) Set(session *Session) {
	m.current = session
}

// Clear destroys the session at logout.
func (m *SessionManager) Clear() {
	m.current = nil
}

// Current returns the active session, nil before login or after logout.
func (m *SessionManager) Current() *Session {
	return m.current
}

// Authenticated reports whether a session is active.
func (m *SessionManager) Authenticated() bool {
	return m.current != nil
}
