package store

import "github.com/golibhub/golib-api/internal/models"

// Login replaces the current session with a synthetic identity derived
// from the chosen role. There is no credential check: role selection is
// authentication in this system.
func (s *Store) Login(role models.UserRole) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := "Staff Member"
	if role == models.RoleAdmin {
		name = "Administrator"
	}
	user := models.User{
		ID:       "1",
		Name:     name,
		Username: usernameForRole(role),
		Role:     role,
	}
	s.currentUser = &user
	return user
}

// Logout clears the session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// CurrentUser returns the active session identity, or false when logged out.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// requireAdmin is the centralized guard applied to every admin-only
// command. Callers must hold the mutex.
func (s *Store) requireAdmin() error {
	if s.currentUser == nil || s.currentUser.Role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func usernameForRole(role models.UserRole) string {
	if role == models.RoleAdmin {
		return "admin"
	}
	return "staff"
}
