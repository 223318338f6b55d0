package mockcred

// Seed inserts a credential version directly into the mock state, bypassing
// the HTTP API. Useful for arranging test preconditions.
func (s *Server) Seed(cred StoredCredential) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.credentials[cred.Name] = append([]StoredCredential{cred}, s.state.credentials[cred.Name]...)
}

// CredentialVersions returns a copy of the stored versions for name, newest
// first. Returns nil when the credential does not exist.
func (s *Server) CredentialVersions(name string) []StoredCredential {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	versions := s.state.credentials[name]
	if versions == nil {
		return nil
	}
	out := make([]StoredCredential, len(versions))
	copy(out, versions)
	return out
}

// Permissions returns a copy of the permissions attached to name.
func (s *Server) Permissions(name string) []StoredPermission {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	perms := s.state.permissions[name]
	if perms == nil {
		return nil
	}
	out := make([]StoredPermission, len(perms))
	copy(out, perms)
	return out
}

// Reset drops all stored credentials and permissions.
func (s *Server) Reset() {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.credentials = make(map[string][]StoredCredential)
	s.state.permissions = make(map[string][]StoredPermission)
	s.state.nextID = 1
}
