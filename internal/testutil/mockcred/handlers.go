package mockcred

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authToken != "" && r.Header.Get("Authorization") != "Bearer "+s.authToken {
			writeError(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleSetCredential handles PUT /api/v1/data requests. When the request is
// not marked overwrite and a credential already exists under the name, the
// existing current version is returned unchanged; otherwise a new version is
// prepended and returned.
func (s *Server) handleSetCredential(w http.ResponseWriter, r *http.Request) {
	var req SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "type is required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	versions := s.state.credentials[req.Name]
	if len(versions) > 0 && !req.Overwrite {
		writeJSON(w, http.StatusOK, versions[0])
		return
	}

	cred := StoredCredential{
		ID:               fmt.Sprintf("mock-cred-%d", s.state.nextID),
		Name:             req.Name,
		Type:             req.Type,
		Value:            req.Value,
		VersionCreatedAt: time.Now().UTC(),
	}
	s.state.nextID++
	s.state.credentials[req.Name] = append([]StoredCredential{cred}, versions...)

	if len(req.AdditionalPermissions) > 0 {
		s.state.permissions[req.Name] = append(s.state.permissions[req.Name], req.AdditionalPermissions...)
	}

	writeJSON(w, http.StatusOK, cred)
}

// handleGetCredentials handles GET /api/v1/data?name=<name>[&current=true].
// With current=true only the newest version is returned in the envelope.
func (s *Server) handleGetCredentials(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	versions, ok := s.state.credentials[name]
	if !ok || len(versions) == 0 {
		writeError(w, http.StatusNotFound, "credential does not exist")
		return
	}

	if r.URL.Query().Get("current") == "true" {
		writeJSON(w, http.StatusOK, DataResponse{Data: versions[:1]})
		return
	}

	writeJSON(w, http.StatusOK, DataResponse{Data: versions})
}

// handleGetCredentialByID handles GET /api/v1/data/{id}.
func (s *Server) handleGetCredentialByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	for _, versions := range s.state.credentials {
		for _, cred := range versions {
			if cred.ID == id {
				writeJSON(w, http.StatusOK, cred)
				return
			}
		}
	}

	writeError(w, http.StatusNotFound, "credential version does not exist")
}

// handleDeleteCredential handles DELETE /api/v1/data?name=<name>. All
// versions and attached permissions are removed.
func (s *Server) handleDeleteCredential(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.credentials[name]; !ok {
		writeError(w, http.StatusNotFound, "credential does not exist")
		return
	}

	delete(s.state.credentials, name)
	delete(s.state.permissions, name)

	w.WriteHeader(http.StatusNoContent)
}

// handleGetPermissions handles GET /api/v1/permissions?credential_name=<name>.
func (s *Server) handleGetPermissions(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("credential_name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "credential_name query parameter is required")
		return
	}

	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	if _, ok := s.state.credentials[name]; !ok {
		writeError(w, http.StatusNotFound, "credential does not exist")
		return
	}

	perms := s.state.permissions[name]
	if perms == nil {
		perms = []StoredPermission{}
	}

	writeJSON(w, http.StatusOK, PermissionsPayload{
		CredentialName: name,
		Permissions:    perms,
	})
}

// handleAddPermissions handles POST /api/v1/permissions.
func (s *Server) handleAddPermissions(w http.ResponseWriter, r *http.Request) {
	var req PermissionsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CredentialName == "" {
		writeError(w, http.StatusBadRequest, "credential_name is required")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.credentials[req.CredentialName]; !ok {
		writeError(w, http.StatusNotFound, "credential does not exist")
		return
	}

	s.state.permissions[req.CredentialName] = append(s.state.permissions[req.CredentialName], req.Permissions...)

	w.WriteHeader(http.StatusCreated)
}

// writeJSON writes a JSON response with correct Content-Type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
