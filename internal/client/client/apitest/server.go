// Package apitest runs an in-memory user-account API for tests. It speaks
// the same routes, cookies and error bodies as the real server.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
)

// SessionCookie is the cookie the server issues on login and registration.
const SessionCookie = "sessionId"

// hashCost is the lowest bcrypt cost; the fake hashes on every request.
const hashCost = bcrypt.MinCost

type account struct {
	id           int
	username     string
	email        string
	passwordHash []byte
}

func (a *account) setPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), hashCost)
	if err != nil {
		return err
	}
	a.passwordHash = hash
	return nil
}

func (a *account) checkPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(raw)) == nil
}

func (a *account) user() models.User {
	return models.User{ID: models.UserID(strconv.Itoa(a.id)), Username: a.username, Email: a.email}
}

// Server is a running fake API. Use URL as the client's base URL.
type Server struct {
	*httptest.Server

	tb         testing.TB
	mu         sync.Mutex
	nextID     int
	accounts   map[int]*account
	sessions   map[string]int
	requestIDs []string
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{tb: t, nextID: 1, accounts: map[int]*account{}, sessions: map[string]int{}}
	s.Server = httptest.NewServer(s.Router())
	t.Cleanup(s.Close)
	return s
}

// Router returns the API routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recordRequestID)
	r.HandleFunc("/users/", s.register).Methods(http.MethodPost)
	r.HandleFunc("/users/", s.list).Methods(http.MethodGet)
	r.HandleFunc("/users/login/", s.login).Methods(http.MethodPost)
	r.HandleFunc("/users/logout/", s.logout).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/password/", s.changePassword).Methods(http.MethodPatch)
	r.HandleFunc("/users/{id}/email/", s.changeEmail).Methods(http.MethodPatch)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "path_not_found")
	})
	return r
}

// Seed adds an account directly.
func (s *Server) Seed(username, email, password string) models.User {
	s.tb.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := s.createLocked(username, email, password)
	if err != nil {
		s.tb.Fatalf("seed %s: %v", username, err)
	}
	return a.user()
}

// ExpireSessions forgets every issued session cookie.
func (s *Server) ExpireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = map[string]int{}
}

// RequestIDs returns the X-Request-ID of every request seen so far.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// CheckPassword reports whether password matches the stored hash of
// username. Unknown users never match.
func (s *Server) CheckPassword(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.byUsernameLocked(username)
	return a != nil && a.checkPassword(password)
}

func (s *Server) recordRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, r.Header.Get("X-Request-ID"))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.NewUser
	if !decode(w, r, &req) || req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byUsernameLocked(req.Username) != nil {
		writeError(w, http.StatusConflict, "user_already_exists")
		return
	}
	if s.byEmailLocked(req.Email) != nil {
		writeError(w, http.StatusConflict, "email_already_exists")
		return
	}

	a, err := s.createLocked(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}
	s.startSessionLocked(w, a)
	writeJSON(w, http.StatusCreated, a.user())
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.Credentials
	if !decode(w, r, &req) {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.byUsernameLocked(req.Username)
	if a == nil {
		writeError(w, http.StatusNotFound, "user_not_found")
		return
	}
	if !a.checkPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, "authentication_failed")
		return
	}

	s.startSessionLocked(w, a)
	writeJSON(w, http.StatusOK, a.user())
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.sessionLocked(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "session_not_found")
		return
	}
	delete(s.sessions, token)
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, models.Message{Message: "Logged out successfully"})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessionLocked(r); !ok {
		writeError(w, http.StatusUnauthorized, "session_not_found")
		return
	}

	ids := make([]int, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, s.accounts[id].user())
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordChange
	if !decode(w, r, &req) || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.ownerLocked(w, r)
	if !ok {
		return
	}
	if !a.checkPassword(req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, "authentication_failed")
		return
	}
	if err := a.setPassword(req.NewPassword); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}
	writeJSON(w, http.StatusOK, a.user())
}

func (s *Server) changeEmail(w http.ResponseWriter, r *http.Request) {
	var req models.EmailChange
	if !decode(w, r, &req) || req.NewEmail == "" {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.ownerLocked(w, r)
	if !ok {
		return
	}
	if !a.checkPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, "authentication_failed")
		return
	}
	if other := s.byEmailLocked(req.NewEmail); other != nil && other != a {
		writeError(w, http.StatusConflict, "email_already_exists")
		return
	}
	a.email = req.NewEmail
	writeJSON(w, http.StatusOK, a.user())
}

// ownerLocked resolves the session and checks it belongs to the {id} in the
// path. It writes the error response itself.
func (s *Server) ownerLocked(w http.ResponseWriter, r *http.Request) (*account, bool) {
	token, ok := s.sessionLocked(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "session_not_found")
		return nil, false
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || s.sessions[token] != id {
		writeError(w, http.StatusForbidden, "session_user_mismatch")
		return nil, false
	}
	a, ok := s.accounts[id]
	if !ok {
		writeError(w, http.StatusNotFound, "user_not_found")
		return nil, false
	}
	return a, true
}

func (s *Server) createLocked(username, email, password string) (*account, error) {
	a := &account{id: s.nextID, username: username, email: email}
	if err := a.setPassword(password); err != nil {
		return nil, err
	}
	s.accounts[a.id] = a
	s.nextID++
	return a, nil
}

func (s *Server) startSessionLocked(w http.ResponseWriter, a *account) {
	token := uuid.NewString()
	s.sessions[token] = a.id
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: token, Path: "/", HttpOnly: true})
}

func (s *Server) sessionLocked(r *http.Request) (string, bool) {
	ck, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	_, ok := s.sessions[ck.Value]
	return ck.Value, ok
}

func (s *Server) byUsernameLocked(username string) *account {
	for _, a := range s.accounts {
		if a.username == username {
			return a
		}
	}
	return nil
}

func (s *Server) byEmailLocked(email string) *account {
	for _, a := range s.accounts {
		if strings.EqualFold(a.email, email) {
			return a
		}
	}
	return nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(v) == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind string) {
	writeJSON(w, status, map[string]string{"error": kind})
}
