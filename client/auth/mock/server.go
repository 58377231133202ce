package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/viant/svcauth/client/auth"
)

// UserService is a mock backend exposing "get current user" and a protected resource.
// A request is authorized when it carries Token in the "token" query param,
// the Auth-Access-Token header or an "Authorization: Bearer" header.
type UserService struct {
	Token string
	User  auth.User

	// UserHandler overrides /auth/user when set.
	UserHandler http.HandlerFunc
	// ResourceHandler overrides /resource when set.
	ResourceHandler http.HandlerFunc

	mu        sync.Mutex
	userCalls int
	lastToken string
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (s *UserService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.lastToken = RequestToken(r)
	s.mu.Unlock()
	switch r.URL.Path {
	case "/auth/user":
		if s.UserHandler != nil {
			s.UserHandler(w, r)
			return
		}
		s.defaultUserHandler(w, r)
	case "/resource":
		if s.ResourceHandler != nil {
			s.ResourceHandler(w, r)
			return
		}
		s.defaultResourceHandler(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *UserService) defaultUserHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.userCalls++
	s.mu.Unlock()
	if !s.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, &auth.Response{Result: s.User})
}

func (s *UserService) defaultResourceHandler(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, map[string]interface{}{"status": "success", "query": r.URL.Query()})
}

func (s *UserService) authorized(r *http.Request) bool {
	return s.Token == "" || RequestToken(r) == s.Token
}

// UserCalls returns how many times the default user handler was hit.
func (s *UserService) UserCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userCalls
}

// LastToken returns the token carried by the most recent request.
func (s *UserService) LastToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastToken
}

// NewHTTPTestUserService starts an httptest server backed by service.
func NewHTTPTestUserService(service *UserService) *httptest.Server {
	return httptest.NewServer(service)
}

// RequestToken extracts the token a request carries, if any.
func RequestToken(r *http.Request) string {
	if token := r.URL.Query().Get(auth.ParamToken); token != "" {
		return token
	}
	if token := r.Header.Get(auth.DefaultHeaderKey); token != "" {
		return token
	}
	if value := r.Header.Get(auth.AuthorizationHeader); len(value) > 7 && value[:7] == "Bearer " {
		return value[7:]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
