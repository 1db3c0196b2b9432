// Package testutil provides a fake campus-check server for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"campus-check-dashboard/src/models"
	"campus-check-dashboard/src/utils"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// RecordedRequest what the fake server saw for one call
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
}

// FakeServer mimics /admin/login, /staff/ and /record/. Data endpoints demand the
// issued bearer token, like the real server.
type FakeServer struct {
	*httptest.Server

	Username string
	Token    string

	mu           sync.Mutex
	passwordHash []byte
	staff        []models.StaffMember
	records      []models.AttendanceRecord
	failures     map[string]int    // path -> status
	rawBodies    map[string]string // path -> body override
	requests     []RecordedRequest
}

// NewFakeServer starts a server accepting username/password. It is closed by t.Cleanup.
func NewFakeServer(t testing.TB, username, password string) *FakeServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	token, err := utils.GenerateJWT(username, []byte("fake-server-secret"), time.Hour)
	require.NoError(t, err)

	fs := &FakeServer{
		Username:     username,
		Token:        token,
		passwordHash: hash,
		staff:        []models.StaffMember{},
		records:      []models.AttendanceRecord{},
		failures:     make(map[string]int),
		rawBodies:    make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", fs.handleLogin)
	mux.HandleFunc("/staff/", fs.guard(func(w http.ResponseWriter) {
		writeJSON(w, http.StatusOK, models.StaffResponse{Staff: fs.staff})
	}))
	mux.HandleFunc("/record/", fs.guard(func(w http.ResponseWriter) {
		writeJSON(w, http.StatusOK, models.RecordResponse{Records: fs.records})
	}))

	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

func (fs *FakeServer) SetData(staff []models.StaffMember, records []models.AttendanceRecord) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.staff = staff
	fs.records = records
}

// FailWith makes path answer status until cleared with status 0.
func (fs *FakeServer) FailWith(path string, status int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if status == 0 {
		delete(fs.failures, path)
		return
	}
	fs.failures[path] = status
}

// ServeRaw makes path answer 200 with body verbatim.
func (fs *FakeServer) ServeRaw(path, body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.rawBodies[path] = body
}

// RotateToken invalidates every token issued so far.
func (fs *FakeServer) RotateToken(t testing.TB) {
	t.Helper()
	token, err := utils.GenerateJWT(fs.Username+"-rotated", []byte("fake-server-secret"), time.Hour)
	require.NoError(t, err)
	fs.mu.Lock()
	fs.Token = token
	fs.mu.Unlock()
}

func (fs *FakeServer) Requests() []RecordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]RecordedRequest(nil), fs.requests...)
}

func (fs *FakeServer) record(r *http.Request) {
	fs.requests = append(fs.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
	})
}

func (fs *FakeServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.record(r)

	if status, ok := fs.failures[r.URL.Path]; ok {
		writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
		return
	}
	if body, ok := fs.rawBodies[r.URL.Path]; ok {
		w.Write([]byte(body))
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req models.LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if req.User != fs.Username || bcrypt.CompareHashAndPassword(fs.passwordHash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": fs.Token, "message": "Login successful"})
}

func (fs *FakeServer) guard(next func(w http.ResponseWriter)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.record(r)

		if status, ok := fs.failures[r.URL.Path]; ok {
			writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}
		if strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") != fs.Token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		if body, ok := fs.rawBodies[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		next(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
