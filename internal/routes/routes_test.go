package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/credentials"
	"github.com/BruksfildServices01/hbnb/internal/facade"
	infraRepo "github.com/BruksfildServices01/hbnb/internal/infra/repository"
	"github.com/BruksfildServices01/hbnb/internal/testutil"
	useruc "github.com/BruksfildServices01/hbnb/internal/usecase/user"
)

type memRevoker struct{ revoked map[string]bool }

func (m *memRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	m.revoked[jti] = true
	return nil
}

func (m *memRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return m.revoked[jti], nil
}

type server struct {
	t      *testing.T
	router *gin.Engine
	tokens *credentials.TokenIssuer
	admin  string
}

func newServer(t *testing.T) *server {
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	auditLogger := audit.New(db)
	f := facade.New(
		infraRepo.NewGormStore(db),
		credentials.NewBcryptHasher(bcrypt.MinCost),
		nil,
		auditLogger,
	)

	admin, _, err := f.EnsureAdmin(context.Background(), useruc.CreateUserInput{
		FirstName: "Admin", LastName: "HBnB", Email: "admin@hbnb.com", Password: "admin1234",
	})
	require.NoError(t, err)

	tokens := credentials.NewTokenIssuer("test-secret", time.Hour)
	adminToken, err := tokens.Issue(admin)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, Dependencies{
		Facade:  f,
		Tokens:  tokens,
		Revoker: &memRevoker{revoked: map[string]bool{}},
	})

	return &server{t: t, router: r, tokens: tokens, admin: adminToken}
}

func (s *server) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func (s *server) register(first, email string) (token, id string) {
	s.t.Helper()
	w, body := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"first_name": first, "last_name": "Test", "email": email, "password": "pw1",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	user := body["user"].(map[string]any)
	return body["access_token"].(string), user["id"].(string)
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	w, body := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthFlow(t *testing.T) {
	s := newServer(t)
	token, id := s.register("Bob", "bob@x.com")

	w, body := s.do(http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, body["id"])
	assert.NotContains(t, w.Body.String(), "password")

	w, _ = s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"first_name": "Bob", "last_name": "Test", "email": "bob@x.com", "password": "pw1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/auth/register", token, gin.H{
		"first_name": "Again", "last_name": "Test", "email": "again@x.com", "password": "pw1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "bob@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "bob@x.com", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)
	fresh := body["access_token"].(string)

	w, _ = s.do(http.MethodPost, "/api/v1/auth/logout", fresh, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/users/me", fresh, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, "other sessions stay valid")
}

func TestPlaceAndReviewFlow(t *testing.T) {
	s := newServer(t)
	bob, _ := s.register("Bob", "bob@x.com")
	alice, _ := s.register("Alice", "alice@x.com")

	w, body := s.do(http.MethodPost, "/api/v1/amenities", bob, gin.H{"name": "WiFi"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = s.do(http.MethodPost, "/api/v1/amenities", s.admin, gin.H{"name": "WiFi"})
	require.Equal(t, http.StatusCreated, w.Code)
	wifi := body["id"].(string)

	w, body = s.do(http.MethodPost, "/api/v1/places", bob, gin.H{
		"title": "Cabin", "price": 50, "latitude": 91, "longitude": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "latitude", body["field"])

	w, body = s.do(http.MethodPost, "/api/v1/places", "", gin.H{
		"title": "Cabin", "price": 50, "latitude": 10, "longitude": 10,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(http.MethodPost, "/api/v1/places", bob, gin.H{
		"title": "Cabin", "price": 50, "latitude": 10, "longitude": 10, "amenities": []string{wifi},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placeID := body["id"].(string)
	assert.Len(t, body["amenities"], 1)

	w, _ = s.do(http.MethodPut, "/api/v1/places/"+placeID, alice, gin.H{"title": "Stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = s.do(http.MethodPut, "/api/v1/places/"+placeID, bob, gin.H{"amenities": []string{}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["amenities"])

	w, _ = s.do(http.MethodPost, "/api/v1/reviews", bob, gin.H{"place_id": placeID, "text": "mine", "rating": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = s.do(http.MethodPost, "/api/v1/reviews", alice, gin.H{"place_id": placeID, "text": "cosy", "rating": 4})
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := body["id"].(string)

	w, _ = s.do(http.MethodPost, "/api/v1/reviews", alice, gin.H{"place_id": placeID, "text": "again", "rating": 4})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, body = s.do(http.MethodGet, "/api/v1/places/"+placeID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, _ = s.do(http.MethodDelete, "/api/v1/reviews/"+reviewID, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/v1/reviews/"+reviewID, alice, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = s.do(http.MethodDelete, "/api/v1/amenities/"+wifi, s.admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(http.MethodDelete, "/api/v1/amenities/"+wifi, s.admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedBody(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
}

func TestAuditLogsAdminOnly(t *testing.T) {
	s := newServer(t)
	bob, _ := s.register("Bob", "bob@x.com")

	w, _ := s.do(http.MethodGet, "/api/v1/admin/audit-logs", bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body := s.do(http.MethodGet, "/api/v1/admin/audit-logs?limit=5", s.admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "data")

	w, _ = s.do(http.MethodGet, "/api/v1/admin/audit-logs?limit=x", s.admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
