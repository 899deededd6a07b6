package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cliniweb/internal/delivery/http/middleware"
	"cliniweb/internal/delivery/http/validator"
	"cliniweb/internal/domain/entity"
	domainerrors "cliniweb/internal/domain/errors"
	"cliniweb/internal/domain/repository"
	"cliniweb/internal/infra/auth"
	"cliniweb/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryCredentialRepo backs the handler tests with an in-memory store that
// rejects duplicate identifiers the way the real constraint does.
type memoryCredentialRepo struct {
	mu      sync.Mutex
	byID    map[string]*entity.Credential
	findErr error
}

func newMemoryCredentialRepo() *memoryCredentialRepo {
	return &memoryCredentialRepo{byID: make(map[string]*entity.Credential)}
}

func (m *memoryCredentialRepo) Insert(_ context.Context, credential *entity.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[credential.Identifier]; exists {
		return domainerrors.ErrIdentifierTaken.WrapMessage("identifier already registered")
	}

	credential.ID = uuid.New()
	stored := *credential
	m.byID[credential.Identifier] = &stored

	return nil
}

func (m *memoryCredentialRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}

	stored, exists := m.byID[identifier]
	if !exists {
		return nil, repository.ErrCredentialNotFound
	}

	found := *stored

	return &found, nil
}

// newTestServer wires the real service, hasher, validator, and error
// middleware behind an echo instance, the same chain production uses.
func newTestServer(repo *memoryCredentialRepo) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := impl.NewAuthService(impl.AuthServiceParams{
		CredentialRepo: repo,
		Hasher:         auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger:         logger,
	})
	authHandler := NewAuthHandler(service, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/health", HealthCheck)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_RegisterThenLogin(t *testing.T) {
	e := newTestServer(newMemoryCredentialRepo())

	rec := doJSON(e, http.MethodPost, "/api/register", `{"identifier":"a@x.com","password":"p1","role":"patient"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Message)
	// The hash must never be echoed back.
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = doJSON(e, http.MethodPost, "/api/login", `{"identifier":"a@x.com","password":"p1","role":"patient"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "patient-home", body.RedirectTo)
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	e := newTestServer(newMemoryCredentialRepo())

	tests := []struct {
		name string
		body string
	}{
		{name: "missing identifier", body: `{"password":"p1","role":"patient"}`},
		{name: "missing password", body: `{"identifier":"a@x.com","role":"patient"}`},
		{name: "missing role", body: `{"identifier":"a@x.com","password":"p1"}`},
		{name: "empty strings", body: `{"identifier":"","password":"","role":""}`},
		{name: "malformed body", body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newTestServer(newMemoryCredentialRepo())

	rec := doJSON(e, http.MethodPost, "/api/register", `{"identifier":"a@x.com","password":"p1","role":"patient"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same identifier, different password and role: still a conflict.
	rec = doJSON(e, http.MethodPost, "/api/register", `{"identifier":"a@x.com","password":"p2","role":"doctor"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "already registered")
}

func TestAuthHandler_Login_FailuresShareOneBody(t *testing.T) {
	e := newTestServer(newMemoryCredentialRepo())

	rec := doJSON(e, http.MethodPost, "/api/register", `{"identifier":"a@x.com","password":"p1","role":"patient"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	attempts := []string{
		`{"identifier":"nobody@x.com","password":"p1","role":"patient"}`, // unknown identifier
		`{"identifier":"a@x.com","password":"p1","role":"admin"}`,        // role mismatch
		`{"identifier":"a@x.com","password":"wrong","role":"patient"}`,   // wrong password
	}

	var bodies []string
	for _, attempt := range attempts {
		rec := doJSON(e, http.MethodPost, "/api/login", attempt)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	// Byte-identical responses across all 401 causes.
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestAuthHandler_Login_StoreFailureIsGeneric(t *testing.T) {
	repo := newMemoryCredentialRepo()
	repo.findErr = domainerrors.NewDatabaseExecuteError(
		assert.AnError, "lookup blew up: connection refused to 10.0.0.5:5432",
	)
	e := newTestServer(repo)

	rec := doJSON(e, http.MethodPost, "/api/login", `{"identifier":"a@x.com","password":"p1","role":"patient"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	// The driver detail stays server-side.
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "5432")
}

func TestAuthHandler_HealthCheck(t *testing.T) {
	e := newTestServer(newMemoryCredentialRepo())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}
