package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapp/config"
	apimiddleware "todoapp/internal/delivery/api/middleware"
	"todoapp/internal/delivery/api/router"
	"todoapp/internal/delivery/api/router/handler"
	"todoapp/internal/infra/auth"
	"todoapp/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test-secret"},
		Auth:      &config.AuthConfig{TokenTTL: config.DefaultTokenTTL, MinPasswordLength: 6},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := newMemoryStore()
	accountRepo := &memoryAccountRepo{store: store}
	todoRepo := &memoryTodoRepo{store: store}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})
	todoUC := impl.NewTodoService(impl.TodoServiceParams{
		TxManager: store,
		TodoRepo:  todoRepo,
		Logger:    logger,
	})

	r := router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: logger}),
		TodoHandler:    handler.NewTodoHandler(handler.TodoHandlerParams{TodoUC: todoUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokenService,
			Logger:       logger,
		}),
	})

	return &testServer{t: t, echo: NewEcho(cfg, logger, r)}
}

func (s *testServer) do(method, path, token, body string) (int, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.NotEmpty(s.t, env.Meta.RequestID)
	assert.Equal(s.t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))

	return rec.Code, env
}

func (s *testServer) signup(email string) string {
	s.t.Helper()

	code, env := s.do(http.MethodPost, "/auth/signup", "", `{"email":"`+email+`","password":"pw123456"}`)
	require.Equal(s.t, http.StatusCreated, code)

	var out handler.AuthResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(s.t, out.Token)

	return "Bearer " + out.Token
}

type todoView struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func decodeTodo(t *testing.T, env envelope) todoView {
	t.Helper()

	var todo todoView
	require.NoError(t, json.Unmarshal(env.Data, &todo))

	return todo
}

func TestServer_TodoLifecycle(t *testing.T) {
	s := newTestServer(t)
	bearer := s.signup("u1@example.com")

	code, env := s.do(http.MethodPost, "/api/todos", bearer, `{"title":"buy milk"}`)
	require.Equal(t, http.StatusCreated, code)
	created := decodeTodo(t, env)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)

	code, env = s.do(http.MethodPatch, "/api/todos/"+created.ID, bearer, `{"completed":true}`)
	require.Equal(t, http.StatusOK, code)
	updated := decodeTodo(t, env)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title)

	code, env = s.do(http.MethodGet, "/api/todos", bearer, "")
	require.Equal(t, http.StatusOK, code)
	var list []todoView
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	code, env = s.do(http.MethodDelete, "/api/todos/"+created.ID, bearer, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":"`+created.ID+`","deleted":true}`, string(env.Data))

	code, env = s.do(http.MethodGet, "/api/todos/"+created.ID, bearer, "")
	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TODO_NOT_FOUND", env.Error.Code)
}

func TestServer_ListIsNewestFirstAndOwnerScoped(t *testing.T) {
	s := newTestServer(t)
	u1 := s.signup("u1@example.com")
	u2 := s.signup("u2@example.com")

	for _, title := range []string{"first", "second", "third"} {
		code, _ := s.do(http.MethodPost, "/api/todos", u1, `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, code)
	}

	_, env := s.do(http.MethodGet, "/api/todos", u1, "")
	var list []todoView
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)

	_, env = s.do(http.MethodGet, "/api/todos", u2, "")
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestServer_CrossAccountAccessIsForbidden(t *testing.T) {
	s := newTestServer(t)
	u1 := s.signup("u1@example.com")
	u2 := s.signup("u2@example.com")

	_, env := s.do(http.MethodPost, "/api/todos", u1, `{"title":"private"}`)
	todo := decodeTodo(t, env)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		body := ""
		if method == http.MethodPatch {
			body = `{"title":"stolen"}`
		}

		code, env := s.do(method, "/api/todos/"+todo.ID, u2, body)
		assert.Equal(t, http.StatusForbidden, code, method)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	}

	code, env := s.do(http.MethodGet, "/api/todos/"+todo.ID, u1, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "private", decodeTodo(t, env).Title)
}

func TestServer_NotFoundAndBadID(t *testing.T) {
	s := newTestServer(t)
	bearer := s.signup("u1@example.com")

	code, env := s.do(http.MethodGet, "/api/todos/0190a6a4-6b1c-7c3e-9f00-000000000000", bearer, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "TODO_NOT_FOUND", env.Error.Code)

	code, env = s.do(http.MethodGet, "/api/todos/not-a-uuid", bearer, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestServer_AuthGate(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/todos", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "MISSING_CREDENTIAL", env.Error.Code)

	code, env = s.do(http.MethodGet, "/api/todos", "Token abc", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "MISSING_CREDENTIAL", env.Error.Code)

	code, env = s.do(http.MethodGet, "/api/todos", "Bearer garbage", "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	bearer := s.signup("u1@example.com")
	code, _ = s.do(http.MethodGet, "/auth/me", bearer, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestServer_SignupAndLogin(t *testing.T) {
	s := newTestServer(t)
	s.signup("u1@example.com")

	code, env := s.do(http.MethodPost, "/auth/signup", "", `{"email":"u1@example.com","password":"another1"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_EXISTS", env.Error.Code)

	code, env = s.do(http.MethodPost, "/auth/signup", "", `{"email":"u2@example.com","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	code, env = s.do(http.MethodPost, "/auth/signup", "", `{"email":"u3@example.com","password":"`+strings.Repeat("é", 40)+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	code, env = s.do(http.MethodPost, "/auth/login", "", `{"email":"u1@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, code)
	var out handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "u1@example.com", out.Email)

	wrongCode, wrongEnv := s.do(http.MethodPost, "/auth/login", "", `{"email":"u1@example.com","password":"wrong-pw"}`)
	unknownCode, unknownEnv := s.do(http.MethodPost, "/auth/login", "", `{"email":"nobody@example.com","password":"pw123456"}`)
	assert.Equal(t, http.StatusUnauthorized, wrongCode)
	assert.Equal(t, wrongCode, unknownCode)
	assert.Equal(t, wrongEnv.Error, unknownEnv.Error)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}
