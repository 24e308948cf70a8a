package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapp/internal/domain/entity"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/domain/service"
	"todoapp/internal/errors"
	mockService "todoapp/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService) {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenSvc
}

func runGate(t *testing.T, mw *AuthMiddleware, header string) (*entity.Principal, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var resolved *entity.Principal
	err := mw.Authenticate(func(c echo.Context) error {
		p, ok := GetPrincipal(c)
		require.True(t, ok)
		resolved = &p

		return nil
	})(c)

	return resolved, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	mw, tokenSvc := newTestAuthMiddleware(t)
	principal := &entity.Principal{AccountID: uuid.New(), Email: "u1@example.com"}

	tokenSvc.EXPECT().ValidateToken("good.token.value").Return(principal, nil)

	resolved, err := runGate(t, mw, "Bearer good.token.value")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, *principal, *resolved)
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	mw, tokenSvc := newTestAuthMiddleware(t)

	tokenSvc.EXPECT().ValidateToken("tok").Return(&entity.Principal{AccountID: uuid.New()}, nil)

	_, err := runGate(t, mw, "bearer tok")
	assert.NoError(t, err)
}

func TestAuthenticate_MissingCredential(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Basic dXNlcjpwYXNz", "Bearer a b", "tok"} {
		t.Run(header, func(t *testing.T) {
			// The token service must not be consulted.
			mw, _ := newTestAuthMiddleware(t)

			resolved, err := runGate(t, mw, header)
			assert.Nil(t, resolved)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingCredential))
		})
	}
}

func TestAuthenticate_InvalidTokenCollapsesReasons(t *testing.T) {
	reasons := []error{service.ErrTokenMalformed, service.ErrTokenSignature, service.ErrTokenExpired}

	var responses []error
	for _, reason := range reasons {
		mw, tokenSvc := newTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.Wrap(reason, "verify"))

		resolved, err := runGate(t, mw, "Bearer garbage")
		assert.Nil(t, resolved)
		responses = append(responses, err)
	}

	for _, err := range responses {
		assert.Equal(t, domainerrors.ErrInvalidToken, err)
	}
}
