package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jewelshop/config"
	"jewelshop/internal/delivery/api/middleware"
	"jewelshop/internal/delivery/api/response"
	"jewelshop/internal/delivery/api/validator"
	"jewelshop/internal/domain/service"
	mockSvc "jewelshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// apiEnvelope decodes both success and error responses.
type apiEnvelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testServer struct {
	e        *echo.Echo
	auth     *middleware.AuthMiddleware
	session  *middleware.SessionMiddleware
	tokenSvc *mockSvc.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cart:  &config.CartConfig{TTL: 24 * time.Hour},
		Order: &config.OrderConfig{Currency: "KES"},
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := newDiscardLogger()
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return &testServer{
		e:        e,
		auth:     middleware.NewAuthMiddleware(tokenSvc),
		session:  middleware.NewSessionMiddleware(24 * time.Hour),
		tokenSvc: tokenSvc,
	}
}

// signIn registers a token for the user and returns the Authorization header value.
func (s *testServer) signIn(userID uuid.UUID, roles ...string) string {
	token := "token-" + userID.String()
	s.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: userID, Roles: roles}, nil)

	return "Bearer " + token
}

func (s *testServer) do(t *testing.T, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, *apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	if rec.Code == http.StatusNoContent {
		return rec, nil
	}

	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, &env
}

func decodeData[T any](t *testing.T, env *apiEnvelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}
