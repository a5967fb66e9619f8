package echoServer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func identityContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractIdentity_SetsUserID(t *testing.T) {
	ctx, _ := identityContext(t)
	ctx.Set("user", &jwt.Token{Claims: jwt.MapClaims{"sub": float64(42)}})

	var seen int64
	h := extractIdentity(func(c echo.Context) error {
		seen = c.Get("user_id").(int64)
		return nil
	})
	require.NoError(t, h(ctx))
	require.EqualValues(t, 42, seen)
}

func TestExtractIdentity_RejectsMissingToken(t *testing.T) {
	ctx, rec := identityContext(t)

	called := false
	h := extractIdentity(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(ctx))
	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
