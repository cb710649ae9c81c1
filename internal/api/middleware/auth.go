package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/api/metrics"
)

// Auth is the token guard: it extracts a candidate token from the request,
// verifies signature and expiry against the shared secret, and injects the
// decoded user_id and email claims into the echo context. Stateless — its
// only effect on a passing request is the context attachment.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "A token is required for authentication")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set("user_id", claims["user_id"])
			c.Set("email", claims["email"])

			return next(c)
		}
	}
}

// extractToken checks, in order of precedence: a "token" field in a JSON
// body, a "token" query parameter, the x-access-token header, and finally a
// standard bearer Authorization header. First hit wins.
func extractToken(c echo.Context) string {
	if tok := tokenFromBody(c); tok != "" {
		return tok
	}
	if tok := c.QueryParam("token"); tok != "" {
		return tok
	}
	if tok := c.Request().Header.Get("x-access-token"); tok != "" {
		return tok
	}

	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return ""
}

// tokenFromBody peeks at a JSON body for a top-level "token" field. The body
// is restored afterwards so downstream handlers can still bind it.
func tokenFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}

	body, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var payload struct {
		Token string `json:"token"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	return payload.Token
}
