package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "frontdesk/errors"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, role int) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userinfo": map[string]interface{}{"userid": 7, "role": role},
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func serve(r *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header = header
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", AuthMiddleware(secret, 1, 3), func(c *gin.Context) {
		operatorID, _ := c.Get(KeyOperatorID)
		c.JSON(http.StatusOK, gin.H{"operator": operatorID, "key": OperatorKey(c), "token": Token(c) != ""})
	})

	w := serve(r, http.Header{"Authorization": {"Bearer " + token(t, 3)}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"operator":7,"key":"operator:7","token":true}`, w.Body.String())

	w = serve(r, http.Header{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.Header{"Authorization": {"Bearer garbage"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.Header{"Authorization": {"Bearer " + token(t, 2)}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set(KeyRole, 2)
		c.Next()
	}, RoleMiddleware(1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusForbidden, serve(r, http.Header{}).Code)
}

func TestSessionMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(SessionMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})

	id := uuid.NewString()
	w := serve(r, http.Header{"X-Session-Id": {id}})
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, id, w.Header().Get("X-Session-ID"))

	w = serve(r, http.Header{"X-Session-Id": {"not-a-uuid"}})
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", w.Body.String())
}

func TestOperatorKey(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"authenticated", uint(42), "operator:42"},
		{"zero id", uint(0), ""},
		{"wrong type", "42", ""},
		{"missing", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.value != nil {
				c.Set(KeyOperatorID, tt.value)
			}
			assert.Equal(t, tt.want, OperatorKey(c))
		})
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/window", func(c *gin.Context) {
		_ = c.Error(apperrors.NewAppError(apperrors.ErrCodeInvalidWindow, "khoảng không hợp lệ", nil))
	})
	r.GET("/throttled", func(c *gin.Context) {
		_ = c.Error(&apperrors.ThrottledError{RetryAfter: 3 * time.Second})
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	assert.Equal(t, http.StatusBadRequest, get("/window").Code)
	w := get("/throttled")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusInternalServerError, get("/boom").Code)
}
