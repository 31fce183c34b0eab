package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"contest-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(DefaultConfig("test-secret", 1))
	require.NoError(t, err)
	return service
}

func testJudge(admin bool) *models.Judge {
	return &models.Judge{
		ExternalID: "j100",
		Name:       "Judge One",
		IsAdmin:    admin,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testService(t)
	judge := testJudge(false)
	judge.ID = 7

	token, expiresIn, err := service.GenerateToken(judge)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.JudgeID)
	assert.Equal(t, "j100", claims.ExternalID)
	assert.Equal(t, "Judge One", claims.Name)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "contest-backend", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := testService(t)
	token, _, err := service.GenerateToken(testJudge(false))
	require.NoError(t, err)

	other, err := NewAuthService(DefaultConfig("another-secret", 1))
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := testService(t)

	claims := &JudgeClaims{
		JudgeID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateToken_RejectsUnsignedToken(t *testing.T) {
	service := testService(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &JudgeClaims{JudgeID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(&Config{})
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	content := "jwt_secret: from-file\ntoken_expiry_hours: 6\nissuer: contest-test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 6, cfg.TokenExpiryHours)
	assert.Equal(t, "contest-test", cfg.Issuer)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt_secret: s\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.TokenExpiryHours)
	assert.Equal(t, "contest-backend", cfg.Issuer)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func setupMiddlewareRouter(t *testing.T, service *AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	judged := router.Group("/judged")
	judged.Use(middleware.RequireJudge())
	judged.GET("/me", func(c *gin.Context) {
		id, ok := JudgeIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"judge_id": id})
	})

	admin := judged.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireJudge(t *testing.T) {
	service := testService(t)
	router := setupMiddlewareRouter(t, service)

	judge := testJudge(false)
	judge.ID = 3
	token, _, err := service.GenerateToken(judge)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/judged/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	service := testService(t)
	router := setupMiddlewareRouter(t, service)

	judgeToken, _, err := service.GenerateToken(testJudge(false))
	require.NoError(t, err)
	adminToken, _, err := service.GenerateToken(testJudge(true))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/judged/admin", nil)
	req.Header.Set("Authorization", "Bearer "+judgeToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/judged/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
