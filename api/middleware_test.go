package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

func TestCredentialsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nominal", func(t *testing.T) {
		expected := models.Credentials{
			OrganizationId: "11111111-1111-1111-1111-111111111111",
			Role:           models.TECNICO,
			ActorIdentity: models.ActorIdentity{
				UserId: "u-1",
				Name:   "Carlos",
				Email:  "carlos@example.com",
			},
		}

		router := gin.New()
		router.GET("/test", credentialsMiddleware(), func(c *gin.Context) {
			creds := utils.CredentialsFromCtx(c.Request.Context())
			assert.Equal(t, expected, creds)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Org-Id", expected.OrganizationId)
		req.Header.Set("X-User-Role", "TECNICO")
		req.Header.Set("X-User-Id", "u-1")
		req.Header.Set("X-User-Name", "Carlos")
		req.Header.Set("X-User-Email", "carlos@example.com")

		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("missing organization header", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", credentialsMiddleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("unknown role falls back to NO_ROLE", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", credentialsMiddleware(), func(c *gin.Context) {
			creds := utils.CredentialsFromCtx(c.Request.Context())
			assert.Equal(t, models.NO_ROLE, creds.Role)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Org-Id", "11111111-1111-1111-1111-111111111111")
		req.Header.Set("X-User-Role", "SUPERVISOR")

		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})
}
