package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"prohub/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func request(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func routerWithUser(user *models.User, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) { c.Set(CheckUserKey, user) })
	}
	r.GET("/guarded", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestModeratorRequired(t *testing.T) {
	cases := []struct {
		name string
		user *models.User
		code int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"member", &models.User{ID: 1, Role: models.RoleMember}, http.StatusForbidden},
		{"editor", &models.User{ID: 1, Role: models.RoleEditor}, http.StatusForbidden},
		{"moderator", &models.User{ID: 1, Role: models.RoleModerator}, http.StatusOK},
		{"admin", &models.User{ID: 1, Role: models.RoleAdmin}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := routerWithUser(tc.user, ModeratorRequired())
			assert.Equal(t, tc.code, request(r, "/guarded").Code)
		})
	}
}

func TestAdminRequired(t *testing.T) {
	r := routerWithUser(&models.User{ID: 1, Role: models.RoleModerator}, AdminRequired())
	assert.Equal(t, http.StatusForbidden, request(r, "/guarded").Code)

	r = routerWithUser(&models.User{ID: 1, Role: models.RoleAdmin}, AdminRequired())
	assert.Equal(t, http.StatusOK, request(r, "/guarded").Code)
}

func TestAuthRequired(t *testing.T) {
	r := routerWithUser(nil, AuthRequired())
	assert.Equal(t, http.StatusUnauthorized, request(r, "/guarded").Code)

	r = routerWithUser(&models.User{ID: 1}, AuthRequired())
	assert.Equal(t, http.StatusOK, request(r, "/guarded").Code)
}
