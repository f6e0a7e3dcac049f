package rmiddleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRoles map[uint]string

func (f fakeRoles) RoleOf(_ context.Context, id uint) (string, error) {
	role, ok := f[id]
	if !ok {
		return "", common.ErrUserNotFound
	}
	return role, nil
}

func serveAs(userID uint) (int, responses.ErrorResponse) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(common.ContextUserIDKey, userID)
		}
	})
	r.Use(VenueOwnerOrAdminMiddleware(fakeRoles{1: "athlete", 2: "venue", 3: "ADMIN"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body responses.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestRoleMiddleware(t *testing.T) {
	code, body := serveAs(0)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, http.StatusUnauthorized, body.Code)

	code, body = serveAs(1)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Access to this resource is forbidden", body.Message)

	code, _ = serveAs(2)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = serveAs(3)
	assert.Equal(t, http.StatusNoContent, code)

	code, body = serveAs(9)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "User role not found", body.Message)
}
