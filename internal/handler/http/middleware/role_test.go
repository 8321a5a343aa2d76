package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/hrms-backend-go/internal/domain/user"
)

func requestWithRole(t *testing.T, role user.Role) *http.Request {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"email": "someone@staffhub.io",
		"name":  "Someone",
		"role":  string(role),
		"type":  "access",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestRequireSuperAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		role user.Role
		want int
	}{
		{user.RoleSuperAdmin, http.StatusOK},
		{user.RoleAdmin, http.StatusForbidden},
		{user.RoleEmployee, http.StatusForbidden},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		RequireSuperAdmin(next).ServeHTTP(rec, requestWithRole(t, c.role))
		assert.Equal(t, c.want, rec.Code, "role %s", c.role)
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		role user.Role
		want int
	}{
		{user.RoleSuperAdmin, http.StatusOK},
		{user.RoleAdmin, http.StatusOK},
		{user.RoleEmployee, http.StatusForbidden},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, requestWithRole(t, c.role))
		assert.Equal(t, c.want, rec.Code, "role %s", c.role)
	}
}

func TestRequireAdminMissingClaims(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
