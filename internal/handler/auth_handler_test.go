package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/imtti/institute-api/internal/handler"
	"github.com/imtti/institute-api/internal/models"
	"github.com/imtti/institute-api/internal/service"
)

type mockAuthService struct {
	admin   models.Admin
	center  models.Center
	student models.Student
	err     error
}

func (m *mockAuthService) LoginAdmin(context.Context, string, string) (models.Admin, error) {
	if m.err != nil {
		return models.Admin{}, m.err
	}
	return m.admin, nil
}

func (m *mockAuthService) LoginCenter(context.Context, string, string) (models.Center, error) {
	if m.err != nil {
		return models.Center{}, m.err
	}
	return m.center, nil
}

func (m *mockAuthService) LoginStudent(context.Context, string, string) (models.Student, error) {
	if m.err != nil {
		return models.Student{}, m.err
	}
	return m.student, nil
}

func newAuthApp(svc *mockAuthService) *fiber.App {
	app := fiber.New()
	handler.NewAuthHandler(svc, testLogger()).Register(app.Group("/api/auth"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandlerAdminSuccess(t *testing.T) {
	svc := &mockAuthService{admin: models.Admin{ID: 1, Email: "admin@imtti.com"}}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/auth/admin", `{"email":"admin@imtti.com","password":"admin123"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool         `json:"success"`
		User    models.Admin `json:"user"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, "admin@imtti.com", response.User.Email)
}

func TestAuthHandlerInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{err: service.ErrInvalidCredentials}
	app := newAuthApp(svc)

	for _, path := range []string{"/api/auth/admin", "/api/auth/center", "/api/auth/student"} {
		resp := postJSON(t, app, path, `{}`)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)

		var response struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		decodeResponse(t, resp, &response)
		require.False(t, response.Success)
		require.Equal(t, "Invalid credentials", response.Message)
	}
}

func TestAuthHandlerLookupFailure(t *testing.T) {
	svc := &mockAuthService{err: errors.New("relation does not exist")}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/auth/student", `{"registration_id":"REG-1","date_of_birth":"2001-01-01"}`)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var response struct {
		Error string `json:"error"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, "relation does not exist", response.Error)
}

func TestAuthHandlerStudentSuccessReturnsRow(t *testing.T) {
	reg := "REG-1"
	dob := "2001-01-01"
	svc := &mockAuthService{student: models.Student{ID: 9, RegistrationID: &reg, DateOfBirth: &dob}}
	app := newAuthApp(svc)

	resp := postJSON(t, app, "/api/auth/student", `{"registration_id":"REG-1","date_of_birth":"2001-01-01"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool           `json:"success"`
		User    models.Student `json:"user"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, uint(9), response.User.ID)
	require.Equal(t, "REG-1", *response.User.RegistrationID)
}
