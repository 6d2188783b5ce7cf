package utils

import "github.com/gofiber/fiber/v2"

// ErrDatabaseNotConnected is the fixed message returned while the service
// runs without a connection pool.
const ErrDatabaseNotConnected = "Database not connected"

// ErrorResponse is the wire shape of every failure response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is the wire shape of a successful login.
type AuthResponse struct {
	Success bool        `json:"success"`
	User    interface{} `json:"user"`
}

// AuthFailureResponse is the wire shape of a rejected login.
type AuthFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// SendDatabaseUnavailable sends the fixed 503 body used while no pool is
// present.
func SendDatabaseUnavailable(c *fiber.Ctx) error {
	return SendError(c, fiber.StatusServiceUnavailable, ErrDatabaseNotConnected)
}

// SendAuthSuccess sends the matched row for a successful login.
func SendAuthSuccess(c *fiber.Ctx, user interface{}) error {
	return c.Status(fiber.StatusOK).JSON(AuthResponse{Success: true, User: user})
}

// SendAuthFailure sends the fixed 401 body for rejected credentials.
func SendAuthFailure(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(AuthFailureResponse{
		Success: false,
		Message: "Invalid credentials",
	})
}
