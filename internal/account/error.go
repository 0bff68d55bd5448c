package account

import "github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"

var (
	ErrMissingCredentials = httpx.E(httpx.Validation, "Phone number and password are required")
	ErrInvalidCredentials = httpx.E(httpx.Authentication, "Invalid phone number or password")
	ErrMissingFields      = httpx.E(httpx.Validation, "All fields are required")
	ErrUserExists         = httpx.E(httpx.Conflict, "User already exists.")
	ErrAdminExists        = httpx.E(httpx.Conflict, "Admin already exists")
	ErrUserNotFound       = httpx.E(httpx.NotFound, "User not found.")
	ErrAdminNotFound      = httpx.E(httpx.NotFound, "Admin not found.")
	ErrForbiddenProfile   = httpx.E(httpx.Authorization, "You can only update your own profile.")
	ErrNoProfileUpdate    = httpx.E(httpx.Validation, "No data provided for update")
)
