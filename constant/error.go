package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidCredentials
	ErrInvalidID
	ErrUserNotFound
	ErrCarNotFound
	ErrBookingNotFound
	ErrEmailExists
	ErrMatriculeExists
	ErrResetCodeInvalid
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrInvalidCredentials: "Invalid credentials",
	ErrInvalidID:          "Invalid identifier format",
	ErrUserNotFound:       "User not found",
	ErrCarNotFound:        "Car not found",
	ErrBookingNotFound:    "Booking not found",
	ErrEmailExists:        "User already exists with this email",
	ErrMatriculeExists:    "Car with this matricule already exists",
	ErrResetCodeInvalid:   "Invalid or expired reset code",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrInvalidID:          http.StatusBadRequest,
	ErrUserNotFound:       http.StatusNotFound,
	ErrCarNotFound:        http.StatusNotFound,
	ErrBookingNotFound:    http.StatusNotFound,
	ErrEmailExists:        http.StatusConflict,
	ErrMatriculeExists:    http.StatusConflict,
	ErrResetCodeInvalid:   http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrInvalidCredentials: "0005",
	ErrInvalidID:          "0006",
	ErrUserNotFound:       "0007",
	ErrCarNotFound:        "0008",
	ErrBookingNotFound:    "0009",
	ErrEmailExists:        "0010",
	ErrMatriculeExists:    "0011",
	ErrResetCodeInvalid:   "0012",
}
