package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kariago/kariago-backend/application/auth"
	bookingapp "github.com/kariago/kariago-backend/application/booking"
	carapp "github.com/kariago/kariago-backend/application/car"
	reclamationapp "github.com/kariago/kariago-backend/application/reclamation"
	userapp "github.com/kariago/kariago-backend/application/user"
	"github.com/kariago/kariago-backend/constant"
	"github.com/kariago/kariago-backend/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	CarApp         carapp.CarApp
	BookingApp     bookingapp.BookingApp
	ReclamationApp reclamationapp.ReclamationApp
}

func NewTransport(
	authApp auth.AuthApp,
	userApp userapp.UserApp,
	carApp carapp.CarApp,
	bookingApp bookingapp.BookingApp,
	reclamationApp reclamationapp.ReclamationApp,
	internalAPIKey string,
) http.Handler {
	m := mux.NewRouter().StrictSlash(true)

	rh := &RestHandler{
		UserApp:        userApp,
		CarApp:         carApp,
		BookingApp:     bookingApp,
		ReclamationApp: reclamationApp,
	}

	// Swagger UI
	m.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public user routes
	m.HandleFunc("/api/users/signup", rh.Signup).Methods(http.MethodPost)
	m.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)
	m.HandleFunc("/api/users/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	m.HandleFunc("/api/users/reset-password", rh.ResetPassword).Methods(http.MethodPost)

	// Protected user routes
	m.HandleFunc("/api/users", rh.ListUsers).Methods(http.MethodGet)
	m.HandleFunc("/api/users/{id}", rh.GetUser).Methods(http.MethodGet)
	m.HandleFunc("/api/users/{id}", rh.UpdateUser).Methods(http.MethodPut)

	// Car routes
	m.HandleFunc("/api/cars", rh.CreateCar).Methods(http.MethodPost)
	m.HandleFunc("/api/cars", rh.ListCars).Methods(http.MethodGet)
	m.HandleFunc("/api/cars/{id}", rh.GetCar).Methods(http.MethodGet)

	// Booking routes
	m.HandleFunc("/api/bookings", rh.CreateBooking).Methods(http.MethodPost)
	m.HandleFunc("/api/bookings", rh.ListBookings).Methods(http.MethodGet)

	// Reclamation routes
	m.HandleFunc("/api/reclamations", rh.CreateReclamation).Methods(http.MethodPost)
	m.HandleFunc("/api/reclamations", rh.ListReclamations).Methods(http.MethodGet)

	// Internal routes, called by the queue worker
	m.Handle("/internal/v1/bookings/{id}/expire",
		InternalMiddleware(internalAPIKey)(http.HandlerFunc(rh.ExpireBooking))).Methods(http.MethodPost)

	// middleware
	m.Use(LoggingMiddleware())
	m.Use(AuthMiddleware(authApp))

	return m
}

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: message,
		Data:    data,
	})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: message,
	})
}

func writeError(w http.ResponseWriter, err error) {
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), response{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}

	ce := errors.SetCustomError(constant.ErrInternal)
	writeJSON(w, ce.ErrorHTTPCode(), response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
