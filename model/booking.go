package model

import (
	"time"

	"github.com/kariago/kariago-backend/constant"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingEntity represents a document in the bookings collection
type BookingEntity struct {
	ID                   primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	IDBooking            string                 `bson:"id_booking" json:"id_booking"`
	DateHourBooking      time.Time              `bson:"date_hour_booking" json:"date_hour_booking"`
	DateHourExpire       time.Time              `bson:"date_hour_expire" json:"date_hour_expire"`
	IDUser               primitive.ObjectID     `bson:"id_user" json:"id_user"`
	IDCar                primitive.ObjectID     `bson:"id_car" json:"id_car"`
	CurrentKeyCar        string                 `bson:"current_Key_car" json:"current_Key_car"`
	Image                string                 `bson:"image,omitempty" json:"image,omitempty"`
	Status               constant.BookingStatus `bson:"status" json:"status"`
	Contrat              string                 `bson:"contrat,omitempty" json:"contrat,omitempty"`
	Paiement             float64                `bson:"paiement" json:"paiement"`
	LocationBeforeRent   string                 `bson:"location_Before_Renting,omitempty" json:"location_Before_Renting,omitempty"`
	LocationAfterRent    string                 `bson:"location_After_Renting,omitempty" json:"location_After_Renting,omitempty"`
	EstimatedLocation    string                 `bson:"estimated_Location,omitempty" json:"estimated_Location,omitempty"`
}

// BookingDetail is a booking joined with its user and car summaries
type BookingDetail struct {
	BookingEntity `bson:",inline"`
	User          *UserSummary `bson:"user,omitempty" json:"user,omitempty"`
	Car           *CarSummary  `bson:"car,omitempty" json:"car,omitempty"`
}

type CreateBookingRequest struct {
	IDUser             string    `json:"id_user" validate:"required"`
	IDCar              string    `json:"id_car" validate:"required"`
	DateHourBooking    time.Time `json:"date_hour_booking" validate:"required"`
	DateHourExpire     time.Time `json:"date_hour_expire" validate:"required"`
	CurrentKeyCar      string    `json:"current_Key_car"`
	Image              string    `json:"image"`
	Contrat            string    `json:"contrat"`
	Paiement           float64   `json:"paiement"`
	LocationBeforeRent string    `json:"location_Before_Renting"`
	EstimatedLocation  string    `json:"estimated_Location"`
}
