package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEntity represents a document in the users collection
type UserEntity struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Cin               string             `bson:"cin" json:"cin"`
	Permis            string             `bson:"permis" json:"permis"`
	NumPhone          string             `bson:"num_phone" json:"num_phone"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"password" json:"-"`
	Facture           float64            `bson:"facture" json:"facture"`
	NbrFoisAllocation int                `bson:"nbr_fois_allocation" json:"nbr_fois_allocation"`
	Blacklist         bool               `bson:"blacklist" json:"blacklist"`
	ResetToken        string             `bson:"resetToken,omitempty" json:"-"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       primitive.ObjectID
	Email    string
	Cin      string
	NumPhone string
}

// UserUpdate holds the profile fields a user may change
type UserUpdate struct {
	Permis   string
	NumPhone string
	Email    string
}

// UserSummary is the subset embedded in booking and reclamation listings
type UserSummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Cin      string             `bson:"cin" json:"cin"`
	NumPhone string             `bson:"num_phone" json:"num_phone"`
	Email    string             `bson:"email" json:"email"`
}

// SignupRequest for user registration
type SignupRequest struct {
	Cin      string `json:"cin" validate:"required"`
	Permis   string `json:"permis" validate:"required"`
	NumPhone string `json:"num_phone" validate:"required,len=8,numeric"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *UserEntity `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UpdateUserRequest carries the editable profile fields; anything else
// (facture, blacklist, allocation counter) is never client-writable.
type UpdateUserRequest struct {
	Permis   string `json:"permis" validate:"omitempty"`
	NumPhone string `json:"num_phone" validate:"omitempty,len=8,numeric"`
	Email    string `json:"email" validate:"omitempty,email"`
}
