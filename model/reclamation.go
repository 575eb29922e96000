package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReclamationEntity represents a document in the reclamations collection
type ReclamationEntity struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	IDReclamation string             `bson:"id_reclamation" json:"id_reclamation"`
	IDUser        primitive.ObjectID `bson:"id_user" json:"id_user"`
	Message       string             `bson:"message" json:"message"`
	DateCreated   time.Time          `bson:"date_created" json:"date_created"`
}

// ReclamationDetail is a reclamation joined with its user summary
type ReclamationDetail struct {
	ReclamationEntity `bson:",inline"`
	User              *UserSummary `bson:"user,omitempty" json:"user,omitempty"`
}

type CreateReclamationRequest struct {
	IDUser  string `json:"id_user" validate:"required"`
	Message string `json:"message" validate:"required"`
}
