package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiagnostiqueVidange holds the three oil-change maintenance counters
type DiagnostiqueVidange struct {
	Vidange1 int `bson:"vidange1" json:"vidange1"`
	Vidange2 int `bson:"vidange2" json:"vidange2"`
	Vidange3 int `bson:"vidange3" json:"vidange3"`
}

// CarEntity represents a document in the cars collection
type CarEntity struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	IDCar               string              `bson:"id_car" json:"id_car"`
	Matricule           string              `bson:"matricule" json:"matricule"`
	Marque              string              `bson:"marque" json:"marque"`
	Panne               string              `bson:"panne" json:"panne"`
	PanneIA             string              `bson:"panne_ia" json:"panne_ia"`
	Location            string              `bson:"location" json:"location"`
	VisiteTechnique     time.Time           `bson:"visite_technique" json:"visite_technique"`
	CarWork             bool                `bson:"car_work" json:"car_work"`
	DateAssurance       time.Time           `bson:"date_assurance" json:"date_assurance"`
	Vignette            time.Time           `bson:"vignette" json:"vignette"`
	DiagnostiqueVidange DiagnostiqueVidange `bson:"diagnostique_vidange" json:"diagnostique_vidange"`
}

// CarFilter for querying cars
type CarFilter struct {
	ID        primitive.ObjectID
	Matricule string
}

// CarSummary is the subset embedded in booking listings
type CarSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Matricule string             `bson:"matricule" json:"matricule"`
	Marque    string             `bson:"marque" json:"marque"`
	Location  string             `bson:"location" json:"location"`
}

type CreateCarRequest struct {
	Matricule       string    `json:"matricule" validate:"required"`
	Marque          string    `json:"marque" validate:"required"`
	Panne           string    `json:"panne" validate:"required"`
	PanneIA         string    `json:"panne_ia" validate:"required"`
	Location        string    `json:"location" validate:"required"`
	VisiteTechnique time.Time `json:"visite_technique" validate:"required"`
	CarWork         *bool     `json:"car_work"`
	DateAssurance   time.Time `json:"date_assurance" validate:"required"`
	Vignette        time.Time `json:"vignette" validate:"required"`
}
