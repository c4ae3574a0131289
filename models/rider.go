package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	VehicleBike = "bike"
	VehicleCar  = "car"
	VehicleVan  = "van"
)

// GeoPoint is a GeoJSON point, longitude first.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Rider struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name           string               `bson:"name" json:"name"`
	Email          string               `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string               `bson:"phone" json:"phone"`
	VehicleType    string               `bson:"vehicle_type" json:"vehicle_type"`
	ProfileImage   string               `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	CnicFrontImage string               `bson:"cnic_front_image,omitempty" json:"cnic_front_image,omitempty"`
	CnicBackImage  string               `bson:"cnic_back_image,omitempty" json:"cnic_back_image,omitempty"`
	BikeDocument   string               `bson:"bike_document,omitempty" json:"bike_document,omitempty"`
	Location       *GeoPoint            `bson:"location,omitempty" json:"location,omitempty"`
	IsAvailable    bool                 `bson:"is_available" json:"is_available"`
	AssignedOrders []primitive.ObjectID `bson:"assigned_orders" json:"assigned_orders"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
}
