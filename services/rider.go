package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"petshop-admin/models"
	"petshop-admin/utils"
)

var vehicleTypes = map[string]bool{
	models.VehicleBike: true,
	models.VehicleCar:  true,
	models.VehicleVan:  true,
}

func NewRider(in Input) (*models.Rider, error) {
	name := in.String("name")
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}
	phone := in.String("phone")
	if phone == "" {
		return nil, utils.NewValidationError("phone", "phone is required")
	}
	vehicle := in.String("vehicle_type")
	if !vehicleTypes[vehicle] {
		return nil, utils.NewValidationError("vehicle_type", "vehicle_type must be one of bike, car, van")
	}

	now := time.Now()
	rider := &models.Rider{
		Name:           name,
		Email:          in.String("email"),
		Phone:          phone,
		VehicleType:    vehicle,
		IsAvailable:    true,
		AssignedOrders: []primitive.ObjectID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if in.Has("is_available") {
		rider.IsAvailable = in.Bool("is_available")
	}

	location, err := riderLocation(in)
	if err != nil {
		return nil, err
	}
	rider.Location = location

	return rider, nil
}

func RiderUpdate(in Input) (bson.M, error) {
	set := bson.M{}

	if in.Has("name") {
		name := in.String("name")
		if name == "" {
			return nil, utils.NewValidationError("name", "name cannot be empty")
		}
		set["name"] = name
	}
	if in.Has("email") {
		set["email"] = in.String("email")
	}
	if in.Has("phone") {
		phone := in.String("phone")
		if phone == "" {
			return nil, utils.NewValidationError("phone", "phone cannot be empty")
		}
		set["phone"] = phone
	}
	if in.Has("vehicle_type") {
		vehicle := in.String("vehicle_type")
		if !vehicleTypes[vehicle] {
			return nil, utils.NewValidationError("vehicle_type", "vehicle_type must be one of bike, car, van")
		}
		set["vehicle_type"] = vehicle
	}
	if in.Has("is_available") {
		set["is_available"] = in.Bool("is_available")
	}
	if in.Has("latitude") || in.Has("longitude") {
		location, err := riderLocation(in)
		if err != nil {
			return nil, err
		}
		if location != nil {
			set["location"] = location
		}
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now()
	}
	return set, nil
}

// riderLocation builds a GeoJSON point from latitude/longitude fields;
// both must be present together.
func riderLocation(in Input) (*models.GeoPoint, error) {
	if !in.Has("latitude") && !in.Has("longitude") {
		return nil, nil
	}
	if !in.Has("latitude") || !in.Has("longitude") {
		return nil, utils.NewValidationError("location", "latitude and longitude must be provided together")
	}

	lat, err := in.Float("latitude")
	if err != nil || lat < -90 || lat > 90 {
		return nil, utils.NewValidationError("latitude", "latitude must be between -90 and 90")
	}
	lng, err := in.Float("longitude")
	if err != nil || lng < -180 || lng > 180 {
		return nil, utils.NewValidationError("longitude", "longitude must be between -180 and 180")
	}

	return &models.GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}, nil
}
