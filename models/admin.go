package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`

	ResetCode        string     `bson:"reset_code,omitempty" json:"-"`
	ResetCodeExpiry  *time.Time `bson:"reset_code_expiry,omitempty" json:"-"`
	ResetToken       string     `bson:"reset_token,omitempty" json:"-"`
	ResetAttempts    int        `bson:"reset_attempts,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
