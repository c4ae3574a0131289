package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	SortOrder int                `bson:"sort_order" json:"sort_order"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Featured  bool               `bson:"featured" json:"featured"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type Subcategory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	CategoryID   primitive.ObjectID `bson:"category_id" json:"category_id"`
	Color        string             `bson:"color,omitempty" json:"color,omitempty"`
	SortOrder    int                `bson:"sort_order" json:"sort_order"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	ProductCount int                `bson:"product_count" json:"product_count"`
	Featured     bool               `bson:"featured" json:"featured"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
