package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StockStatusIn       = "in_stock"
	StockStatusOut      = "out_of_stock"
	StockStatusPreorder = "preorder"
)

type Product struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Slug          string              `bson:"slug" json:"slug"`
	Description   string              `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64             `bson:"price" json:"price"`
	SalePrice     *float64            `bson:"sale_price" json:"sale_price"`
	Currency      string              `bson:"currency,omitempty" json:"currency,omitempty"`
	Quantity      int                 `bson:"quantity" json:"quantity"`
	StockStatus   string              `bson:"stock_status" json:"stock_status"`
	Weight        float64             `bson:"weight,omitempty" json:"weight,omitempty"`
	Images        []string            `bson:"images" json:"images"`
	Tags          []string            `bson:"tags,omitempty" json:"tags,omitempty"`
	CategoryID    *primitive.ObjectID `bson:"category_id,omitempty" json:"category_id,omitempty"`
	SubcategoryID *primitive.ObjectID `bson:"subcategory_id,omitempty" json:"subcategory_id,omitempty"`
	MetaTitle     string              `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDesc      string              `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	MetaKeywords  []string            `bson:"meta_keywords,omitempty" json:"meta_keywords,omitempty"`
	RatingAverage float64             `bson:"rating_average" json:"rating_average"`
	RatingCount   int                 `bson:"rating_count" json:"rating_count"`
	Featured      bool                `bson:"featured" json:"featured"`
	IsActive      bool                `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}

// StockStatusFor derives stock status from quantity; it is never user-set.
func StockStatusFor(quantity int) string {
	if quantity > 0 {
		return StockStatusIn
	}
	return StockStatusOut
}
