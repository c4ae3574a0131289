package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/models"
	"petshop-admin/utils"
)

// SlugExistsFunc reports whether a slug is already taken. Update paths pass
// a closure that excludes the document being updated.
type SlugExistsFunc func(slug string) (bool, error)

// NewProduct builds a product document from an arbitrary field set.
func NewProduct(in Input, slugExists SlugExistsFunc) (*models.Product, error) {
	name := in.String("name")
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}
	if !in.Has("price") {
		return nil, utils.NewValidationError("price", "price is required")
	}

	price, err := in.Float("price")
	if err != nil || price < 0 {
		return nil, utils.NewValidationError("price", "price must be a non-negative number")
	}

	slug, err := utils.UniqueSlug(name, slugExists)
	if err != nil {
		return nil, err
	}

	quantity := 0
	if in.Has("quantity") || in.Has("quantity_in_stock") {
		key := "quantity"
		if !in.Has(key) {
			key = "quantity_in_stock"
		}
		if quantity, err = in.Int(key); err != nil || quantity < 0 {
			return nil, utils.NewValidationError("quantity", "quantity must be a non-negative integer")
		}
	}

	sale, err := salePrice(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &models.Product{
		Name:        name,
		Slug:        slug,
		Description: in.String("description"),
		Price:       price,
		SalePrice:   sale,
		Currency:    in.String("currency"),
		Quantity:    quantity,
		StockStatus: models.StockStatusFor(quantity),
		Images:      []string{},
		Tags:        in.StringList("tags"),
		MetaTitle:   in.String("meta_title"),
		MetaDesc:    in.String("meta_description"),
		Featured:    in.Bool("featured"),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.Has("is_active") {
		product.IsActive = in.Bool("is_active")
	}
	if in.Has("weight") {
		if product.Weight, err = in.Float("weight"); err != nil {
			return nil, utils.NewValidationError("weight", "weight must be numeric")
		}
	}
	if in.Has("meta_keywords") {
		product.MetaKeywords = in.StringList("meta_keywords")
	}

	return product, nil
}

// ProductUpdate maps an arbitrary field set to a typed partial update. Keys
// absent from the input never appear in the result. The slug is regenerated
// only when the name changes; stock status is rederived whenever quantity is
// part of the update.
func ProductUpdate(in Input, current *models.Product, slugExists SlugExistsFunc) (bson.M, error) {
	set := bson.M{}

	if in.Has("name") {
		name := in.String("name")
		if name == "" {
			return nil, utils.NewValidationError("name", "name cannot be empty")
		}
		set["name"] = name
		if name != current.Name {
			slug, err := utils.UniqueSlug(name, slugExists)
			if err != nil {
				return nil, err
			}
			set["slug"] = slug
		}
	}

	if in.Has("description") {
		set["description"] = in.String("description")
	}
	if in.Has("price") {
		price, err := in.Float("price")
		if err != nil || price < 0 {
			return nil, utils.NewValidationError("price", "price must be a non-negative number")
		}
		set["price"] = price
	}
	if in.Has("sale_price") {
		sale, err := salePrice(in)
		if err != nil {
			return nil, err
		}
		set["sale_price"] = sale
	}
	if in.Has("currency") {
		set["currency"] = in.String("currency")
	}
	if in.Has("quantity") || in.Has("quantity_in_stock") {
		key := "quantity"
		if !in.Has(key) {
			key = "quantity_in_stock"
		}
		quantity, err := in.Int(key)
		if err != nil || quantity < 0 {
			return nil, utils.NewValidationError("quantity", "quantity must be a non-negative integer")
		}
		set["quantity"] = quantity
		set["stock_status"] = models.StockStatusFor(quantity)
	}
	if in.Has("weight") {
		weight, err := in.Float("weight")
		if err != nil {
			return nil, utils.NewValidationError("weight", "weight must be numeric")
		}
		set["weight"] = weight
	}
	if in.Has("tags") {
		set["tags"] = in.StringList("tags")
	}
	if in.Has("meta_title") {
		set["meta_title"] = in.String("meta_title")
	}
	if in.Has("meta_description") {
		set["meta_description"] = in.String("meta_description")
	}
	if in.Has("meta_keywords") {
		set["meta_keywords"] = in.StringList("meta_keywords")
	}
	if in.Has("rating_average") {
		avg, err := in.Float("rating_average")
		if err != nil {
			return nil, utils.NewValidationError("rating_average", "rating_average must be numeric")
		}
		set["rating_average"] = avg
	}
	if in.Has("rating_count") {
		count, err := in.Int("rating_count")
		if err != nil {
			return nil, utils.NewValidationError("rating_count", "rating_count must be an integer")
		}
		set["rating_count"] = count
	}
	if in.Has("featured") {
		set["featured"] = in.Bool("featured")
	}
	if in.Has("is_active") {
		set["is_active"] = in.Bool("is_active")
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now()
	}
	return set, nil
}

// salePrice turns an absent or falsy sale_price into null rather than 0.
// Negative values are rejected the same way a negative price is.
func salePrice(in Input) (*float64, error) {
	if !in.Has("sale_price") {
		return nil, nil
	}
	v, err := in.Float("sale_price")
	if err != nil {
		return nil, nil
	}
	if v < 0 {
		return nil, utils.NewValidationError("sale_price", "sale_price must be a non-negative number")
	}
	if v == 0 {
		return nil, nil
	}
	return &v, nil
}
