package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"petshop-admin/models"
	"petshop-admin/utils"
)

func NewCategory(in Input, slugExists SlugExistsFunc) (*models.Category, error) {
	name := in.String("name")
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}

	slug, err := utils.UniqueSlug(name, slugExists)
	if err != nil {
		return nil, err
	}

	sortOrder := 0
	if in.Has("sort_order") {
		if sortOrder, err = in.Int("sort_order"); err != nil {
			return nil, utils.NewValidationError("sort_order", "sort_order must be an integer")
		}
	}

	now := time.Now()
	category := &models.Category{
		Name:      name,
		Slug:      slug,
		Color:     in.String("color"),
		SortOrder: sortOrder,
		Featured:  in.Truthy("featured"),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Has("is_active") {
		category.IsActive = in.Bool("is_active")
	}
	return category, nil
}

func CategoryUpdate(in Input, current *models.Category, slugExists SlugExistsFunc) (bson.M, error) {
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
	if in.Has("color") {
		set["color"] = in.String("color")
	}
	if in.Has("sort_order") {
		sortOrder, err := in.Int("sort_order")
		if err != nil {
			return nil, utils.NewValidationError("sort_order", "sort_order must be an integer")
		}
		set["sort_order"] = sortOrder
	}
	if in.Has("featured") {
		set["featured"] = in.Truthy("featured")
	}
	if in.Has("is_active") {
		set["is_active"] = in.Bool("is_active")
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now()
	}
	return set, nil
}

func NewSubcategory(in Input, categoryID primitive.ObjectID, slugExists SlugExistsFunc) (*models.Subcategory, error) {
	name := in.String("name")
	if name == "" {
		return nil, utils.NewValidationError("name", "name is required")
	}

	slug, err := utils.UniqueSlug(name, slugExists)
	if err != nil {
		return nil, err
	}

	sortOrder := 0
	if in.Has("sort_order") {
		if sortOrder, err = in.Int("sort_order"); err != nil {
			return nil, utils.NewValidationError("sort_order", "sort_order must be an integer")
		}
	}

	now := time.Now()
	sub := &models.Subcategory{
		Name:       name,
		Slug:       slug,
		CategoryID: categoryID,
		Color:      in.String("color"),
		SortOrder:  sortOrder,
		Featured:   in.Truthy("featured"),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Has("is_active") {
		sub.IsActive = in.Bool("is_active")
	}
	return sub, nil
}

func SubcategoryUpdate(in Input, current *models.Subcategory, slugExists SlugExistsFunc) (bson.M, error) {
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
	if in.Has("category_id") {
		catID, err := utils.ParseObjectID(in.String("category_id"))
		if err != nil {
			return nil, err
		}
		set["category_id"] = catID
	}
	if in.Has("color") {
		set["color"] = in.String("color")
	}
	if in.Has("sort_order") {
		sortOrder, err := in.Int("sort_order")
		if err != nil {
			return nil, utils.NewValidationError("sort_order", "sort_order must be an integer")
		}
		set["sort_order"] = sortOrder
	}
	if in.Has("featured") {
		set["featured"] = in.Truthy("featured")
	}
	if in.Has("is_active") {
		set["is_active"] = in.Bool("is_active")
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now()
	}
	return set, nil
}
