package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/models"
	"petshop-admin/utils"
)

var pageStatuses = map[string]bool{
	models.PageStatusDraft:     true,
	models.PageStatusPublished: true,
	models.PageStatusArchived:  true,
}

func NewPage(in Input, slugExists SlugExistsFunc) (*models.PageContent, error) {
	title := in.String("title")
	if title == "" {
		return nil, utils.NewValidationError("title", "title is required")
	}

	status := in.String("status")
	if status == "" {
		status = models.PageStatusDraft
	}
	if !pageStatuses[status] {
		return nil, utils.NewValidationError("status", "status must be draft, published or archived")
	}

	slug, err := utils.UniqueSlug(title, slugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &models.PageContent{
		Slug:      slug,
		Title:     title,
		Status:    status,
		Content:   in["content"],
		MetaTitle: in.String("meta_title"),
		MetaDesc:  in.String("meta_description"),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func PageUpdate(in Input, current *models.PageContent, slugExists SlugExistsFunc) (bson.M, error) {
	set := bson.M{}

	if in.Has("title") {
		title := in.String("title")
		if title == "" {
			return nil, utils.NewValidationError("title", "title cannot be empty")
		}
		set["title"] = title
		if title != current.Title {
			slug, err := utils.UniqueSlug(title, slugExists)
			if err != nil {
				return nil, err
			}
			set["slug"] = slug
		}
	}
	if in.Has("status") {
		status := in.String("status")
		if !pageStatuses[status] {
			return nil, utils.NewValidationError("status", "status must be draft, published or archived")
		}
		set["status"] = status
	}
	if in.Has("content") {
		set["content"] = in["content"]
	}
	if in.Has("meta_title") {
		set["meta_title"] = in.String("meta_title")
	}
	if in.Has("meta_description") {
		set["meta_description"] = in.String("meta_description")
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now()
	}
	return set, nil
}

func NewContactPage(in Input, slugExists SlugExistsFunc) (*models.ContactPage, error) {
	title := in.String("title")
	if title == "" {
		return nil, utils.NewValidationError("title", "title is required")
	}

	status := in.String("status")
	if status == "" {
		status = models.PageStatusDraft
	}
	if !pageStatuses[status] {
		return nil, utils.NewValidationError("status", "status must be draft, published or archived")
	}

	slug, err := utils.UniqueSlug(title, slugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &models.ContactPage{
		Slug:      slug,
		Title:     title,
		Status:    status,
		Email:     in.String("email"),
		Phone:     in.String("phone"),
		Address:   in.String("address"),
		MapEmbed:  in.String("map_embed"),
		Content:   in["content"],
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func ContactPageUpdate(in Input, current *models.ContactPage, slugExists SlugExistsFunc) (bson.M, error) {
	set := bson.M{}

	if in.Has("title") {
		title := in.String("title")
		if title == "" {
			return nil, utils.NewValidationError("title", "title cannot be empty")
		}
		set["title"] = title
		if title != current.Title {
			slug, err := utils.UniqueSlug(title, slugExists)
			if err != nil {
				return nil, err
			}
			set["slug"] = slug
		}
	}
	if in.Has("status") {
		status := in.String("status")
		if !pageStatuses[status] {
			return nil, utils.NewValidationError("status", "status must be draft, published or archived")
		}
		set["status"] = status
	}
	if in.Has("email") {
		set["email"] = in.String("email")
	}
	if in.Has("phone") {
		set["phone"] = in.String("phone")
	}
	if in.Has("address") {
		set["address"] = in.String("address")
	}
	if in.Has("map_embed") {
		set["map_embed"] = in.String("map_embed")
	}
	if in.Has("content") {
		set["content"] = in["content"]
	}

	if len(set) > 0 {
		set["updated_at"] = time.Now()
	}
	return set, nil
}
