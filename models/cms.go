package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxBannerImages = 5
	MaxNavMenuItems = 10
	MaxFooterItems  = 15
)

type MenuItem struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
	Order int    `bson:"order" json:"order"`
}

type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

type FooterData struct {
	ContactEmail string       `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactPhone string       `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Address      string       `bson:"address,omitempty" json:"address,omitempty"`
	Menu         []MenuItem   `bson:"menu,omitempty" json:"menu,omitempty"`
	SocialLinks  []SocialLink `bson:"social_links,omitempty" json:"social_links,omitempty"`
}

// CMSConfig is the single active site configuration per theme, maintained by
// upsert.
type CMSConfig struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Theme        string             `bson:"theme" json:"theme"`
	BannerImages []string           `bson:"banner_images" json:"banner_images"`
	LogoImage    string             `bson:"logo_image,omitempty" json:"logo_image,omitempty"`
	FaviconImage string             `bson:"favicon_image,omitempty" json:"favicon_image,omitempty"`
	Headline     string             `bson:"headline,omitempty" json:"headline,omitempty"`
	Tagline      string             `bson:"tagline,omitempty" json:"tagline,omitempty"`
	NavMenu      []MenuItem         `bson:"nav_menu,omitempty" json:"nav_menu,omitempty"`
	Footer       FooterData         `bson:"footer,omitempty" json:"footer,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
