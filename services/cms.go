package services

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/models"
	"petshop-admin/utils"
)

// CMSUpdate builds the upsert document maintaining one active configuration
// per theme. Menu arrays are capped; banners are handled by the controller
// because they involve uploads.
func CMSUpdate(in Input, theme string) (bson.M, error) {
	set := bson.M{
		"theme":      theme,
		"is_active":  true,
		"updated_at": time.Now(),
	}

	if in.Has("headline") {
		set["headline"] = in.String("headline")
	}
	if in.Has("tagline") {
		set["tagline"] = in.String("tagline")
	}
	if in.Has("nav_menu") {
		menu, err := menuItems(in, "nav_menu")
		if err != nil {
			return nil, err
		}
		if len(menu) > models.MaxNavMenuItems {
			return nil, utils.NewValidationError("nav_menu",
				fmt.Sprintf("at most %d menu items allowed", models.MaxNavMenuItems))
		}
		set["nav_menu"] = menu
	}
	if in.Has("footer") {
		footer, err := footerData(in)
		if err != nil {
			return nil, err
		}
		if len(footer.Menu) > models.MaxFooterItems {
			return nil, utils.NewValidationError("footer",
				fmt.Sprintf("at most %d footer menu items allowed", models.MaxFooterItems))
		}
		set["footer"] = footer
	}

	return set, nil
}

// menuItems decodes a menu array arriving either as decoded JSON or as a
// JSON string in a form field.
func menuItems(in Input, key string) ([]models.MenuItem, error) {
	raw, err := normalizeJSON(in[key])
	if err != nil {
		return nil, utils.NewValidationError(key, "must be a JSON array of menu items")
	}

	var menu []models.MenuItem
	if err := json.Unmarshal(raw, &menu); err != nil {
		return nil, utils.NewValidationError(key, "must be a JSON array of menu items")
	}
	return menu, nil
}

func footerData(in Input) (*models.FooterData, error) {
	raw, err := normalizeJSON(in["footer"])
	if err != nil {
		return nil, utils.NewValidationError("footer", "must be a JSON object")
	}

	var footer models.FooterData
	if err := json.Unmarshal(raw, &footer); err != nil {
		return nil, utils.NewValidationError("footer", "must be a JSON object")
	}
	return &footer, nil
}

func normalizeJSON(v interface{}) ([]byte, error) {
	if s, ok := v.(string); ok {
		return []byte(s), nil
	}
	return json.Marshal(v)
}
