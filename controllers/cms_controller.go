package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"petshop-admin/config"
	"petshop-admin/models"
	"petshop-admin/repositories"
	"petshop-admin/services"
	"petshop-admin/utils"
)

type CMSController struct {
	configs repositories.Store[models.CMSConfig]
	storage ImageStorage
}

func NewCMSController(db *config.Database, storage ImageStorage) *CMSController {
	return &CMSController{
		configs: repositories.NewRepository[models.CMSConfig](db.Collection("cms_configs")),
		storage: storage,
	}
}

func (ctrl *CMSController) GetByTheme(c *gin.Context) {
	cfg, err := ctrl.configs.FindOne(c.Request.Context(), bson.M{"theme": c.Param("theme"), "is_active": true})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "CMS configuration retrieved", Data: cfg})
}

// Save upserts the one active configuration per theme. New banner and logo
// assets are uploaded before the write; the displaced ones are removed
// best-effort afterwards.
func (ctrl *CMSController) Save(c *gin.Context) {
	ctx := c.Request.Context()
	theme := c.Param("theme")

	current, err := ctrl.configs.FindOne(ctx, bson.M{"theme": theme, "is_active": true})
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.CMSUpdate(in, theme)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	oldAssets := []string{}

	if files := formFiles(c, "bannerImages"); len(files) > 0 {
		if len(files) > models.MaxBannerImages {
			utils.RespondError(c, utils.NewValidationError("bannerImages", "at most 5 banner images allowed"))
			return
		}
		uploaded, err := ctrl.storage.UploadMultipleImages(ctx, files, "cms", theme)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		urls := make([]string, len(uploaded))
		for i, res := range uploaded {
			urls[i] = res.URL
		}
		set["banner_images"] = urls
		if current != nil {
			oldAssets = append(oldAssets, current.BannerImages...)
		}
	}

	if file := formFile(c, "logoImage"); file != nil {
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "cms", theme)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		set["logo_image"] = res.URL
		if current != nil && current.LogoImage != "" {
			oldAssets = append(oldAssets, current.LogoImage)
		}
	}

	if file := formFile(c, "faviconImage"); file != nil {
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "cms", theme)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		set["favicon_image"] = res.URL
		if current != nil && current.FaviconImage != "" {
			oldAssets = append(oldAssets, current.FaviconImage)
		}
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"created_at": set["updated_at"]},
	}

	if _, err := ctrl.configs.UpdateOne(ctx, bson.M{"theme": theme, "is_active": true}, update, true); err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(oldAssets) > 0 {
		ctrl.storage.DeleteMultipleImages(ctx, oldAssets)
	}

	saved, err := ctrl.configs.FindOne(ctx, bson.M{"theme": theme, "is_active": true})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "CMS configuration saved", Data: saved})
}
