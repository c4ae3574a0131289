package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/config"
	"petshop-admin/models"
	"petshop-admin/repositories"
	"petshop-admin/services"
	"petshop-admin/utils"
)

type CategoryController struct {
	categories repositories.Store[models.Category]
	storage    ImageStorage
}

func NewCategoryController(db *config.Database, storage ImageStorage) *CategoryController {
	return &CategoryController{
		categories: repositories.NewRepository[models.Category](db.Collection("categories")),
		storage:    storage,
	}
}

func (ctrl *CategoryController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "sort_order")

	filter := bson.M{}
	if featured := c.Query("featured"); featured != "" {
		filter["featured"] = featured == "true"
	}
	if active := c.Query("is_active"); active != "" {
		filter["is_active"] = active == "true"
	}

	total, err := ctrl.categories.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	categories, err := ctrl.categories.FindAll(c.Request.Context(), filter, repositories.FindOptions{
		Sort:  params.Sort,
		Skip:  params.Skip(),
		Limit: int64(params.Limit),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Message:    "Categories retrieved",
		Data:       categories,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *CategoryController) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	category, err := ctrl.categories.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Category retrieved", Data: category})
}

func (ctrl *CategoryController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	category, err := services.NewCategory(in, func(slug string) (bool, error) {
		return ctrl.categories.Exists(ctx, bson.M{"slug": slug})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var uploadedKey string
	if file := formFile(c, "image"); file != nil {
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "categories", category.Slug)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		category.Image = res.URL
		uploadedKey = res.Key
	}

	id, err := ctrl.categories.InsertOne(ctx, category)
	if err != nil {
		if uploadedKey != "" {
			ctrl.storage.DeleteImage(ctx, uploadedKey)
		}
		utils.RespondError(c, err)
		return
	}
	category.ID = id

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Category created successfully", Data: category})
}

func (ctrl *CategoryController) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	current, err := ctrl.categories.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.CategoryUpdate(in, current, func(slug string) (bool, error) {
		return ctrl.categories.Exists(ctx, bson.M{"slug": slug, "_id": bson.M{"$ne": id}})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	oldImage := ""
	if file := formFile(c, "image"); file != nil {
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "categories", current.Slug)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		set["image"] = res.URL
		oldImage = current.Image
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Nothing to update", Data: current})
		return
	}
	stampUpdatedAt(set)

	if _, err := ctrl.categories.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if oldImage != "" {
		ctrl.storage.DeleteImage(ctx, oldImage)
	}

	updated, err := ctrl.categories.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Category updated successfully", Data: updated})
}

func (ctrl *CategoryController) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	category, err := ctrl.categories.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if _, err := ctrl.categories.DeleteByID(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	if category.Image != "" {
		ctrl.storage.DeleteImage(ctx, category.Image)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Category deleted successfully"})
}
