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

type SubcategoryController struct {
	subcategories repositories.Store[models.Subcategory]
	categories    repositories.Store[models.Category]
	storage ImageStorage
}

func NewSubcategoryController(db *config.Database, storage ImageStorage) *SubcategoryController {
	return &SubcategoryController{
		subcategories: repositories.NewRepository[models.Subcategory](db.Collection("subcategories")),
		categories:    repositories.NewRepository[models.Category](db.Collection("categories")),
		storage:       storage,
	}
}

func (ctrl *SubcategoryController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "sort_order")

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		catID, err := utils.ParseObjectID(category)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		filter["category_id"] = catID
	}
	if featured := c.Query("featured"); featured != "" {
		filter["featured"] = featured == "true"
	}
	if active := c.Query("is_active"); active != "" {
		filter["is_active"] = active == "true"
	}

	total, err := ctrl.subcategories.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	subcategories, err := ctrl.subcategories.FindAll(c.Request.Context(), filter, repositories.FindOptions{
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
		Message:    "Subcategories retrieved",
		Data:       subcategories,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *SubcategoryController) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	sub, err := ctrl.subcategories.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Subcategory retrieved", Data: sub})
}

func (ctrl *SubcategoryController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	catID, err := utils.ParseObjectID(in.String("category_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// The parent category must exist before creating a child.
	if _, err := ctrl.categories.FindByID(ctx, catID); err != nil {
		utils.RespondError(c, err)
		return
	}

	sub, err := services.NewSubcategory(in, catID, func(slug string) (bool, error) {
		return ctrl.subcategories.Exists(ctx, bson.M{"slug": slug})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var uploadedKey string
	if file := formFile(c, "image"); file != nil {
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "subcategories", sub.Slug)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		sub.Image = res.URL
		uploadedKey = res.Key
	}

	id, err := ctrl.subcategories.InsertOne(ctx, sub)
	if err != nil {
		if uploadedKey != "" {
			ctrl.storage.DeleteImage(ctx, uploadedKey)
		}
		utils.RespondError(c, err)
		return
	}
	sub.ID = id

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Subcategory created successfully", Data: sub})
}

func (ctrl *SubcategoryController) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	current, err := ctrl.subcategories.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.SubcategoryUpdate(in, current, func(slug string) (bool, error) {
		return ctrl.subcategories.Exists(ctx, bson.M{"slug": slug, "_id": bson.M{"$ne": id}})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	oldImage := ""
	if file := formFile(c, "image"); file != nil {
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "subcategories", current.Slug)
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

	if _, err := ctrl.subcategories.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if oldImage != "" {
		ctrl.storage.DeleteImage(ctx, oldImage)
	}

	updated, err := ctrl.subcategories.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Subcategory updated successfully", Data: updated})
}

func (ctrl *SubcategoryController) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	sub, err := ctrl.subcategories.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if _, err := ctrl.subcategories.DeleteByID(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	if sub.Image != "" {
		ctrl.storage.DeleteImage(ctx, sub.Image)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Subcategory deleted successfully"})
}
