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

type PageController struct {
	pages repositories.Store[models.PageContent]
}

func NewPageController(db *config.Database) *PageController {
	return &PageController{
		pages: repositories.NewRepository[models.PageContent](db.Collection("pages")),
	}
}

func (ctrl *PageController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "created_at")

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	total, err := ctrl.pages.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	pages, err := ctrl.pages.FindAll(c.Request.Context(), filter, repositories.FindOptions{
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
		Message:    "Pages retrieved",
		Data:       pages,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *PageController) GetBySlug(c *gin.Context) {
	page, err := ctrl.pages.FindOne(c.Request.Context(), bson.M{"slug": c.Param("slug")})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Page retrieved", Data: page})
}

func (ctrl *PageController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	page, err := services.NewPage(in, func(slug string) (bool, error) {
		return ctrl.pages.Exists(ctx, bson.M{"slug": slug})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	id, err := ctrl.pages.InsertOne(ctx, page)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	page.ID = id

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Page created successfully", Data: page})
}

func (ctrl *PageController) Update(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	current, err := ctrl.pages.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.PageUpdate(in, current, func(candidate string) (bool, error) {
		return ctrl.pages.Exists(ctx, bson.M{"slug": candidate, "_id": bson.M{"$ne": current.ID}})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Nothing to update", Data: current})
		return
	}

	if _, err := ctrl.pages.UpdateByID(ctx, current.ID, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	updated, err := ctrl.pages.FindByID(ctx, current.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Page updated successfully", Data: updated})
}

func (ctrl *PageController) Delete(c *gin.Context) {
	deleted, err := ctrl.pages.DeleteOne(c.Request.Context(), bson.M{"slug": c.Param("slug")})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.Response{Success: false, Message: "Page not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Page deleted successfully"})
}
