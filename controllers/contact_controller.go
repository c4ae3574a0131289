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

type ContactController struct {
	contacts repositories.Store[models.ContactPage]
}

func NewContactController(db *config.Database) *ContactController {
	return &ContactController{
		contacts: repositories.NewRepository[models.ContactPage](db.Collection("contact_pages")),
	}
}

func (ctrl *ContactController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "created_at")

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	total, err := ctrl.contacts.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	contacts, err := ctrl.contacts.FindAll(c.Request.Context(), filter, repositories.FindOptions{
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
		Message:    "Contact pages retrieved",
		Data:       contacts,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *ContactController) GetBySlug(c *gin.Context) {
	contact, err := ctrl.contacts.FindOne(c.Request.Context(), bson.M{"slug": c.Param("slug")})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Contact page retrieved", Data: contact})
}

func (ctrl *ContactController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	contact, err := services.NewContactPage(in, func(slug string) (bool, error) {
		return ctrl.contacts.Exists(ctx, bson.M{"slug": slug})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	id, err := ctrl.contacts.InsertOne(ctx, contact)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	contact.ID = id

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Contact page created successfully", Data: contact})
}

func (ctrl *ContactController) Update(c *gin.Context) {
	ctx := c.Request.Context()

	current, err := ctrl.contacts.FindOne(ctx, bson.M{"slug": c.Param("slug")})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.ContactPageUpdate(in, current, func(candidate string) (bool, error) {
		return ctrl.contacts.Exists(ctx, bson.M{"slug": candidate, "_id": bson.M{"$ne": current.ID}})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Nothing to update", Data: current})
		return
	}

	if _, err := ctrl.contacts.UpdateByID(ctx, current.ID, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	updated, err := ctrl.contacts.FindByID(ctx, current.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Contact page updated successfully", Data: updated})
}

func (ctrl *ContactController) Delete(c *gin.Context) {
	deleted, err := ctrl.contacts.DeleteOne(c.Request.Context(), bson.M{"slug": c.Param("slug")})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.Response{Success: false, Message: "Contact page not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Contact page deleted successfully"})
}
