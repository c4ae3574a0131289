package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/config"
	"petshop-admin/libs"
	"petshop-admin/models"
	"petshop-admin/repositories"
	"petshop-admin/services"
	"petshop-admin/utils"
)

type RiderController struct {
	riders  repositories.Store[models.Rider]
	orders  repositories.Store[models.Order]
	storage ImageStorage
}

func NewRiderController(db *config.Database, storage ImageStorage) *RiderController {
	return &RiderController{
		riders:  repositories.NewRepository[models.Rider](db.Collection("riders")),
		orders:  repositories.NewRepository[models.Order](db.Collection("orders")),
		storage: storage,
	}
}

// riderFileFields maps multipart fields to the rider document fields they
// populate, in upload order.
var riderFileFields = []struct {
	Form string
	Doc  string
}{
	{"image", "profile_image"},
	{"cnicFrontImage", "cnic_front_image"},
	{"cnicBackImage", "cnic_back_image"},
	{"bikeDocument", "bike_document"},
}

func (ctrl *RiderController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "created_at")

	filter := bson.M{}
	if available := c.Query("is_available"); available != "" {
		filter["is_available"] = available == "true"
	}
	if vehicle := c.Query("vehicle_type"); vehicle != "" {
		filter["vehicle_type"] = vehicle
	}

	total, err := ctrl.riders.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	riders, err := ctrl.riders.FindAll(c.Request.Context(), filter, repositories.FindOptions{
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
		Message:    "Riders retrieved",
		Data:       riders,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *RiderController) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	rider, err := ctrl.riders.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Rider retrieved", Data: rider})
}

func (ctrl *RiderController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	rider, err := services.NewRider(in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// All assets go up before the insert; any failure aborts and cleans up
	// what already landed.
	uploaded := map[string]*libs.UploadResult{}
	for _, field := range riderFileFields {
		file := formFile(c, field.Form)
		if file == nil {
			continue
		}
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "riders", field.Form)
		if err != nil {
			for _, prev := range uploaded {
				ctrl.storage.DeleteImage(ctx, prev.Key)
			}
			utils.RespondError(c, err)
			return
		}
		uploaded[field.Doc] = res
	}

	if res, ok := uploaded["profile_image"]; ok {
		rider.ProfileImage = res.URL
	}
	if res, ok := uploaded["cnic_front_image"]; ok {
		rider.CnicFrontImage = res.URL
	}
	if res, ok := uploaded["cnic_back_image"]; ok {
		rider.CnicBackImage = res.URL
	}
	if res, ok := uploaded["bike_document"]; ok {
		rider.BikeDocument = res.URL
	}

	id, err := ctrl.riders.InsertOne(ctx, rider)
	if err != nil {
		for _, res := range uploaded {
			ctrl.storage.DeleteImage(ctx, res.Key)
		}
		utils.RespondError(c, err)
		return
	}
	rider.ID = id

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Rider created successfully", Data: rider})
}

func (ctrl *RiderController) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	current, err := ctrl.riders.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.RiderUpdate(in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	oldAssets := []string{}
	currentAssets := map[string]string{
		"profile_image":    current.ProfileImage,
		"cnic_front_image": current.CnicFrontImage,
		"cnic_back_image":  current.CnicBackImage,
		"bike_document":    current.BikeDocument,
	}

	for _, field := range riderFileFields {
		file := formFile(c, field.Form)
		if file == nil {
			continue
		}
		res, err := ctrl.storage.UploadSingleImage(ctx, file, "riders", field.Form)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		set[field.Doc] = res.URL
		if old := currentAssets[field.Doc]; old != "" {
			oldAssets = append(oldAssets, old)
		}
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Nothing to update", Data: current})
		return
	}
	stampUpdatedAt(set)

	if _, err := ctrl.riders.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(oldAssets) > 0 {
		ctrl.storage.DeleteMultipleImages(ctx, oldAssets)
	}

	updated, err := ctrl.riders.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Rider updated successfully", Data: updated})
}

func (ctrl *RiderController) SetAvailability(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("is_available", "is_available is required"))
		return
	}

	res, err := ctrl.riders.UpdateByID(c.Request.Context(), id, bson.M{"$set": bson.M{"is_available": req.IsAvailable}})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, models.Response{Success: false, Message: "Rider not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Rider availability updated"})
}

// AssignOrder appends an order reference to the rider's assignment list.
func (ctrl *RiderController) AssignOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("order_id", "order_id is required"))
		return
	}

	orderID, err := utils.ParseObjectID(req.OrderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if _, err := ctrl.orders.FindByID(ctx, orderID); err != nil {
		utils.RespondError(c, err)
		return
	}

	res, err := ctrl.riders.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"assigned_orders": orderID}})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, models.Response{Success: false, Message: "Rider not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order assigned to rider"})
}

func (ctrl *RiderController) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	rider, err := ctrl.riders.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if _, err := ctrl.riders.DeleteByID(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	assets := []string{}
	for _, url := range []string{rider.ProfileImage, rider.CnicFrontImage, rider.CnicBackImage, rider.BikeDocument} {
		if url != "" {
			assets = append(assets, url)
		}
	}
	if len(assets) > 0 {
		ctrl.storage.DeleteMultipleImages(ctx, assets)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Rider deleted successfully"})
}
