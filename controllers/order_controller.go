package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/config"
	"petshop-admin/models"
	"petshop-admin/repositories"
	"petshop-admin/services"
	"petshop-admin/utils"
)

type OrderController struct {
	orders   repositories.Store[models.Order]
	products repositories.Store[models.Product]
}

func NewOrderController(db *config.Database) *OrderController {
	return &OrderController{
		orders:   repositories.NewRepository[models.Order](db.Collection("orders")),
		products: repositories.NewRepository[models.Product](db.Collection("products")),
	}
}

func (ctrl *OrderController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "created_at")

	filter := bson.M{}
	if status := c.Query("status"); status != "" && status != "All" {
		filter["status"] = status
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		filter["order_number"] = bson.M{"$regex": search, "$options": "i"}
	}

	total, err := ctrl.orders.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	orders, err := ctrl.orders.FindAll(c.Request.Context(), filter, repositories.FindOptions{
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
		Message:    "Orders retrieved",
		Data:       orders,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *OrderController) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	order, err := ctrl.orders.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order retrieved", Data: order})
}

func (ctrl *OrderController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		CustomerName    string                 `json:"customer_name"`
		CustomerEmail   string                 `json:"customer_email"`
		CustomerPhone   string                 `json:"customer_phone"`
		ShippingFee     *float64               `json:"shipping_fee"`
		ShippingAddress models.ShippingAddress `json:"shipping_address"`
		Items           []struct {
			ProductID string  `json:"product_id"`
			Quantity  int     `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	// Line items resolve name and price from the catalog at order time.
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		prodID, err := utils.ParseObjectID(item.ProductID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		product, err := ctrl.products.FindByID(ctx, prodID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		items = append(items, models.OrderItem{
			ProductID: prodID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	in := services.Input{
		"customer_name":  req.CustomerName,
		"customer_email": req.CustomerEmail,
		"customer_phone": req.CustomerPhone,
	}
	if req.ShippingFee != nil {
		in["shipping_fee"] = *req.ShippingFee
	}

	order, err := services.NewOrder(in, items, req.ShippingAddress)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	id, err := ctrl.orders.InsertOne(ctx, order)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	order.ID = id

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Order created successfully", Data: order})
}

// UpdateStatus drives the order lifecycle. Cancelling a delivered order is
// the one transition rejected outright.
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	order, err := ctrl.orders.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.OrderStatusUpdate(order, in)
	if err != nil {
		var transitionErr *services.OrderTransitionError
		if errors.As(err, &transitionErr) {
			c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: transitionErr.Error(),
			})
			return
		}
		utils.RespondError(c, err)
		return
	}

	if _, err := ctrl.orders.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	updated, err := ctrl.orders.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order status updated successfully", Data: updated})
}

func (ctrl *OrderController) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	deleted, err := ctrl.orders.DeleteByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.Response{Success: false, Message: "Order not found"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order deleted successfully"})
}
