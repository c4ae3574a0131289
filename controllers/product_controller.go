package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"petshop-admin/config"
	"petshop-admin/libs"
	"petshop-admin/models"
	"petshop-admin/repositories"
	"petshop-admin/services"
	"petshop-admin/utils"
)

type ProductController struct {
	products      repositories.Store[models.Product]
	subcategories repositories.Store[models.Subcategory]
	storage ImageStorage
}

func NewProductController(db *config.Database, storage ImageStorage) *ProductController {
	return &ProductController{
		products:      repositories.NewRepository[models.Product](db.Collection("products")),
		subcategories: repositories.NewRepository[models.Subcategory](db.Collection("subcategories")),
		storage:       storage,
	}
}

// buildFilter maps list query params onto a bson filter.
func (ctrl *ProductController) buildFilter(c *gin.Context) (bson.M, error) {
	filter := bson.M{}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if category := c.Query("category"); category != "" {
		catID, err := utils.ParseObjectID(category)
		if err != nil {
			return nil, err
		}
		filter["category_id"] = catID
	}
	if sub := c.Query("subcategory"); sub != "" {
		subID, err := utils.ParseObjectID(sub)
		if err != nil {
			return nil, err
		}
		filter["subcategory_id"] = subID
	}
	if featured := c.Query("featured"); featured != "" {
		filter["featured"] = featured == "true"
	}
	if active := c.Query("is_active"); active != "" {
		filter["is_active"] = active == "true"
	}
	if status := c.Query("stock_status"); status != "" {
		filter["stock_status"] = status
	}

	price := bson.M{}
	if min := c.Query("min_price"); min != "" {
		if v, err := strconv.ParseFloat(min, 64); err == nil {
			price["$gte"] = v
		}
	}
	if max := c.Query("max_price"); max != "" {
		if v, err := strconv.ParseFloat(max, 64); err == nil {
			price["$lte"] = v
		}
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter, nil
}

func (ctrl *ProductController) GetAll(c *gin.Context) {
	params := utils.ParsePageParams(c, "created_at")

	filter, err := ctrl.buildFilter(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	total, err := ctrl.products.Count(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	products, err := ctrl.products.FindAll(c.Request.Context(), filter, repositories.FindOptions{
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
		Message:    "Products retrieved",
		Data:       products,
		Pagination: utils.BuildPagination(params.Page, params.Limit, total),
	})
}

func (ctrl *ProductController) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	product, err := ctrl.products.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

func (ctrl *ProductController) GetBySlug(c *gin.Context) {
	product, err := ctrl.products.FindOne(c.Request.Context(), bson.M{"slug": c.Param("slug")})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

func (ctrl *ProductController) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	product, err := services.NewProduct(in, func(slug string) (bool, error) {
		return ctrl.products.Exists(ctx, bson.M{"slug": slug})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := ctrl.attachReferences(in, product); err != nil {
		utils.RespondError(c, err)
		return
	}

	// Upload before the database write so a failed upload never leaves the
	// record pointing at nothing.
	var uploaded []*libs.UploadResult
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		if files := form.File["images"]; len(files) > 0 {
			uploaded, err = ctrl.storage.UploadMultipleImages(ctx, files, "products", product.Slug)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			for _, res := range uploaded {
				product.Images = append(product.Images, res.URL)
			}
		}
	}

	id, err := ctrl.products.InsertOne(ctx, product)
	if err != nil {
		for _, res := range uploaded {
			ctrl.storage.DeleteImage(ctx, res.Key)
		}
		utils.RespondError(c, err)
		return
	}
	product.ID = id

	if product.SubcategoryID != nil {
		ctrl.bumpProductCount(c, *product.SubcategoryID, 1)
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product created successfully", Data: product})
}

func (ctrl *ProductController) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	current, err := ctrl.products.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	in, err := services.InputFromRequest(c)
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("body", err.Error()))
		return
	}

	set, err := services.ProductUpdate(in, current, func(slug string) (bool, error) {
		return ctrl.products.Exists(ctx, bson.M{"slug": slug, "_id": bson.M{"$ne": id}})
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if in.Has("category_id") {
		catID, err := utils.ParseObjectID(in.String("category_id"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		set["category_id"] = catID
	}
	var newSubID *primitive.ObjectID
	if in.Has("subcategory_id") {
		subID, err := utils.ParseObjectID(in.String("subcategory_id"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		set["subcategory_id"] = subID
		newSubID = &subID
	}

	// New images go up first; the old ones are removed only after the record
	// points at the replacements.
	var oldImages []string
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		if files := form.File["images"]; len(files) > 0 {
			uploaded, err := ctrl.storage.UploadMultipleImages(ctx, files, "products", current.Slug)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			urls := make([]string, len(uploaded))
			for i, res := range uploaded {
				urls[i] = res.URL
			}
			set["images"] = urls
			oldImages = current.Images
		}
	}

	if len(set) == 0 {
		c.JSON(http.StatusOK, models.Response{Success: true, Message: "Nothing to update", Data: current})
		return
	}
	stampUpdatedAt(set)

	if _, err := ctrl.products.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(oldImages) > 0 {
		ctrl.storage.DeleteMultipleImages(ctx, oldImages)
	}

	if newSubID != nil && (current.SubcategoryID == nil || *current.SubcategoryID != *newSubID) {
		if current.SubcategoryID != nil {
			ctrl.bumpProductCount(c, *current.SubcategoryID, -1)
		}
		ctrl.bumpProductCount(c, *newSubID, 1)
	}

	updated, err := ctrl.products.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product updated successfully", Data: updated})
}

func (ctrl *ProductController) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	product, err := ctrl.products.FindByID(ctx, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if _, err := ctrl.products.DeleteByID(ctx, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	if len(product.Images) > 0 {
		ctrl.storage.DeleteMultipleImages(ctx, product.Images)
	}
	if product.SubcategoryID != nil {
		ctrl.bumpProductCount(c, *product.SubcategoryID, -1)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product deleted successfully"})
}

// BulkStatus flips is_active for a set of product ids in one write.
func (ctrl *ProductController) BulkStatus(c *gin.Context) {
	var req struct {
		IDs      []string `json:"ids" binding:"required"`
		IsActive bool     `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("ids", "ids array is required"))
		return
	}

	ids := make([]primitive.ObjectID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := utils.ParseObjectID(raw)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		ids = append(ids, id)
	}

	modified, err := ctrl.products.UpdateMany(c.Request.Context(),
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"is_active": req.IsActive}})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product status updated",
		Data:    gin.H{"modified": modified},
	})
}

func (ctrl *ProductController) DistinctTags(c *gin.Context) {
	tags, err := ctrl.products.Distinct(c.Request.Context(), "tags", bson.M{"is_active": true})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Tags retrieved", Data: tags})
}

func (ctrl *ProductController) attachReferences(in services.Input, product *models.Product) error {
	if in.Has("category_id") {
		catID, err := utils.ParseObjectID(in.String("category_id"))
		if err != nil {
			return err
		}
		product.CategoryID = &catID
	}
	if in.Has("subcategory_id") {
		subID, err := utils.ParseObjectID(in.String("subcategory_id"))
		if err != nil {
			return err
		}
		product.SubcategoryID = &subID
	}
	return nil
}

// bumpProductCount keeps the denormalized subcategory counter in step with
// product writes. Best-effort: a failed bump is logged, not surfaced.
func (ctrl *ProductController) bumpProductCount(c *gin.Context, subID primitive.ObjectID, delta int) {
	_, err := ctrl.subcategories.UpdateByID(c.Request.Context(), subID,
		bson.M{"$inc": bson.M{"product_count": delta}})
	if err != nil {
		logFailure(c, "product_count maintenance failed", err)
	}
}
