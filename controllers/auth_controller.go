package controllers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"petshop-admin/config"
	"petshop-admin/models"
	"petshop-admin/repositories"
	"petshop-admin/utils"
)

const (
	resetCodeTTL     = 10 * time.Minute
	maxResetAttempts = 5
)

type AuthController struct {
	admins repositories.Store[models.Admin]
	mailer *models.EmailService
}

func NewAuthController(db *config.Database, mailer *models.EmailService) *AuthController {
	return &AuthController{
		admins: repositories.NewRepository[models.Admin](db.Collection("admins")),
		mailer: mailer,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := ctrl.admins.Exists(ctx, bson.M{"email": email})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if taken {
		c.JSON(http.StatusConflict, models.Response{Success: false, Message: "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	now := time.Now()
	admin := &models.Admin{
		Name:      req.Name,
		Email:     email,
		Password:  hash,
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := ctrl.admins.InsertOne(ctx, admin)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	admin.ID = id

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Admin registered successfully",
		Data:    admin,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and password are required",
			Error:   err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := ctrl.admins.FindOne(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.Response{Success: false, Message: "Invalid email or password"})
		return
	}

	ok, err := utils.VerifyPassword(admin.Password, req.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, models.Response{Success: false, Message: "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), admin.Email, admin.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	maxAge := int((24 * time.Hour).Seconds())
	if d, err := time.ParseDuration(config.AppConfig.JWTExpiry); err == nil {
		maxAge = int(d.Seconds())
	}
	secure := config.AppConfig.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, maxAge, "/", "", secure, true)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token: token,
			Admin: *admin,
		},
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	secure := config.AppConfig.AppEnv == "production"
	c.SetCookie("token", "", -1, "/", "", secure, true)

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out successfully"})
}

func (ctrl *AuthController) Me(c *gin.Context) {
	adminID := c.GetString("admin_id")

	id, err := utils.ParseObjectID(adminID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	admin, err := ctrl.admins.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Admin profile retrieved", Data: admin})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword always responds 200 so the endpoint cannot be used to
// probe which emails are registered.
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "A valid email is required",
			Error:   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	accepted := models.Response{
		Success: true,
		Message: "If the email is registered, a reset code has been sent",
	}

	admin, err := ctrl.admins.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusOK, accepted)
		return
	}

	code, err := generateResetCode()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	expiry := time.Now().Add(resetCodeTTL)
	_, err = ctrl.admins.UpdateByID(ctx, admin.ID, bson.M{
		"$set": bson.M{
			"reset_code":        code,
			"reset_code_expiry": expiry,
			"reset_attempts":    0,
		},
		"$unset": bson.M{"reset_token": ""},
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if ctrl.mailer != nil {
		if err := ctrl.mailer.SendResetCodeEmail(admin.Email, code); err != nil {
			logFailure(c, "failed to send reset code email", err)
		}
	} else {
		logFailure(c, "reset code requested but mailer is not configured", nil)
	}

	c.JSON(http.StatusOK, accepted)
}

type verifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (ctrl *AuthController) VerifyResetCode(c *gin.Context) {
	var req verifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and code are required",
			Error:   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := ctrl.admins.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: "Invalid or expired reset code"})
		return
	}

	if admin.ResetCode == "" || admin.ResetCodeExpiry == nil || time.Now().After(*admin.ResetCodeExpiry) {
		c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: "Invalid or expired reset code"})
		return
	}

	if admin.ResetAttempts >= maxResetAttempts {
		ctrl.clearResetState(c, admin.ID)
		c.JSON(http.StatusTooManyRequests, models.Response{
			Success: false,
			Message: "Too many attempts, request a new reset code",
		})
		return
	}

	if admin.ResetCode != strings.TrimSpace(req.Code) {
		_, err := ctrl.admins.UpdateByID(ctx, admin.ID, bson.M{"$inc": bson.M{"reset_attempts": 1}})
		if err != nil {
			logFailure(c, "failed to record reset attempt", err)
		}
		c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: "Invalid or expired reset code"})
		return
	}

	resetToken := uuid.NewString()
	_, err = ctrl.admins.UpdateByID(ctx, admin.ID, bson.M{
		"$set":   bson.M{"reset_token": resetToken},
		"$unset": bson.M{"reset_code": "", "reset_code_expiry": "", "reset_attempts": ""},
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reset code verified",
		Data:    gin.H{"reset_token": resetToken},
	})
}

type resetPasswordRequest struct {
	Email      string `json:"email" binding:"required,email"`
	ResetToken string `json:"reset_token" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}

func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email, reset token and new password are required",
			Error:   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := ctrl.admins.FindOne(ctx, bson.M{"email": email, "reset_token": req.ResetToken})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: "Invalid reset token"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	_, err = ctrl.admins.UpdateByID(ctx, admin.ID, bson.M{
		"$set":   bson.M{"password": hash, "updated_at": time.Now()},
		"$unset": bson.M{"reset_token": "", "reset_code": "", "reset_code_expiry": "", "reset_attempts": ""},
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Password reset successfully"})
}

func (ctrl *AuthController) clearResetState(c *gin.Context, id primitive.ObjectID) {
	_, err := ctrl.admins.UpdateByID(c.Request.Context(), id, bson.M{
		"$unset": bson.M{"reset_code": "", "reset_code_expiry": "", "reset_attempts": ""},
	})
	if err != nil {
		logFailure(c, "failed to clear reset state", err)
	}
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := n.Int64()
	digits := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + code%10)
		code /= 10
	}
	return string(digits), nil
}
