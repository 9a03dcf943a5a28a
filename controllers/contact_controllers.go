package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/models"
	"github.com/nush-eats/storefront-app/utils"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// CreateMessage stores a contact form submission. Write-once, nothing
// else ever happens to these rows.
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			field := strings.ToLower(vErrs[0].Field())
			utils.RespondValidationError(c, "Invalid value for "+field, field)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := cc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}
