package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/models"
	"github.com/nush-eats/storefront-app/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> full catalog for the storefront.
func (mc *MenuController) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("id").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
