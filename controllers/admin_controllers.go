package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/models"
	"github.com/nush-eats/storefront-app/services"
	"github.com/nush-eats/storefront-app/utils"
)

type AdminController struct {
	DB      *gorm.DB
	Reports *services.ReportService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		DB:      db,
		Reports: services.NewReportService(db),
	}
}

// Login -> verify credentials, return a bearer token plus the admin
// identity.
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Admin %q logged in", admin.Username)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}

// Logout blacklists the presented token until it expires on its own.
func (ac *AdminController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		utils.BlacklistToken(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me -> identity behind the presented token.
func (ac *AdminController) Me(c *gin.Context) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("admin id not found in context"))
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, adminID).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("admin not found"))
		return
	}

	c.JSON(http.StatusOK, admin)
}

// GetDashboardStats -> counters for the admin dashboard landing page.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalOrders     int64 `json:"totalOrders"`
		TodayOrders     int64 `json:"todayOrders"`
		TotalRevenue    int64 `json:"totalRevenue"`
		TodayRevenue    int64 `json:"todayRevenue"`
		MenuItems       int64 `json:"menuItems"`
		ContactMessages int64 `json:"contactMessages"`
		OrderStats      struct {
			Pending   int64 `json:"pending"`
			Confirmed int64 `json:"confirmed"`
			Preparing int64 `json:"preparing"`
			Completed int64 `json:"completed"`
			Cancelled int64 `json:"cancelled"`
		} `json:"orderStats"`
	}

	ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Order{}).Where("DATE(created_at) = ?", today).Count(&stats.TodayOrders)

	ac.DB.Model(&models.Order{}).Where("status <> ?", models.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.TotalRevenue)
	ac.DB.Model(&models.Order{}).
		Where("status <> ? AND DATE(created_at) = ?", models.StatusCancelled, today).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.TodayRevenue)

	ac.DB.Model(&models.MenuItem{}).Count(&stats.MenuItems)
	ac.DB.Model(&models.ContactMessage{}).Count(&stats.ContactMessages)

	ac.DB.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&stats.OrderStats.Pending)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.StatusConfirmed).Count(&stats.OrderStats.Confirmed)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.StatusPreparing).Count(&stats.OrderStats.Preparing)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.StatusCompleted).Count(&stats.OrderStats.Completed)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.StatusCancelled).Count(&stats.OrderStats.Cancelled)

	c.JSON(http.StatusOK, stats)
}

// ExportSalesReport streams the sales report PDF.
func (ac *AdminController) ExportSalesReport(c *gin.Context) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="nush-sales-report.pdf"`)

	if err := ac.Reports.WriteSalesReport(c.Writer); err != nil {
		utils.ErrorLogger.Printf("sales report failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
