package database

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/models"
	"github.com/nush-eats/storefront-app/utils"
)

func strPtr(s string) *string { return &s }

// Seed populates the menu catalog and the bootstrap admin account when
// the tables are empty. Safe to run on every boot.
func Seed(db *gorm.DB) error {
	if err := seedMenu(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Name: "The NUSH Classic", Description: "Double beef patty, cheddar cheese, lettuce, tomato, special sauce", Price: 899, Category: "Burgers", Subcategory: strPtr("Beef"), ImageURL: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800&q=80"},
		{Name: "BBQ Bacon Smash", Description: "Smashed beef patty, crispy bacon, onion rings, BBQ sauce", Price: 1099, Category: "Burgers", Subcategory: strPtr("Beef"), ImageURL: "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?w=800&q=80"},
		{Name: "Spicy Crispy Chicken", Description: "Fried chicken breast, spicy mayo, pickles, slaw", Price: 949, Category: "Burgers", Subcategory: strPtr("Chicken"), ImageURL: "https://images.unsplash.com/photo-1615557960916-5f4791effe9d?w=800&q=80"},
		{Name: "Grilled Chicken Deluxe", Description: "Grilled chicken, avocado, swiss cheese, honey mustard", Price: 999, Category: "Burgers", Subcategory: strPtr("Chicken"), ImageURL: "https://images.unsplash.com/photo-1572802419224-296b0aeee0d9?w=800&q=80"},
		{Name: "Fillet-O-NUSH", Description: "Crispy fish fillet, tartar sauce, cheese", Price: 849, Category: "Burgers", Subcategory: strPtr("Fish"), ImageURL: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&q=80"},
		{Name: "Chicken Caesar Wrap", Description: "Grilled chicken, romaine lettuce, parmesan, caesar dressing", Price: 799, Category: "Wraps", ImageURL: "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?w=800&q=80"},
		{Name: "Spicy Veggie Wrap", Description: "Falafel, hummus, spicy relish, fresh veggies", Price: 749, Category: "Wraps", ImageURL: "https://images.unsplash.com/photo-1541529086526-db283c563270?w=800&q=80"},
		{Name: "3pc Fried Chicken", Description: "Crispy golden fried chicken pieces", Price: 699, Category: "Fried Chicken", ImageURL: "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=800&q=80"},
		{Name: "Spicy Wings (6pc)", Description: "Hot and spicy chicken wings served with ranch", Price: 799, Category: "Fried Chicken", ImageURL: "https://images.unsplash.com/photo-1567620832903-9fc6debc209f?w=800&q=80"},
		{Name: "Signature NUSH Sauce", Description: "Our secret recipe tangy sauce", Price: 100, Category: "Sauces", ImageURL: "https://images.unsplash.com/photo-1472476443507-c7a392dd6182?w=800&q=80"},
		{Name: "Garlic Mayo", Description: "Creamy garlic mayonnaise", Price: 100, Category: "Sauces", ImageURL: "https://images.unsplash.com/photo-1585238342024-78d387f4a707?w=800&q=80"},
		{Name: "Cola", Description: "Chilled cola soft drink", Price: 249, Category: "Drinks", ImageURL: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?w=800&q=80"},
		{Name: "Milkshake", Description: "Vanilla, Chocolate, or Strawberry", Price: 499, Category: "Drinks", ImageURL: "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=800&q=80"},
		{Name: "Family Feast", Description: "4 Burgers, 4 Fries, 4 Drinks, 6 Wings", Price: 3499, Category: "Meals", ImageURL: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&q=80"},
		{Name: "Couple Combo", Description: "2 Burgers, 2 Fries, 2 Drinks", Price: 1899, Category: "Meals", ImageURL: "https://images.unsplash.com/photo-1610614819513-58e34989848b?w=800&q=80"},
	}

	if err := db.Create(&items).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(items))
	return nil
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		utils.ErrorLogger.Printf("ADMIN_PASSWORD not set, seeding default credentials")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username: username,
		Password: string(hashed),
		Name:     "NUSH Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded admin account %q", username)
	return nil
}
