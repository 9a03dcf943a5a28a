package models

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       int     `gorm:"not null" json:"price"` // minor currency units
	Category    string  `gorm:"type:varchar(100);not null" json:"category"`
	Subcategory *string `gorm:"type:varchar(100)" json:"subcategory"`
	ImageURL    string  `gorm:"type:varchar(255);not null" json:"imageUrl"`
}
