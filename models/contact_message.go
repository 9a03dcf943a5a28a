package models

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Email   string `gorm:"type:varchar(255);not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
}
