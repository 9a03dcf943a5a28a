package models

import "time"

// Customer is created fresh on every order submission, there is no
// matching against earlier customers.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Location  string    `gorm:"type:text;not null" json:"location"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
