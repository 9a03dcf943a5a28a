package models

import "time"

type Admin struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(255);unique;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
