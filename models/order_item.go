package models

// OrderItem is immutable once written. PriceAtTime snapshots the menu
// price at order time so later menu edits never change order history.
type OrderItem struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	OrderID     uint `gorm:"not null;index" json:"orderId"`
	MenuItemID  uint `gorm:"not null" json:"menuItemId"`
	Quantity    int  `gorm:"not null" json:"quantity"`
	PriceAtTime int  `gorm:"not null" json:"priceAtTime"` // minor currency units
}
