package models

import "time"

// Order statuses. Transitions between them are not enforced, but a
// status outside this set is rejected.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null" json:"customerId"`
	TotalAmount int       `gorm:"not null" json:"totalAmount"` // minor currency units
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

// OrderItemWithMenu is an order line annotated with the menu item it
// references.
type OrderItemWithMenu struct {
	OrderItem
	MenuItem MenuItem `json:"menuItem"`
}

// OrderWithDetails is the fully hydrated shape returned by order
// creation and listing: the order row plus its customer and lines.
type OrderWithDetails struct {
	Order
	Customer Customer            `json:"customer"`
	Items    []OrderItemWithMenu `json:"items"`
}
