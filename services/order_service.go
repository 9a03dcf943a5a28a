package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/models"
)

// phoneRegex accepts Pakistani mobile numbers with an optional +92
// country code or leading trunk 0, e.g. 03001234567 or +923001234567.
var phoneRegex = regexp.MustCompile(`^(\+92|0)?3[0-9]{9}$`)

type CreateOrderCustomer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type CreateOrderItem struct {
	MenuItemID  uint `json:"menuItemId"`
	Quantity    int  `json:"quantity"`
	PriceAtTime int  `json:"priceAtTime"`
}

type CreateOrderRequest struct {
	Customer    CreateOrderCustomer `json:"customer"`
	Items       []CreateOrderItem   `json:"items"`
	TotalAmount int                 `json:"totalAmount"`
}

// OrderService materializes customer + order + order items as one unit
// and serves the hydrated read side.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

func validateCreateOrder(req CreateOrderRequest) error {
	if len(req.Customer.Name) < 2 {
		return &ValidationError{Field: "customer.name", Message: "Name must be at least 2 characters"}
	}
	if !phoneRegex.MatchString(req.Customer.Phone) {
		return &ValidationError{Field: "customer.phone", Message: "Invalid Pakistan phone number. Format: 03XXXXXXXXX or +923XXXXXXXXX"}
	}
	if len(req.Customer.Location) < 5 {
		return &ValidationError{Field: "customer.location", Message: "Please provide a detailed location"}
	}
	if len(req.Items) == 0 {
		return &ValidationError{Field: "items", Message: "Order must contain at least one item"}
	}

	computed := 0
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("items.%d.quantity", i),
				Message: "Quantity must be a positive number",
			}
		}
		if item.PriceAtTime <= 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("items.%d.priceAtTime", i),
				Message: "Item price must be a positive number",
			}
		}
		computed += item.Quantity * item.PriceAtTime
	}

	if req.TotalAmount <= 0 {
		return &ValidationError{Field: "totalAmount", Message: "Total amount must be a positive number"}
	}
	// The total is recomputed server-side; a client-supplied sum that
	// disagrees with the line items is rejected.
	if req.TotalAmount != computed {
		return &ValidationError{Field: "totalAmount", Message: "Total amount does not match order items"}
	}
	return nil
}

// Create validates the request, then inserts the customer, the order
// (status pending) and every order item inside one transaction so a
// fault partway through leaves no partial state. The returned composite
// carries the menu item behind each line.
func (s *OrderService) Create(req CreateOrderRequest) (*models.OrderWithDetails, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	var details *models.OrderWithDetails
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		customer := models.Customer{
			Name:     req.Customer.Name,
			Phone:    req.Customer.Phone,
			Location: req.Customer.Location,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		order := models.Order{
			CustomerID:  customer.ID,
			TotalAmount: req.TotalAmount,
			Status:      models.StatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItemWithMenu, 0, len(req.Items))
		for _, item := range req.Items {
			row := models.OrderItem{
				OrderID:     order.ID,
				MenuItemID:  item.MenuItemID,
				Quantity:    item.Quantity,
				PriceAtTime: item.PriceAtTime,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

			var menuItem models.MenuItem
			if err := tx.First(&menuItem, row.MenuItemID).Error; err != nil {
				return fmt.Errorf("menu item %d: %w", row.MenuItemID, err)
			}
			items = append(items, models.OrderItemWithMenu{OrderItem: row, MenuItem: menuItem})
		}

		details = &models.OrderWithDetails{Order: order, Customer: customer, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// List returns all orders, newest first, fully hydrated.
func (s *OrderService) List() ([]models.OrderWithDetails, error) {
	var orders []models.Order
	if err := s.DB.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	details := make([]models.OrderWithDetails, len(orders))
	var g errgroup.Group
	g.SetLimit(8)
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			d, err := s.hydrate(order)
			if err != nil {
				return err
			}
			details[i] = *d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *OrderService) hydrate(order models.Order) (*models.OrderWithDetails, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, order.CustomerID).Error; err != nil {
		return nil, err
	}

	var rows []models.OrderItem
	if err := s.DB.Where("order_id = ?", order.ID).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]models.OrderItemWithMenu, 0, len(rows))
	for _, row := range rows {
		var menuItem models.MenuItem
		if err := s.DB.First(&menuItem, row.MenuItemID).Error; err != nil {
			return nil, err
		}
		items = append(items, models.OrderItemWithMenu{OrderItem: row, MenuItem: menuItem})
	}

	return &models.OrderWithDetails{Order: order, Customer: customer, Items: items}, nil
}

// UpdateStatus sets the order status and refreshes updated_at. Any
// transition between known statuses is allowed.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if status == "" {
		return nil, &ValidationError{Field: "status", Message: "Status is required"}
	}
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("Unknown order status %q", status)}
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
