package models

import "time"

// Order statuses. An order moves pending -> confirmed -> delivered.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
)

// Routing keys of the events published when an order changes.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// DefaultCustomerName is stored when an order arrives without customer details.
const DefaultCustomerName = "老婆"

// ValidOrderStatus reports whether status is one of the known order statuses.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderLine represents a single item within an order.
type OrderLine struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"order_id" gorm:"type:varchar(36);not null;index"`
	ItemID    string  `json:"item_id" gorm:"type:varchar(36);not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"` // Price at the time of order
	ItemName  string  `json:"item_name,omitempty" gorm:"->;-:migration"`
	ItemImage string  `json:"item_image,omitempty" gorm:"->;-:migration"`
}

// TableName keeps the line table name used by existing databases.
func (OrderLine) TableName() string {
	return "order_items"
}

// Order represents a customer order.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Total           float64     `json:"total" gorm:"not null"`
	Status          string      `json:"status" gorm:"type:varchar(20);not null;default:pending;index"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           string      `json:"notes"`
	Items           []OrderLine `json:"items" gorm:"-"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderLineRequest is one cart line submitted with a new order. Price is the
// unit price the caller saw and is required so it can be told apart from zero.
type OrderLineRequest struct {
	ItemID   string   `json:"item_id" validate:"required"`
	Quantity int      `json:"quantity" validate:"required,gt=0"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// CustomerInfo holds the optional delivery details of an order.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// CreateOrderRequest is the body accepted by the order creation endpoint.
// Total may be omitted, in which case it is computed from the lines.
type CreateOrderRequest struct {
	Items        []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	Total        *float64           `json:"total" validate:"omitempty,gte=0"`
	CustomerInfo CustomerInfo       `json:"customer_info"`
}

// UpdateOrderStatusRequest is the body accepted by the status endpoint.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderEvent is published to the message broker when an order changes.
type OrderEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
