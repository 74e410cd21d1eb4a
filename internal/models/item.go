package models

import "time"

// DefaultRating is assigned to items created without an explicit rating.
const DefaultRating = 4.0

// AllCategories is the category label the client uses for its "show everything" tab.
const AllCategories = "全部"

// Item represents a dish on the menu.
type Item struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"type:varchar(50);not null;index"`
	Description string    `json:"description"`
	Image       string    `json:"image"` // URL or data URI
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemRequest is the body accepted when creating or replacing an item.
// Price and Rating are pointers so that a missing value can be told apart from zero.
type ItemRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required,max=50"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}
