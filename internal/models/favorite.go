package models

import "time"

// Favorite marks an item as favorited. There is a single shared favorites list.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemID    string    `json:"item_id" gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteRequest is the body accepted when adding a favorite.
type FavoriteRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}
