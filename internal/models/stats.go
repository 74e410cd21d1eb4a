package models

// Stats is the aggregate summary served by the stats endpoint.
type Stats struct {
	TotalItems     int64   `json:"total_items"`
	TotalOrders    int64   `json:"total_orders"`
	TotalFavorites int64   `json:"total_favorites"`
	TotalRevenue   float64 `json:"total_revenue"`
}
