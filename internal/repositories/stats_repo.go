package repositories

// StatsRepository defines the aggregate queries behind the stats endpoint.
type StatsRepository interface {
	CountItems() (int64, error)
	CountOrders() (int64, error)
	CountFavorites() (int64, error)
	// SumRevenue sums the totals of every order that has left the pending state.
	SumRevenue() (float64, error)
}
