package models

// CategoryStat is one row of the per-category dashboard breakdown.
type CategoryStat struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// DashboardStats is the summary produced by the dashboard aggregator.
type DashboardStats struct {
	TotalItems       int            `json:"total_items"`
	TotalValue       float64        `json:"total_value"`
	LowStockItems    int            `json:"low_stock_items"`
	OutOfStockItems  int            `json:"out_of_stock_items"`
	CategoriesCount  int            `json:"categories_count"`
	TopCategories    []CategoryStat `json:"top_categories"`
	RecentActivities []ActivityLog  `json:"recent_activities"`
}
