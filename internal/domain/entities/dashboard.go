package entities

// DashboardSummary aggregates counters for the shop overview.
type DashboardSummary struct {
	TotalClients   int64
	TotalVehicles  int64
	TotalOrders    int64
	OrdersByStatus map[OrderStatus]int64
	RecentOrders   []ServiceOrder
}
