package entity

// DashboardStats is the admin landing summary.
type DashboardStats struct {
	TotalUsers        int          `json:"totalUsers"`
	TotalProducts     int          `json:"totalProducts"`
	TotalOrders       int          `json:"totalOrders"`
	RevenueLast30Days float64      `json:"revenueLast30Days"`
	PendingOrders     int          `json:"pendingOrders"`
	DeliveredOrders   int          `json:"deliveredOrders"`
	LowStockCount     int          `json:"lowStockCount"`
	SalesGraph        []SalesPoint `json:"salesGraph,omitempty"`
}

// SalesPoint is one day of the sales graph.
type SalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
