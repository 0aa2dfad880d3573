package domain

// Overview is the dashboard headline card for one tenant.
type Overview struct {
	TotalCustomers int64   `json:"totalCustomers"`
	TotalOrders    int64   `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalProducts  int64   `json:"totalProducts"`
}

// RevenuePoint is one calendar date's summed order revenue (UTC bucketing).
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// TopCustomer is a ranked entry in the top-customers list.
type TopCustomer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	TotalSpent float64 `json:"totalSpent"`
}

// TopProduct is a ranked entry in the top-products list. Ranking is by units
// sold, not revenue.
type TopProduct struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}
