package domain

import (
	"strings"
	"time"
)

// A CustomerRecord is a customer with running order totals.
type CustomerRecord struct {
	ID          int64
	Customer    Customer
	TotalOrders int
	TotalSpent  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MatchCustomers keeps records whose full name contains q ignoring case
// or whose phone contains q. Empty q keeps everything.
func MatchCustomers(cs []CustomerRecord, q string) []CustomerRecord {
	q = strings.TrimSpace(q)
	res := make([]CustomerRecord, 0, len(cs))
	if q == "" {
		return append(res, cs...)
	}

	lq := strings.ToLower(q)
	for _, c := range cs {
		name := strings.ToLower(c.Customer.FullName())
		if strings.Contains(name, lq) || strings.Contains(c.Customer.Phone, q) {
			res = append(res, c)
		}
	}
	return res
}

const recentOrdersLimit = 5

type DashboardStats struct {
	TotalRevenue  int64
	TotalOrders   int
	TotalProducts int
	PendingOrders int
	RecentOrders  []Order
}

// NewDashboardStats expects orders sorted newest first.
func NewDashboardStats(orders []Order, totalProducts int) DashboardStats {
	s := DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: totalProducts,
	}
	for _, o := range orders {
		s.TotalRevenue += o.Total
		if o.Status == StatusPending {
			s.PendingOrders++
		}
	}
	s.RecentOrders = orders[:min(len(orders), recentOrdersLimit)]
	return s
}
