package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates a set of transactions.
type Summary struct {
	TotalInflow      decimal.Decimal `json:"totalInflow"`
	TotalOutflow     decimal.Decimal `json:"totalOutflow"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"totalTransactions"`
}

// GlobalSummary is the admin-wide summary.
type GlobalSummary struct {
	Summary
	TotalUsers int64 `json:"totalUsers"`
}

// CategorySummary is one (category, type) bucket.
type CategorySummary struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// DailySummary is one calendar-day bucket.
type DailySummary struct {
	Date             time.Time       `json:"date"`
	TransactionCount int64           `json:"totalTransactions"`
	Inflow           decimal.Decimal `json:"inflow"`
	Outflow          decimal.Decimal `json:"outflow"`
}

// UserStats pairs an account with its transaction summary.
type UserStats struct {
	User    User    `json:"user"`
	Summary Summary `json:"summary"`
}

// UserCounts counts accounts by role.
type UserCounts struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
	Users  int64 `json:"users"`
}

// UserDetail is the admin view of one account.
type UserDetail struct {
	User         User              `json:"user"`
	Transactions []Transaction     `json:"transactions"`
	Summary      Summary           `json:"summary"`
	Categories   []CategorySummary `json:"categories"`
	Activities   []ActivityRecord  `json:"activities"`
}

// DashboardStats backs the admin dashboard.
type DashboardStats struct {
	Users            UserCounts       `json:"users"`
	Transactions     GlobalSummary    `json:"transactions"`
	TodayActivities  int64            `json:"todayActivities"`
	RecentActivities []ActivityRecord `json:"recentActivities"`
	UserStats        []UserStats      `json:"userStats"`
}
