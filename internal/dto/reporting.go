package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

type SummaryResponse struct {
	TotalInflow       decimal.Decimal `json:"totalInflow" swaggertype:"number"`
	TotalOutflow      decimal.Decimal `json:"totalOutflow" swaggertype:"number"`
	Balance           decimal.Decimal `json:"balance" swaggertype:"number"`
	TotalTransactions int64           `json:"totalTransactions"`
}

func ToSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalInflow:       s.TotalInflow,
		TotalOutflow:      s.TotalOutflow,
		Balance:           s.Balance,
		TotalTransactions: s.TransactionCount,
	}
}

type GlobalSummaryResponse struct {
	SummaryResponse
	TotalUsers int64 `json:"totalUsers"`
}

func ToGlobalSummaryResponse(g domain.GlobalSummary) GlobalSummaryResponse {
	return GlobalSummaryResponse{SummaryResponse: ToSummaryResponse(g.Summary), TotalUsers: g.TotalUsers}
}

type CategorySummaryResponse struct {
	Category string          `json:"category"`
	Type     string          `json:"type"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total" swaggertype:"number"`
}

func ToCategorySummaryResponseList(cs []domain.CategorySummary) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, len(cs))
	for i, c := range cs {
		out[i] = CategorySummaryResponse{Category: c.Category, Type: string(c.Type), Count: c.Count, Total: c.Total}
	}
	return out
}

type DailySummaryResponse struct {
	Date              string          `json:"date"`
	TotalTransactions int64           `json:"totalTransactions"`
	Inflow            decimal.Decimal `json:"inflow" swaggertype:"number"`
	Outflow           decimal.Decimal `json:"outflow" swaggertype:"number"`
}

func ToDailySummaryResponseList(ds []domain.DailySummary) []DailySummaryResponse {
	out := make([]DailySummaryResponse, len(ds))
	for i, d := range ds {
		out[i] = DailySummaryResponse{
			Date:              d.Date.Format(domain.DateLayout),
			TotalTransactions: d.TransactionCount,
			Inflow:            d.Inflow,
			Outflow:           d.Outflow,
		}
	}
	return out
}

// DashboardResponse backs the admin dashboard.
type DashboardResponse struct {
	Users            domain.UserCounts     `json:"users"`
	Transactions     GlobalSummaryResponse `json:"transactions"`
	TodayActivities  int64                 `json:"todayActivities"`
	RecentActivities []ActivityResponse    `json:"recentActivities"`
	UserStats        []UserStatsResponse   `json:"userStats"`
}

func ToDashboardResponse(d *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		Users:            d.Users,
		Transactions:     ToGlobalSummaryResponse(d.Transactions),
		TodayActivities:  d.TodayActivities,
		RecentActivities: ToActivityResponseList(d.RecentActivities),
		UserStats:        ToUserStatsResponseList(d.UserStats),
	}
}
