package dto

import "time"

type RecentRequestDTO struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type DashboardStatsDTO struct {
	TotalRequests      uint64             `json:"totalRequests"`
	PendingRequests    uint64             `json:"pendingRequests"`
	InProgressRequests uint64             `json:"inProgressRequests"`
	CompletedRequests  uint64             `json:"completedRequests"`
	RecentRequests     []RecentRequestDTO `json:"recentRequests"`
	StatusDistribution map[string]uint64  `json:"statusDistribution"`
}
