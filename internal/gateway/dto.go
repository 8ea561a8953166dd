package gateway

import (
	"strings"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
)

type validateRequest struct {
	APIKey string `json:"apiKey"`
}

type validateResponse struct {
	Valid      bool   `json:"valid"`
	Role       string `json:"role"`
	ClientName string `json:"clientName"`
	RateLimit  int    `json:"rateLimit"`
}

type clientDTO struct {
	ID                 string `json:"id"`
	APIKey             string `json:"apiKey"`
	ClientName         string `json:"clientName"`
	Role               string `json:"role"`
	Status             string `json:"status"`
	RateLimitPerMinute int    `json:"rateLimitPerMinute"`
	RequestsToday      int    `json:"requestsToday"`
}

func (c clientDTO) toDomain() domain.Client {
	role, _ := domain.ParseRole(c.Role)
	return domain.Client{
		ID:                 c.ID,
		Credential:         c.APIKey,
		DisplayName:        c.ClientName,
		Role:               role,
		Status:             domain.ClientStatus(strings.ToLower(c.Status)),
		RateLimitPerMinute: c.RateLimitPerMinute,
		RequestsToday:      c.RequestsToday,
	}
}

type createClientRequest struct {
	ClientName         string `json:"clientName"`
	RateLimitPerMinute int    `json:"rateLimitPerMinute"`
}

type updateClientRequest struct {
	RateLimitPerMinute *int    `json:"rateLimitPerMinute,omitempty"`
	Status             *string `json:"status,omitempty"`
}

func newUpdateClientRequest(p domain.ClientPatch) updateClientRequest {
	req := updateClientRequest{RateLimitPerMinute: p.RateLimitPerMinute}
	if p.Status != nil {
		s := strings.ToUpper(string(*p.Status))
		req.Status = &s
	}
	return req
}

type logDTO struct {
	ID           string `json:"id"`
	Timestamp    int64  `json:"timestamp"`
	APIKey       string `json:"apiKey"`
	Endpoint     string `json:"endpoint"`
	Method       string `json:"method"`
	StatusCode   int    `json:"statusCode"`
	ResponseTime int64  `json:"responseTime"`
	IP           string `json:"ip"`
}

func (l logDTO) toDomain() domain.LogEntry {
	return domain.LogEntry{
		ID:                 l.ID,
		TimestampMillis:    l.Timestamp,
		Credential:         l.APIKey,
		Endpoint:           l.Endpoint,
		Method:             l.Method,
		StatusCode:         l.StatusCode,
		ResponseTimeMillis: l.ResponseTime,
		SourceIP:           l.IP,
	}
}

type statsDTO struct {
	RequestsUsed    int     `json:"requestsUsed"`
	RateLimit       int     `json:"rateLimit"`
	RemainingQuota  int     `json:"remainingQuota"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

func (s statsDTO) toDomain() domain.UsageStats {
	return domain.UsageStats(s)
}
