package domain

const (
	NearLimitPercent = 80.0
	AtLimitPercent   = 100.0
)

type UsageStats struct {
	RequestsUsed    int     `json:"requestsUsed"`
	RateLimit       int     `json:"rateLimit"`
	RemainingQuota  int     `json:"remainingQuota"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

func (u UsageStats) Percent() float64 {
	if u.RateLimit == 0 {
		return 0
	}
	return float64(u.RequestsUsed) / float64(u.RateLimit) * 100
}

func (u UsageStats) NearLimit() bool {
	return u.Percent() >= NearLimitPercent
}

func (u UsageStats) AtLimit() bool {
	return u.Percent() >= AtLimitPercent
}
