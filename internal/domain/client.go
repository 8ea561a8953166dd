package domain

type ClientStatus string

const (
	StatusActive   ClientStatus = "active"
	StatusInactive ClientStatus = "inactive"
)

type Client struct {
	ID                 string       `json:"id"`
	Credential         string       `json:"credential"`
	DisplayName        string       `json:"displayName"`
	Role               Role         `json:"role"`
	Status             ClientStatus `json:"status"`
	RateLimitPerMinute int          `json:"rateLimitPerMinute"`
	RequestsToday      int          `json:"requestsToday"`
}

type NewClient struct {
	DisplayName        string `json:"displayName"`
	RateLimitPerMinute int    `json:"rateLimitPerMinute"`
}

// ClientPatch carries optional updates; nil fields are left untouched.
type ClientPatch struct {
	RateLimitPerMinute *int          `json:"rateLimitPerMinute,omitempty"`
	Status             *ClientStatus `json:"status,omitempty"`
}
