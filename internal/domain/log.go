package domain

// LogEntry is one request observed by the gateway. Read-only to the console.
type LogEntry struct {
	ID                 string `json:"id"`
	TimestampMillis    int64  `json:"timestampMillis"`
	Credential         string `json:"credential"`
	Endpoint           string `json:"endpoint"`
	Method             string `json:"method"`
	StatusCode         int    `json:"statusCode"`
	ResponseTimeMillis int64  `json:"responseTimeMillis"`
	SourceIP           string `json:"sourceIp"`
}
