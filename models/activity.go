package models

// RequestRecord is one entry of the recent activity log.
type RequestRecord struct {
	Number     int64  `json:"request"`
	RequestId  string `json:"requestId"`
	Method     string `json:"method"`
	Route      string `json:"route"`
	Status     int    `json:"status"`
	DurationMs int64  `json:"durationMs"`
}
