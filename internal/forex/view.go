package forex

// HistoryRow is the read-only projection of one persisted record returned
// by history queries.
type HistoryRow struct {
	Date string `json:"date" example:"2024-12-11"`
	USD  string `json:"usd" example:"32.51"`
}
