package domain

// HealthStatus dilaporkan oleh endpoint /health.
type HealthStatus struct {
	Database string           `json:"database"`
	Counts   map[string]int64 `json:"counts"`
}
