package domain

import "time"

// AuditFields holds the creation/modification timestamps embedded in every
// long-lived entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
