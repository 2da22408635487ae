package domain

import "time"

// Client is a registered account holder. Identity fields are fixed at
// registration; only the owned account-number set grows, and it never
// shrinks because accounts are not closed. Accounts are referenced by
// number, not by pointer: the account arena (repository) is the single
// owner of account state.
type Client struct {
	ClientID  string    `json:"clientID"` // UUID
	Name      string    `json:"name"`
	TaxID     string    `json:"taxID"` // National tax id, 11 digits
	BirthDate time.Time `json:"birthDate"`
	Address   string    `json:"address"`
	AuditFields

	AccountNumbers []int64 `json:"accountNumbers"`
}
