package dto

import (
	"time"

	"github.com/brisabank/bank_ledger_app/internal/core/domain"
)

// BirthDateLayout is the wire format for client birth dates.
const BirthDateLayout = "02/01/2006"

// CreateClientRequest defines the data needed to register a new client.
type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	TaxID     string `json:"taxID" binding:"required,len=11,numeric"`
	BirthDate string `json:"birthDate" binding:"required"` // dd/mm/yyyy
	Address   string `json:"address" binding:"required"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID       string    `json:"clientID"`
	Name           string    `json:"name"`
	TaxID          string    `json:"taxID"`
	BirthDate      string    `json:"birthDate"`
	Address        string    `json:"address"`
	AccountNumbers []int64   `json:"accountNumbers"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	numbers := c.AccountNumbers
	if numbers == nil {
		numbers = []int64{}
	}
	return ClientResponse{
		ClientID:       c.ClientID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		BirthDate:      c.BirthDate.Format(BirthDateLayout),
		Address:        c.Address,
		AccountNumbers: numbers,
		CreatedAt:      c.CreatedAt,
	}
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}
