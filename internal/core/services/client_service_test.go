package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/services"
	"github.com/brisabank/bank_ledger_app/internal/dto"
	"github.com/brisabank/bank_ledger_app/internal/repositories/memory"
)

type ClientServiceTestSuite struct {
	suite.Suite
	repos   *memory.Container
	clients *services.ClientService
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.repos = memory.New()
	s.clients = services.NewClientService(s.repos.Client)
}

func validClientRequest() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:      "Ana Souza",
		TaxID:     "12345678901",
		BirthDate: "15/04/1990",
		Address:   "Rua das Flores, 10 - Centro - Sao Paulo/SP",
	}
}

func (s *ClientServiceTestSuite) TestCreateClient() {
	client, err := s.clients.CreateClient(context.Background(), validClientRequest())
	s.Require().NoError(err)
	s.NotEmpty(client.ClientID)
	s.Equal("12345678901", client.TaxID)
	s.Equal(1990, client.BirthDate.Year())
	s.Empty(client.AccountNumbers)

	found, err := s.clients.GetClientByTaxID(context.Background(), "12345678901")
	s.Require().NoError(err)
	s.Equal(client.ClientID, found.ClientID)
}

func (s *ClientServiceTestSuite) TestDuplicateTaxIDRejected() {
	_, err := s.clients.CreateClient(context.Background(), validClientRequest())
	s.Require().NoError(err)

	req := validClientRequest()
	req.Name = "Outro Nome"
	_, err = s.clients.CreateClient(context.Background(), req)
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *ClientServiceTestSuite) TestInvalidBirthDateRejected() {
	req := validClientRequest()
	req.BirthDate = "1990-04-15"
	_, err := s.clients.CreateClient(context.Background(), req)
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *ClientServiceTestSuite) TestGetUnknownClient() {
	_, err := s.clients.GetClientByID(context.Background(), "nope")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.clients.GetClientByTaxID(context.Background(), "00000000000")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ClientServiceTestSuite) TestListClients() {
	first, err := s.clients.CreateClient(context.Background(), validClientRequest())
	s.Require().NoError(err)

	req := validClientRequest()
	req.TaxID = "98765432100"
	second, err := s.clients.CreateClient(context.Background(), req)
	s.Require().NoError(err)

	clients, err := s.clients.ListClients(context.Background(), 20, 0)
	s.Require().NoError(err)
	s.Require().Len(clients, 2)
	s.Equal(first.ClientID, clients[0].ClientID)
	s.Equal(second.ClientID, clients[1].ClientID)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
