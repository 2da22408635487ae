package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portssvc "github.com/brisabank/bank_ledger_app/internal/core/ports/services"
	"github.com/brisabank/bank_ledger_app/internal/dto"
	"github.com/brisabank/bank_ledger_app/internal/handlers"
	"github.com/brisabank/bank_ledger_app/pkg/config"
)

type ClientHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockClientService  *MockClientService
	mockAccountService *MockAccountService
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockClientService = new(MockClientService)
	suite.mockAccountService = new(MockAccountService)

	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Client:    suite.mockClientService,
		Account:   suite.mockAccountService,
		Ledger:    new(MockLedgerService),
		Statement: new(MockStatementService),
	})
}

func (suite *ClientHandlerTestSuite) postJSON(url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ClientHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func testClient() *domain.Client {
	return &domain.Client{
		ClientID:  uuid.NewString(),
		Name:      "Ana Souza",
		TaxID:     "12345678901",
		BirthDate: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Address:   "Rua das Flores, 10 - Centro - Sao Paulo/SP",
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			LastUpdatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
	}
}

// --- Registration ---

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	client := testClient()
	expectedReq := dto.CreateClientRequest{
		Name:      "Ana Souza",
		TaxID:     "12345678901",
		BirthDate: "20/05/1990",
		Address:   "Rua das Flores, 10 - Centro - Sao Paulo/SP",
	}
	suite.mockClientService.On("CreateClient", mock.Anything, expectedReq).Return(client, nil).Once()

	w := suite.postJSON("/api/v1/clients", `{
		"name": "Ana Souza",
		"taxID": "12345678901",
		"birthDate": "20/05/1990",
		"address": "Rua das Flores, 10 - Centro - Sao Paulo/SP"
	}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(client.ClientID, resp.ClientID)
	suite.Equal("20/05/1990", resp.BirthDate)
	suite.NotNil(resp.AccountNumbers)
	suite.Empty(resp.AccountNumbers)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_DuplicateTaxID() {
	suite.mockClientService.On("CreateClient", mock.Anything, mock.AnythingOfType("dto.CreateClientRequest")).
		Return(nil, fmt.Errorf("tax id 12345678901: %w", apperrors.ErrDuplicate)).Once()

	w := suite.postJSON("/api/v1/clients", `{
		"name": "Ana Souza",
		"taxID": "12345678901",
		"birthDate": "20/05/1990",
		"address": "Rua das Flores, 10"
	}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_ShortTaxIDRejectedAtBinding() {
	w := suite.postJSON("/api/v1/clients", `{
		"name": "Ana Souza",
		"taxID": "12345",
		"birthDate": "20/05/1990",
		"address": "Rua das Flores, 10"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient")
}

func (suite *ClientHandlerTestSuite) TestCreateClient_BadBirthDate() {
	suite.mockClientService.On("CreateClient", mock.Anything, mock.AnythingOfType("dto.CreateClientRequest")).
		Return(nil, fmt.Errorf("birth date %q: %w", "1990-05-20", apperrors.ErrValidation)).Once()

	w := suite.postJSON("/api/v1/clients", `{
		"name": "Ana Souza",
		"taxID": "12345678901",
		"birthDate": "1990-05-20",
		"address": "Rua das Flores, 10"
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

// --- Lookup ---

func (suite *ClientHandlerTestSuite) TestGetClient_Success() {
	client := testClient()
	suite.mockClientService.On("GetClientByID", mock.Anything, client.ClientID).Return(client, nil).Once()

	w := suite.get("/api/v1/clients/" + client.ClientID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(client.TaxID, resp.TaxID)
}

func (suite *ClientHandlerTestSuite) TestGetClientByTaxID_NotFound() {
	suite.mockClientService.On("GetClientByTaxID", mock.Anything, "00000000000").
		Return(nil, fmt.Errorf("tax id 00000000000: %w", apperrors.ErrNotFound)).Once()

	w := suite.get("/api/v1/clients/by-tax-id/00000000000")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ClientHandlerTestSuite) TestListClients_Success() {
	clients := []domain.Client{*testClient(), *testClient()}
	suite.mockClientService.On("ListClients", mock.Anything, 20, 0).Return(clients, nil).Once()

	w := suite.get("/api/v1/clients")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListClientsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Clients, 2)
}

// --- Account opening ---

func (suite *ClientHandlerTestSuite) TestOpenAccount_DefaultChecking() {
	clientID := uuid.NewString()
	account := domain.NewAccount("0001", clientID, domain.CheckingPolicy(decimal.NewFromInt(500), 3), time.Now())
	account.Number = 1
	suite.mockAccountService.On("OpenAccount", mock.Anything, clientID, dto.OpenAccountRequest{}).
		Return(account, nil).Once()

	w := suite.postJSON("/api/v1/clients/"+clientID+"/accounts", `{}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.AccountNumber)
	suite.Equal(domain.Checking, resp.Type)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestOpenAccount_CustomLimit() {
	clientID := uuid.NewString()
	limit := "750"
	maxW := 5
	account := domain.NewAccount("0001", clientID, domain.CheckingPolicy(decimal.NewFromInt(750), maxW), time.Now())
	account.Number = 2
	suite.mockAccountService.On("OpenAccount", mock.Anything, clientID,
		dto.OpenAccountRequest{Type: "CHECKING", Limit: &limit, MaxWithdrawals: &maxW}).
		Return(account, nil).Once()

	w := suite.postJSON("/api/v1/clients/"+clientID+"/accounts",
		`{"type":"CHECKING","limit":"750","maxWithdrawals":5}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	if suite.NotNil(resp.Limit) {
		suite.True(resp.Limit.Equal(decimal.NewFromInt(750)))
	}
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestOpenAccount_BadType() {
	w := suite.postJSON("/api/v1/clients/"+uuid.NewString()+"/accounts", `{"type":"SAVINGS"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "OpenAccount")
}

func (suite *ClientHandlerTestSuite) TestOpenAccount_ClientNotFound() {
	clientID := uuid.NewString()
	suite.mockAccountService.On("OpenAccount", mock.Anything, clientID, dto.OpenAccountRequest{}).
		Return(nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)).Once()

	w := suite.postJSON("/api/v1/clients/"+clientID+"/accounts", `{}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Client accounts listing ---

func (suite *ClientHandlerTestSuite) TestListClientAccounts_Success() {
	clientID := uuid.NewString()
	first := domain.NewAccount("0001", clientID, domain.CheckingPolicy(decimal.NewFromInt(500), 3), time.Now())
	first.Number = 1
	second := domain.NewAccount("0001", clientID, domain.StandardPolicy(), time.Now())
	second.Number = 2
	suite.mockAccountService.On("ListAccountsByClient", mock.Anything, clientID).
		Return([]domain.Account{*first, *second}, nil).Once()

	w := suite.get("/api/v1/clients/" + clientID + "/accounts")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(domain.Standard, resp[1].Type)
	suite.Nil(resp[1].Limit)
}

func (suite *ClientHandlerTestSuite) TestListClientAccounts_NoAccounts() {
	clientID := uuid.NewString()
	suite.mockAccountService.On("ListAccountsByClient", mock.Anything, clientID).
		Return(nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNoAccountsForClient)).Once()

	w := suite.get("/api/v1/clients/" + clientID + "/accounts")

	suite.Equal(http.StatusNotFound, w.Code)
	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Client has no accounts", body["error"])
}

func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
