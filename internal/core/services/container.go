package services

import (
	portsrepo "github.com/brisabank/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/brisabank/bank_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the given repositories and
// returns the container the collaborator layers consume.
func NewServiceContainer(clientRepo portsrepo.ClientRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, defaults AccountDefaults) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:    NewClientService(clientRepo),
		Account:   NewAccountService(accountRepo, clientRepo, defaults),
		Ledger:    NewLedgerService(accountRepo),
		Statement: NewStatementService(accountRepo, clientRepo),
	}
}
