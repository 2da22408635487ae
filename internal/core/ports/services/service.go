package services

// ServiceContainer holds instances of all the application services. It is
// the single entry point the collaborator layers (HTTP handlers, console)
// use to reach the core.
type ServiceContainer struct {
	Client    ClientSvcFacade
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Statement StatementSvcFacade
}
