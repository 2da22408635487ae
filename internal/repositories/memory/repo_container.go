package memory

// Container bundles the in-memory repositories so wiring code can build the
// whole storage layer in one call.
type Container struct {
	Client  *ClientRepository
	Account *AccountRepository
}

// New creates the repository set for one process run.
func New() *Container {
	return &Container{
		Client:  NewClientRepository(),
		Account: NewAccountRepository(),
	}
}
