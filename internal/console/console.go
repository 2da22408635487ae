// Package console is the interactive text collaborator: a menu loop that
// resolves clients and accounts, parses raw input, and calls into the core
// services. All console I/O and input validation stays here; the core never
// touches raw text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portssvc "github.com/brisabank/bank_ledger_app/internal/core/ports/services"
	"github.com/brisabank/bank_ledger_app/internal/dto"
	"github.com/brisabank/bank_ledger_app/internal/utils/money"
)

const menu = `
========= Welcome =========

	1 - Deposit
	2 - Withdraw
	3 - Statement
	4 - New client
	5 - Open account
	6 - List accounts
	0 - Exit
===========================
`

// Console drives the menu loop over the core services.
type Console struct {
	services *portssvc.ServiceContainer
	in       *bufio.Scanner
	out      io.Writer
}

// New creates a console bound to the given streams.
func New(services *portssvc.ServiceContainer, in io.Reader, out io.Writer) *Console {
	return &Console{
		services: services,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// NewRootCommand creates the console CLI command.
func NewRootCommand(services *portssvc.ServiceContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bank_console",
		Short: "Interactive retail banking console",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return New(services, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
	return rootCmd
}

// Run executes the menu loop until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu, "Choose an option: ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "0":
			fmt.Fprintln(c.out, "Goodbye.")
			return nil
		case "1":
			c.deposit(ctx)
		case "2":
			c.withdraw(ctx)
		case "3":
			c.statement(ctx)
		case "4":
			c.newClient(ctx)
		case "5":
			c.openAccount(ctx)
		case "6":
			c.listAccounts(ctx)
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

// promptAmount re-prompts until the input parses to a valid positive amount,
// mirroring the original console's retry-on-bad-input behaviour.
func (c *Console) promptAmount(label string) (amount string, ok bool) {
	for {
		raw, alive := c.prompt(label)
		if !alive {
			return "", false
		}
		if _, err := money.ParseAmount(raw); err != nil {
			fmt.Fprintln(c.out, "Invalid amount. Please enter a positive number.")
			continue
		}
		return raw, true
	}
}

// resolveAccount resolves a client by tax id and picks their first account,
// the same selection rule the original console used.
func (c *Console) resolveAccount(ctx context.Context) (*domain.Account, bool) {
	taxID, ok := c.prompt("Client tax id (digits only): ")
	if !ok {
		return nil, false
	}

	client, err := c.services.Client.GetClientByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Fprintln(c.out, "Tax id not found. Please try again.")
		} else {
			fmt.Fprintln(c.out, "Error:", err)
		}
		return nil, false
	}

	accounts, err := c.services.Account.ListAccountsByClient(ctx, client.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAccountsForClient) {
			fmt.Fprintln(c.out, "The client has no accounts.")
		} else {
			fmt.Fprintln(c.out, "Error:", err)
		}
		return nil, false
	}
	return &accounts[0], true
}

func (c *Console) deposit(ctx context.Context) {
	account, ok := c.resolveAccount(ctx)
	if !ok {
		return
	}
	raw, ok := c.promptAmount("Amount to deposit: ")
	if !ok {
		return
	}
	amount, _ := money.ParseAmount(raw)

	_, balance, err := c.services.Ledger.Deposit(ctx, account.Number, amount)
	if err != nil {
		c.printRejection(err)
		return
	}
	fmt.Fprintf(c.out, "Deposit recorded. New balance: %s\n", money.Format(balance))
}

func (c *Console) withdraw(ctx context.Context) {
	account, ok := c.resolveAccount(ctx)
	if !ok {
		return
	}
	raw, ok := c.promptAmount("Amount to withdraw: ")
	if !ok {
		return
	}
	amount, _ := money.ParseAmount(raw)

	_, balance, err := c.services.Ledger.Withdraw(ctx, account.Number, amount)
	if err != nil {
		c.printRejection(err)
		return
	}
	fmt.Fprintf(c.out, "Withdrawal recorded. New balance: %s\n", money.Format(balance))
}

func (c *Console) printRejection(err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		fmt.Fprintln(c.out, "Operation refused: the amount must be positive.")
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		fmt.Fprintln(c.out, "Operation refused: insufficient funds.")
	case errors.Is(err, apperrors.ErrWithdrawalCapExceeded):
		fmt.Fprintln(c.out, "Operation refused: amount exceeds the withdrawal limit.")
	case errors.Is(err, apperrors.ErrWithdrawalCountExceeded):
		fmt.Fprintln(c.out, "Operation refused: withdrawal count limit reached.")
	case errors.Is(err, apperrors.ErrDailyDepositCapExceeded):
		fmt.Fprintln(c.out, "Operation refused: daily deposit limit exceeded.")
	default:
		fmt.Fprintln(c.out, "Error:", err)
	}
}

func (c *Console) statement(ctx context.Context) {
	account, ok := c.resolveAccount(ctx)
	if !ok {
		return
	}

	st, err := c.services.Statement.Statement(ctx, account.Number)
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}

	fmt.Fprintln(c.out, "\n========= STATEMENT =========")
	if st.Empty {
		fmt.Fprintln(c.out, "No transactions to show.")
		return
	}

	fmt.Fprintln(c.out, "\n--- Deposits ---")
	if len(st.Deposits) == 0 {
		fmt.Fprintln(c.out, "No deposits recorded.")
	}
	for _, e := range st.Deposits {
		fmt.Fprintf(c.out, "%s | %s | %s\n", e.RecordedAt, st.OwnerName, money.Format(e.Amount))
	}

	fmt.Fprintln(c.out, "\n--- Withdrawals ---")
	if len(st.Withdrawals) == 0 {
		fmt.Fprintln(c.out, "No withdrawals recorded.")
	}
	for _, e := range st.Withdrawals {
		fmt.Fprintf(c.out, "%s | %s | %s\n", e.RecordedAt, st.OwnerName, money.Format(e.Amount))
	}

	fmt.Fprintf(c.out, "\nCurrent balance: %s\n", money.Format(st.Balance))
	fmt.Fprintln(c.out, "======= END OF STATEMENT =======")
}

func (c *Console) newClient(ctx context.Context) {
	taxID, ok := c.prompt("Tax id (digits only): ")
	if !ok {
		return
	}
	name, ok := c.prompt("Full name: ")
	if !ok {
		return
	}
	birthDate, ok := c.prompt("Birth date (dd/mm/yyyy): ")
	if !ok {
		return
	}
	address, ok := c.prompt("Address: ")
	if !ok {
		return
	}

	client, err := c.services.Client.CreateClient(ctx, dto.CreateClientRequest{
		Name:      strings.TrimSpace(name),
		TaxID:     strings.TrimSpace(taxID),
		BirthDate: strings.TrimSpace(birthDate),
		Address:   strings.TrimSpace(address),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			fmt.Fprintln(c.out, "Tax id already registered.")
		} else {
			fmt.Fprintln(c.out, "Error:", err)
		}
		return
	}
	fmt.Fprintf(c.out, "Client registered with id %s.\n", client.ClientID)
}

func (c *Console) openAccount(ctx context.Context) {
	taxID, ok := c.prompt("Client tax id (digits only): ")
	if !ok {
		return
	}

	client, err := c.services.Client.GetClientByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			fmt.Fprintln(c.out, "Tax id not found. Please try again.")
		} else {
			fmt.Fprintln(c.out, "Error:", err)
		}
		return
	}

	account, err := c.services.Account.OpenAccount(ctx, client.ClientID, dto.OpenAccountRequest{})
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	fmt.Fprintf(c.out, "Account %d opened at branch %s.\n", account.Number, account.Branch)
}

func (c *Console) listAccounts(ctx context.Context) {
	summaries, err := c.services.Account.ListAccountSummaries(ctx, 0, 0)
	if err != nil {
		fmt.Fprintln(c.out, "Error:", err)
		return
	}
	if len(summaries) == 0 {
		fmt.Fprintln(c.out, "No accounts registered.")
		return
	}
	for _, s := range summaries {
		fmt.Fprintln(c.out, strings.Repeat("=", 40))
		fmt.Fprintf(c.out, "Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s\nTax id:\t\t%s\n", s.Branch, s.AccountNumber, s.OwnerName, s.OwnerTaxID)
	}
}
