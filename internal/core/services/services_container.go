package services

import (
	portsrepo "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Party = NewPartyService(repos.PartyRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.PartyRepo)
	container.Note = NewNoteService(repos.NoteRepo, repos.PartyRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.PartyRepo, repos.InvoiceRepo)
	container.Ledger = NewLedgerService(repos.SnapshotRepo)
	container.User = NewUserService(repos.UserRepo)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
