package services

// ServiceContainer holds all service interfaces needed by handlers.
// This makes passing dependencies to handler registration cleaner.
type ServiceContainer struct {
	Party              PartySvcFacade
	Invoice            InvoiceSvcFacade
	Note               NoteSvcFacade
	Payment            PaymentSvcFacade
	Ledger             LedgerSvcFacade
	User               UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
