package services

// ServiceContainer groups the service facades handed to the HTTP layer at
// startup.
type ServiceContainer struct {
	User        UserSvcFacade
	Profile     ProfileSvcFacade
	Card        CardSvcFacade
	Ledger      LedgerSvcFacade
	Analytics   AnalyticsSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
}
