package services

import (
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/platform/config"
)

// NewServiceContainer wires every service against the repository container.
func NewServiceContainer(repos *portsrepo.RepositoryContainer, cfg *config.Config) *portssvc.ServiceContainer {
	profileSvc := NewProfileService(repos.Profile)
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.User, profileSvc),
		Profile:     profileSvc,
		Card:        NewCardService(repos.Card),
		Ledger:      NewLedgerService(repos.Transaction, repos.Card),
		Analytics:   NewAnalyticsService(repos.Transaction),
		Token:       NewTokenService(cfg, repos.User),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg),
	}
}
