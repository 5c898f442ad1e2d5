package pgsql

import (
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer wires every pgsql-backed repository against a shared
// connection pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:        NewUserRepository(pool),
		Profile:     NewProfileRepository(pool),
		Card:        NewCardRepository(pool),
		Transaction: NewTransactionRepository(pool),
	}
}
