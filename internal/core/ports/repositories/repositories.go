package repositories

// RepositoryContainer groups the repository facades handed to the service
// layer at startup.
type RepositoryContainer struct {
	User        UserRepositoryFacade
	Profile     ProfileRepositoryFacade
	Card        CardRepositoryFacade
	Transaction TransactionRepositoryFacade
}
