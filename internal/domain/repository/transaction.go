package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the transaction of the current Execute call.
type RepositoryFactory interface {
	// NewPreOrderRepository returns a PreOrderRepository bound to the current transaction.
	NewPreOrderRepository() PreOrderRepository
}
