package postgres

import (
	"context"
	"strings"
	"testing"

	"backoffice/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB renders statements without a server and returns every generated SQL
// string, with its arguments inlined, in execution order.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 user=backoffice dbname=backoffice sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var statements []string
	record := func(tx *gorm.DB) {
		statements = append(statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", record))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", record))

	return db, &statements
}

func TestNotificationStore_OwnerPredicate(t *testing.T) {
	tests := []struct {
		name      string
		newRepo   func(db *gorm.DB) idAndOwnerQueries
		predicate string
	}{
		{
			name:      "admin notifications",
			newRepo:   func(db *gorm.DB) idAndOwnerQueries { return ownerQueries(NewAdminNotificationRepository(db)) },
			predicate: "WHERE admin_id = 9 AND id = 5",
		},
		{
			name:      "driver notifications",
			newRepo:   func(db *gorm.DB) idAndOwnerQueries { return ownerQueries(NewDriverNotificationRepository(db)) },
			predicate: "WHERE driver_id = 9 AND id = 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, statements := newDryRunDB(t)
			repo := tt.newRepo(db)
			ctx := context.Background()

			repo.find(ctx, 5, 9)
			_ = repo.markRead(ctx, 5, 9)
			_ = repo.remove(ctx, 5, 9)

			require.Len(t, *statements, 3)
			assert.Contains(t, (*statements)[0], "SELECT")
			assert.Contains(t, (*statements)[1], "UPDATE")
			assert.Contains(t, (*statements)[2], "DELETE")
			for _, statement := range *statements {
				assert.Contains(t, statement, tt.predicate)
			}
		})
	}
}

func TestNotificationStore_BulkStaysOwned(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewDriverNotificationRepository(db)
	ctx := context.Background()

	_, _ = repo.FindByOwner(ctx, 9, 20)
	_, _ = repo.MarkAllRead(ctx, 9)
	_, _ = repo.DeleteAllByOwner(ctx, 9)

	require.Len(t, *statements, 3)
	assert.Contains(t, (*statements)[0], "WHERE driver_id = 9")
	assert.Contains(t, (*statements)[0], "LIMIT 20")
	assert.Contains(t, (*statements)[1], "WHERE driver_id = 9 AND is_read = false")
	assert.Contains(t, (*statements)[2], "WHERE driver_id = 9")
}

func TestPreOrderRepository_LockingRead(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewPreOrderRepository(db)
	ctx := context.Background()

	_, _ = repo.FindByOrderIDForUpdate(ctx, "ORD-1")
	_, _ = repo.FindByOrderID(ctx, "ORD-1")

	require.Len(t, *statements, 2)
	assert.Contains(t, (*statements)[0], "WHERE order_id = 'ORD-1'")
	assert.True(t, strings.HasSuffix((*statements)[0], "LIMIT 1 FOR UPDATE"), (*statements)[0])
	assert.Contains(t, (*statements)[1], "WHERE order_id = 'ORD-1'")
	assert.NotContains(t, (*statements)[1], "FOR UPDATE")
}

// idAndOwnerQueries drops the element type so both notification variants share one table.
type idAndOwnerQueries struct {
	find     func(ctx context.Context, id, ownerID uint64)
	markRead func(ctx context.Context, id, ownerID uint64) error
	remove   func(ctx context.Context, id, ownerID uint64) error
}

func ownerQueries[N any](repo repository.NotificationRepository[N]) idAndOwnerQueries {
	return idAndOwnerQueries{
		find: func(ctx context.Context, id, ownerID uint64) {
			_, _ = repo.FindByIDAndOwner(ctx, id, ownerID)
		},
		markRead: repo.MarkRead,
		remove:   repo.DeleteByIDAndOwner,
	}
}
