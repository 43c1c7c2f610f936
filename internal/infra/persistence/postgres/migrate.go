package postgres

import (
	"context"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/errors"
	"backoffice/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the dependencies of AutoMigrate.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// AutoMigrate creates or alters every table, including the unique indexes on
// airports.code and pre_orders.order_id, when migration.autoMigrate is set.
func AutoMigrate(params MigrateParams) {
	if !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.DB.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "failed to auto-migrate schema")
			}

			params.Logger.Info("Database schema migrated", slog.Int("tables", len(model.All())))

			return nil
		},
	})
}
