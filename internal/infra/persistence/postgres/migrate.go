package postgres

import (
	"context"
	"log/slog"

	"jewelshop/config"
	"jewelshop/internal/errors"
	"jewelshop/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&model.ProductModel{},
		&model.StockMovementModel{},
		&model.OrderAddressModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.CustomerAddressModel{},
	}
}

// MigrateParams defines the parameters for RegisterMigrations.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// RegisterMigrations runs AutoMigrate on start when env.autoMigrate is set.
func RegisterMigrations(params MigrateParams) {
	if !params.Config.Env.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.DB.WithContext(ctx).AutoMigrate(Models()...); err != nil {
				return errors.Wrap(err, "failed to auto-migrate schema")
			}

			params.Logger.Info("Database schema migrated", slog.Int("tables", len(Models())))

			return nil
		},
	})
}
