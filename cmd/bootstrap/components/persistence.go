package components

import (
	"cafe-fausse/internal/infra/db"
	"cafe-fausse/internal/infra/readstore"
	"cafe-fausse/internal/infra/uow"
	"cafe-fausse/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewOverviewReadStore,
			fx.As(new(queries.OverviewReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
