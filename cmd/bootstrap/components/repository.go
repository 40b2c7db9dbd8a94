package components

import (
	"gearshare/internal/infra/cache"
	"gearshare/internal/infra/repository"
	"gearshare/internal/pkg/config"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Each repository serves both the command and the query side of its
// aggregate, so one constructor is annotated with every port it fills.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserStore)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(commands.ItemStore)),
			fx.As(new(queries.ItemReadStore)),
			fx.As(new(queries.RequestFitStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.ProjectionBookingStore)),
		),
		fx.Annotate(
			repository.NewCommentRepository,
			fx.As(new(commands.CommentStore)),
			fx.As(new(queries.CommentReadStore)),
		),
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestStore)),
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			NewItemViewCache,
			fx.As(new(queries.ItemViewCache)),
		),
	),
)

func NewItemViewCache(cfg config.Config, rdb *redis.Client) *cache.ItemViewCache {
	return cache.NewItemViewCache(rdb, cfg.Redis.ItemTTL)
}
