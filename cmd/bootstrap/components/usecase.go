package components

import (
	"gearshare/internal/pkg/clock"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUserCommands,
		commands.NewItemCommands,
		commands.NewBookingCommands,
		commands.NewRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewBookingQueries,
		queries.NewRequestQueries,
	),
)
