package components

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/repository"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewListingRepository,
			fx.As(new(shared.ListingRepository)),
		),
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(shared.InventoryRepository)),
		),
		fx.Annotate(
			repository.NewPendingPromotionRepository,
			fx.As(new(shared.PendingPromotionRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
		),
		fx.Annotate(
			repository.NewPreferencesRepository,
			fx.As(new(shared.PreferencesRepository)),
		),
	),
)
