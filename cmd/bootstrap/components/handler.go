package components

import (
	"bookingcore/internal/handler"
	"bookingcore/internal/handler/api"
	"bookingcore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewEntitlementHandler,
		api.NewWorkingHoursHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	catalog *api.CatalogHandler,
	entitlement *api.EntitlementHandler,
	workingHours *api.WorkingHoursHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Catalog:      catalog,
		Entitlement:  entitlement,
		WorkingHours: workingHours,
	}
}
