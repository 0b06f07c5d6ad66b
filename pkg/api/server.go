package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/timetable/pkg/api/routes"
	"github.com/travigo/timetable/pkg/dataaggregator/global"
	"github.com/travigo/timetable/pkg/timetable"
)

// NewApp builds the web API for service. Read requests go through the global data aggregator,
// which is pointed at service here.
func NewApp(service *timetable.Service) *fiber.App {
	global.Setup(service)

	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          routes.ErrorHandler,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), service)
	routes.LinesRouter(group.Group("/lines"), service)
	routes.VehiclesRouter(group.Group("/vehicles"))

	return webApp
}

func SetupServer(listen string, service *timetable.Service) error {
	return NewApp(service).Listen(listen)
}
