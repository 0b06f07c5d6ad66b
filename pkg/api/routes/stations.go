package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/timetable"
	"github.com/travigo/timetable/pkg/util"
)

const defaultHorizon = "PT1H"

var stationGroups = []string{"basic", "detailed"}

func StationsRouter(router fiber.Router, service *timetable.Service) {
	router.Get("/", listStations)
	router.Post("/", createStation(service))
	router.Get("/:id", getStation)
	router.Delete("/:id", deleteStation(service))
	router.Get("/:id/departures", getStationDepartures)
}

func listStations(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "25"))
	if err != nil {
		return badRequest("Parameter limit should be an integer")
	}

	stations, err := dataaggregator.Lookup[[]*ctdf.Station](query.StationsByName{
		Name:   c.Query("name"),
		Limit:  limit,
		Filter: c.Query("filter"),
	})
	if err != nil {
		return err
	}

	return sendReduced(c, stationGroups, stations)
}

func getStation(c *fiber.Ctx) error {
	stationID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest("Station identifier should be an integer")
	}

	station, err := dataaggregator.Lookup[*ctdf.Station](query.Station{ID: stationID})
	if err != nil {
		return err
	}

	return sendReduced(c, stationGroups, station)
}

type createStationRequest struct {
	Name           string `json:"Name"`
	TravelCenter   bool   `json:"TravelCenter"`
	StepFreeAccess bool   `json:"StepFreeAccess"`
	Toilets        bool   `json:"Toilets"`
}

func createStation(service *timetable.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request createStationRequest
		if err := c.BodyParser(&request); err != nil {
			return badRequest("Body should be a JSON station")
		}
		if request.Name == "" {
			return badRequest("Station name must be set")
		}

		station := ctdf.NewStation(request.Name, request.TravelCenter, request.StepFreeAccess, request.Toilets)
		service.AddStation(station)

		c.Status(fiber.StatusCreated)
		return sendReduced(c, stationGroups, station)
	}
}

func deleteStation(service *timetable.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stationID, err := c.ParamsInt("id")
		if err != nil {
			return badRequest("Station identifier should be an integer")
		}

		if err := service.RemoveStation(stationID); err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// getStationDepartures renders the board for a station. Countdowns are relative to the
// requested datetime, or to now when none is given; format=false returns bare stop times.
func getStationDepartures(c *fiber.Ctx) error {
	stationID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest("Station identifier should be an integer")
	}

	count, err := strconv.Atoi(c.Query("count", "0"))
	if err != nil {
		return badRequest("Parameter count should be an integer")
	}

	startDateTime := time.Now()
	if startDateTimeString := c.Query("datetime"); startDateTimeString != "" {
		startDateTime, err = time.Parse(time.RFC3339, startDateTimeString)
		if err != nil {
			return badRequest("Parameter datetime should be an RFC3339/ISO8601 datetime")
		}
	}

	var horizonMinutes int64
	if minutes := c.Query("minutes"); minutes != "" {
		horizonMinutes, err = strconv.ParseInt(minutes, 10, 64)
		if err != nil {
			return badRequest("Parameter minutes should be an integer")
		}
	} else {
		horizonMinutes, err = util.HorizonMinutes(startDateTime, c.Query("horizon", defaultHorizon))
		if err != nil {
			return badRequest("Parameter horizon should be an ISO8601 duration")
		}
	}

	var timeProvider ctdf.CurrentTimeProvider
	if c.QueryBool("format", true) {
		timeProvider = ctdf.CurrentTimeFunc(func() time.Time { return startDateTime })
	}

	departureBoard, err := dataaggregator.Lookup[[]*ctdf.DepartureBoard](query.DepartureBoard{
		StationID:      stationID,
		StartDateTime:  startDateTime,
		HorizonMinutes: horizonMinutes,
		Count:          count,
		TimeProvider:   timeProvider,
	})
	if err != nil {
		return err
	}

	return sendReduced(c, []string{"basic"}, departureBoard)
}
