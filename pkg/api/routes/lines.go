package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/timetable"
)

type lineStop struct {
	Time        string `groups:"detailed"`
	Name        string `groups:"detailed"`
	StationID   int    `groups:"detailed"`
	StationName string `groups:"detailed"`
}

type lineResponse struct {
	ID          int      `groups:"basic,detailed"`
	Name        string   `groups:"basic,detailed"`
	ServingDays []string `groups:"basic,detailed"`

	Vehicle *vehicleResponse `groups:"basic,detailed"`

	Stops []lineStop `groups:"detailed"`
}

func newLineResponse(line *ctdf.Line) *lineResponse {
	response := &lineResponse{
		ID:          line.ID,
		Name:        line.Name,
		ServingDays: []string{},
		Vehicle:     newVehicleResponse(line.Vehicle),
		Stops:       []lineStop{},
	}

	for _, day := range line.ServingDays.Days() {
		response.ServingDays = append(response.ServingDays, day.String())
	}

	for _, stop := range line.Stops() {
		response.Stops = append(response.Stops, lineStop{
			Time:        stop.Time.String(),
			Name:        stop.Name,
			StationID:   stop.Station.ID,
			StationName: stop.Station.Name,
		})
	}

	return response
}

func LinesRouter(router fiber.Router, service *timetable.Service) {
	router.Get("/", listLines)
	router.Get("/:id", getLine)
	router.Delete("/:id", deleteLine(service))
}

func listLines(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "25"))
	if err != nil {
		return badRequest("Parameter limit should be an integer")
	}

	lines, err := dataaggregator.Lookup[[]*ctdf.Line](query.LinesByName{
		Name:  c.Query("name"),
		Limit: limit,
	})
	if err != nil {
		return err
	}

	responses := make([]*lineResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, newLineResponse(line))
	}

	return sendReduced(c, []string{"basic"}, responses)
}

func getLine(c *fiber.Ctx) error {
	lineID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest("Line identifier should be an integer")
	}

	line, err := dataaggregator.Lookup[*ctdf.Line](query.Line{ID: lineID})
	if err != nil {
		return err
	}

	return sendReduced(c, []string{"detailed"}, newLineResponse(line))
}

func deleteLine(service *timetable.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lineID, err := c.ParamsInt("id")
		if err != nil {
			return badRequest("Line identifier should be an integer")
		}

		if err := service.RemoveLine(lineID); err != nil {
			return err
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
