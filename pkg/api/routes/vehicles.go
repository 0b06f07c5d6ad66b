package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
)

type vehicleResponse struct {
	ID         int                `groups:"basic,detailed"`
	Type       ctdf.TransportType `groups:"basic,detailed"`
	Delay      int                `groups:"basic,detailed"`
	Functional bool               `groups:"basic,detailed"`
	Listeners  int                `groups:"detailed"`
}

func newVehicleResponse(vehicle *ctdf.TransportationVehicle) *vehicleResponse {
	return &vehicleResponse{
		ID:         vehicle.ID,
		Type:       vehicle.Type,
		Delay:      vehicle.Delay(),
		Functional: vehicle.IsFunctional(),
		Listeners:  vehicle.DelayListenerCount(),
	}
}

func VehiclesRouter(router fiber.Router) {
	router.Get("/:id", getVehicle)
	router.Put("/:id/delay", setVehicleDelay)
	router.Put("/:id/functional", setVehicleFunctional)
}

func lookupVehicle(c *fiber.Ctx) (*ctdf.TransportationVehicle, error) {
	vehicleID, err := c.ParamsInt("id")
	if err != nil {
		return nil, badRequest("Vehicle identifier should be an integer")
	}

	return dataaggregator.Lookup[*ctdf.TransportationVehicle](query.Vehicle{ID: vehicleID})
}

func getVehicle(c *fiber.Ctx) error {
	vehicle, err := lookupVehicle(c)
	if err != nil {
		return err
	}

	return sendReduced(c, []string{"detailed"}, newVehicleResponse(vehicle))
}

func setVehicleDelay(c *fiber.Ctx) error {
	vehicle, err := lookupVehicle(c)
	if err != nil {
		return err
	}

	var request struct {
		Delay *int `json:"Delay"`
	}
	if err := c.BodyParser(&request); err != nil || request.Delay == nil {
		return badRequest("Body should contain the Delay in minutes")
	}

	vehicle.SetDelay(*request.Delay)

	return sendReduced(c, []string{"detailed"}, newVehicleResponse(vehicle))
}

func setVehicleFunctional(c *fiber.Ctx) error {
	vehicle, err := lookupVehicle(c)
	if err != nil {
		return err
	}

	var request struct {
		Functional *bool `json:"Functional"`
	}
	if err := c.BodyParser(&request); err != nil || request.Functional == nil {
		return badRequest("Body should contain Functional")
	}

	vehicle.SetFunctional(*request.Functional)

	return sendReduced(c, []string{"detailed"}, newVehicleResponse(vehicle))
}
