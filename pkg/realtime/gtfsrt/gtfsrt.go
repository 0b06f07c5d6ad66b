package gtfsrt

import (
	"io"
	"math"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/timetable"
	"google.golang.org/protobuf/proto"
)

// Feed is a GTFS Realtime feed whose trip updates are applied to the vehicles of the lines
// named by their route id.
type Feed struct {
	message *gtfs.FeedMessage
}

type ApplyResult struct {
	Updated   int
	Cancelled int
	Unmatched int
}

func (f *Feed) ParseFile(reader io.Reader) error {
	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	message := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(body, message); err != nil {
		return err
	}

	f.message = message

	return nil
}

// Apply sets the delay of every matched vehicle from the trip delay, or from the first stop time
// update carrying one, rounded to whole minutes. Cancelled trips take the vehicle out of service
// and scheduled ones put it back.
func (f *Feed) Apply(service *timetable.Service) ApplyResult {
	result := ApplyResult{}

	if f.message == nil {
		return result
	}

	for _, entity := range f.message.GetEntity() {
		tripUpdate := entity.GetTripUpdate()
		if tripUpdate == nil {
			continue
		}

		routeID := tripUpdate.GetTrip().GetRouteId()
		vehicles := vehiclesForRoute(service, routeID)
		if len(vehicles) == 0 {
			log.Debug().Str("entity", entity.GetId()).Str("route", routeID).Msg("No line for GTFS-RT trip update")
			result.Unmatched++
			continue
		}

		switch tripUpdate.GetTrip().GetScheduleRelationship() {
		case gtfs.TripDescriptor_CANCELED:
			for _, vehicle := range vehicles {
				vehicle.SetFunctional(false)
			}
			result.Cancelled++
		default:
			delay, hasDelay := tripUpdateDelayMinutes(tripUpdate)

			for _, vehicle := range vehicles {
				vehicle.SetFunctional(true)
				if hasDelay {
					vehicle.SetDelay(delay)
				}
			}
			result.Updated++
		}
	}

	log.Info().
		Int("updated", result.Updated).
		Int("cancelled", result.Cancelled).
		Int("unmatched", result.Unmatched).
		Msg("Applied GTFS-RT feed")

	return result
}

func vehiclesForRoute(service *timetable.Service, routeID string) []*ctdf.TransportationVehicle {
	if routeID == "" {
		return nil
	}

	lines, err := service.GetLinesByName(routeID, math.MaxInt)
	if err != nil {
		return nil
	}

	var vehicles []*ctdf.TransportationVehicle
	seen := map[*ctdf.TransportationVehicle]bool{}

	for _, line := range lines {
		if line.Name != routeID || line.Vehicle == nil || seen[line.Vehicle] {
			continue
		}

		seen[line.Vehicle] = true
		vehicles = append(vehicles, line.Vehicle)
	}

	return vehicles
}

func tripUpdateDelayMinutes(tripUpdate *gtfs.TripUpdate) (int, bool) {
	if tripUpdate.Delay != nil {
		return secondsToMinutes(tripUpdate.GetDelay()), true
	}

	for _, stopTimeUpdate := range tripUpdate.GetStopTimeUpdate() {
		if arrival := stopTimeUpdate.GetArrival(); arrival != nil && arrival.Delay != nil {
			return secondsToMinutes(arrival.GetDelay()), true
		}
		if departure := stopTimeUpdate.GetDeparture(); departure != nil && departure.Delay != nil {
			return secondsToMinutes(departure.GetDelay()), true
		}
	}

	return 0, false
}

func secondsToMinutes(seconds int32) int {
	return int(math.Round(float64(seconds) / 60))
}
