package gtfsrt

import (
	"bytes"
	"testing"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/timetable"
	"google.golang.org/protobuf/proto"
)

func tripUpdateEntity(id string, routeID string, relationship gtfs.TripDescriptor_ScheduleRelationship, tripUpdate *gtfs.TripUpdate) *gtfs.FeedEntity {
	tripUpdate.Trip = &gtfs.TripDescriptor{
		RouteId:              proto.String(routeID),
		ScheduleRelationship: relationship.Enum(),
	}

	return &gtfs.FeedEntity{
		Id:         proto.String(id),
		TripUpdate: tripUpdate,
	}
}

func encodeFeed(t *testing.T, entities ...*gtfs.FeedEntity) *bytes.Reader {
	message := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1715756400),
		},
		Entity: entities,
	}

	body, err := proto.Marshal(message)
	require.NoError(t, err)

	return bytes.NewReader(body)
}

func newTestService(t *testing.T) (*timetable.Service, *ctdf.TransportationVehicle, *ctdf.TransportationVehicle) {
	service := timetable.NewService(timetable.DefaultConfig())

	bus := ctdf.NewTransportationVehicle(ctdf.TransportTypeBus)
	train := ctdf.NewTransportationVehicle(ctdf.TransportTypeRail)
	service.AddVehicle(bus)
	service.AddVehicle(train)

	for name, vehicle := range map[string]*ctdf.TransportationVehicle{"10": bus, "10A": bus, "RE5": train} {
		_, err := service.AddLine(ctdf.NewLine(name, ctdf.EveryDay, vehicle))
		require.NoError(t, err)
	}

	return service, bus, train
}

func TestApplyTripDelays(t *testing.T) {
	service, bus, train := newTestService(t)

	feed := Feed{}
	require.NoError(t, feed.ParseFile(encodeFeed(t,
		tripUpdateEntity("1", "10", gtfs.TripDescriptor_SCHEDULED, &gtfs.TripUpdate{
			Delay: proto.Int32(300),
		}),
		tripUpdateEntity("2", "RE5", gtfs.TripDescriptor_SCHEDULED, &gtfs.TripUpdate{
			StopTimeUpdate: []*gtfs.TripUpdate_StopTimeUpdate{
				{StopSequence: proto.Uint32(1)},
				{
					StopSequence: proto.Uint32(2),
					Arrival:      &gtfs.TripUpdate_StopTimeEvent{Delay: proto.Int32(150)},
				},
			},
		}),
		tripUpdateEntity("3", "99", gtfs.TripDescriptor_SCHEDULED, &gtfs.TripUpdate{
			Delay: proto.Int32(60),
		}),
	)))

	result := feed.Apply(service)

	assert.Equal(t, ApplyResult{Updated: 2, Unmatched: 1}, result)
	assert.Equal(t, 5, bus.Delay())
	assert.Equal(t, 3, train.Delay(), "150 seconds round to 3 minutes")
}

func TestApplyCancellation(t *testing.T) {
	service, bus, train := newTestService(t)
	bus.SetDelay(4)

	feed := Feed{}
	require.NoError(t, feed.ParseFile(encodeFeed(t,
		tripUpdateEntity("1", "10A", gtfs.TripDescriptor_CANCELED, &gtfs.TripUpdate{}),
	)))

	assert.Equal(t, ApplyResult{Cancelled: 1}, feed.Apply(service))
	assert.False(t, bus.IsFunctional())
	assert.Equal(t, 4, bus.Delay(), "cancelling keeps the delay")
	assert.True(t, train.IsFunctional())

	feed = Feed{}
	require.NoError(t, feed.ParseFile(encodeFeed(t,
		tripUpdateEntity("1", "10A", gtfs.TripDescriptor_SCHEDULED, &gtfs.TripUpdate{}),
	)))

	assert.Equal(t, ApplyResult{Updated: 1}, feed.Apply(service))
	assert.True(t, bus.IsFunctional())
	assert.Equal(t, 4, bus.Delay(), "an update without delay keeps the current one")
}

func TestParseInvalidFeed(t *testing.T) {
	feed := Feed{}
	assert.Error(t, feed.ParseFile(bytes.NewReader([]byte{0xff, 0xff, 0xff})))

	service, _, _ := newTestService(t)
	assert.Equal(t, ApplyResult{}, feed.Apply(service))
}
