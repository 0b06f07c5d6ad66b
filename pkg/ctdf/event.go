package ctdf

import (
	"fmt"
	"time"
)

type Event struct {
	Type      EventType
	Timestamp time.Time
	Body      interface{}
}

type EventType string

const (
	EventTypeVehicleDelayChanged EventType = "VehicleDelayChanged"
)

// VehicleDelayChange is the body of an EventTypeVehicleDelayChanged event.
type VehicleDelayChange struct {
	VehicleID   int
	VehicleType TransportType
	Delay       int
}

// GetNotificationData builds the human readable form of an event. Bodies decoded from JSON
// arrive as maps, so both the typed and the map form are accepted.
func (e *Event) GetNotificationData() EventNotificationData {
	eventNotificationData := EventNotificationData{}

	switch e.Type {
	case EventTypeVehicleDelayChanged:
		var change VehicleDelayChange

		switch body := e.Body.(type) {
		case VehicleDelayChange:
			change = body
		case *VehicleDelayChange:
			change = *body
		case map[string]interface{}:
			vehicleID, _ := body["VehicleID"].(float64)
			delay, _ := body["Delay"].(float64)
			vehicleType, _ := body["VehicleType"].(string)

			change = VehicleDelayChange{
				VehicleID:   int(vehicleID),
				VehicleType: TransportType(vehicleType),
				Delay:       int(delay),
			}
		}

		if change.Delay > 0 {
			eventNotificationData.Title = "Vehicle delayed"
			eventNotificationData.Message = fmt.Sprintf("%s %d is running %d min late.", change.VehicleType, change.VehicleID, change.Delay)
		} else {
			eventNotificationData.Title = "Vehicle on time"
			eventNotificationData.Message = fmt.Sprintf("%s %d is running on time.", change.VehicleType, change.VehicleID)
		}
	}

	return eventNotificationData
}

type EventNotificationData struct {
	Title   string
	Message string
}
