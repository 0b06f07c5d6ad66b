package ctdf

import (
	"reflect"
	"sync"

	"github.com/rs/zerolog/log"
)

// DelayListener is notified synchronously every time a vehicle's delay is set.
type DelayListener interface {
	NotifyDelay(vehicle *TransportationVehicle, delay int)
}

// TransportationVehicle serves one or more lines. Its delay and functional state are shared by
// every line that references it.
type TransportationVehicle struct {
	ID   int           `groups:"basic,detailed"`
	Type TransportType `groups:"basic,detailed"`

	mu           sync.RWMutex
	delay        int
	outOfService bool
	listeners    []DelayListener

	// Held for the whole set-and-notify sequence so listeners see delays in the order they were set
	dispatchMu sync.Mutex
}

func NewTransportationVehicle(transportType TransportType) *TransportationVehicle {
	return &TransportationVehicle{Type: transportType}
}

func (v *TransportationVehicle) Delay() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.delay
}

// SetDelay replaces the delay in minutes and notifies the listeners in registration order.
// Listeners must not call SetDelay on the same vehicle.
func (v *TransportationVehicle) SetDelay(minutes int) {
	v.dispatchMu.Lock()
	defer v.dispatchMu.Unlock()

	v.mu.Lock()
	v.delay = minutes
	listeners := make([]DelayListener, len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	log.Debug().Int("vehicle", v.ID).Int("delay", minutes).Int("listeners", len(listeners)).Msg("Vehicle delay set")

	for _, listener := range listeners {
		listener.NotifyDelay(v, minutes)
	}
}

func (v *TransportationVehicle) IsFunctional() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return !v.outOfService
}

func (v *TransportationVehicle) SetFunctional(functional bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.outOfService = !functional
}

func (v *TransportationVehicle) AddDelayListener(listener DelayListener) error {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return ErrListenerNotComparable
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.indexOfListener(listener) != -1 {
		return ErrListenerAlreadyRegistered
	}

	v.listeners = append(v.listeners, listener)
	return nil
}

func (v *TransportationVehicle) RemoveDelayListener(listener DelayListener) error {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return ErrListenerNotRegistered
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	index := v.indexOfListener(listener)
	if index == -1 {
		return ErrListenerNotRegistered
	}

	v.listeners = append(v.listeners[:index], v.listeners[index+1:]...)
	return nil
}

func (v *TransportationVehicle) DelayListenerCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.listeners)
}

func (v *TransportationVehicle) indexOfListener(listener DelayListener) int {
	for i, registered := range v.listeners {
		if registered == listener {
			return i
		}
	}

	return -1
}
