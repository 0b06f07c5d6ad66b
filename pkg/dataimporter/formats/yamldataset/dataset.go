package yamldataset

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataimporter/formats"
	"gopkg.in/yaml.v3"
)

type Station struct {
	Key            string `yaml:"Key"`
	Name           string `yaml:"Name"`
	TravelCenter   bool   `yaml:"TravelCenter"`
	StepFreeAccess bool   `yaml:"StepFreeAccess"`
	Toilets        bool   `yaml:"Toilets"`
}

type Vehicle struct {
	Key          string `yaml:"Key"`
	Type         string `yaml:"Type"`
	Delay        int    `yaml:"Delay"`
	OutOfService bool   `yaml:"OutOfService"`
}

type Stop struct {
	Time    string `yaml:"Time"`
	Station string `yaml:"Station"`
	Name    string `yaml:"Name"`
}

type Line struct {
	Name    string   `yaml:"Name"`
	Days    []string `yaml:"Days"`
	Vehicle string   `yaml:"Vehicle"`
	Stops   []Stop   `yaml:"Stops"`
}

// Dataset is a complete timetable described in YAML. Stations and vehicles are referred to by
// their Key, which defaults to the station name or the vehicle type.
type Dataset struct {
	Stations []Station `yaml:"Stations"`
	Vehicles []Vehicle `yaml:"Vehicles"`
	Lines    []Line    `yaml:"Lines"`
}

func (d *Dataset) ParseFile(reader io.Reader) error {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(d); err != nil && err != io.EOF {
		return err
	}

	return nil
}

func (d *Dataset) Import(importContext *formats.ImportContext) error {
	log.Info().
		Int("stations", len(d.Stations)).
		Int("vehicles", len(d.Vehicles)).
		Int("lines", len(d.Lines)).
		Msg("Importing dataset")

	for _, record := range d.Stations {
		if err := importStation(importContext, record); err != nil {
			return err
		}
	}

	for _, record := range d.Vehicles {
		if err := importVehicle(importContext, record); err != nil {
			return err
		}
	}

	for _, record := range d.Lines {
		if err := importLine(importContext, record); err != nil {
			return fmt.Errorf("line %q: %w", record.Name, err)
		}
	}

	return nil
}

func importStation(importContext *formats.ImportContext, record Station) error {
	if record.Name == "" {
		return fmt.Errorf("%w: station %q has no name", ctdf.ErrInvalidArgument, record.Key)
	}

	key := record.Key
	if key == "" {
		key = record.Name
	}
	if _, exists := importContext.Stations[key]; exists {
		return fmt.Errorf("%w: station key %q", ctdf.ErrAlreadyExists, key)
	}

	station := ctdf.NewStation(record.Name, record.TravelCenter, record.StepFreeAccess, record.Toilets)
	importContext.Service.AddStation(station)
	importContext.Stations[key] = station

	return nil
}

func importVehicle(importContext *formats.ImportContext, record Vehicle) error {
	transportType, err := ctdf.ParseTransportType(record.Type)
	if err != nil {
		return err
	}

	key := record.Key
	if key == "" {
		key = string(transportType)
	}
	if _, exists := importContext.Vehicles[key]; exists {
		return fmt.Errorf("%w: vehicle key %q", ctdf.ErrAlreadyExists, key)
	}

	vehicle := ctdf.NewTransportationVehicle(transportType)
	vehicle.SetDelay(record.Delay)
	vehicle.SetFunctional(!record.OutOfService)

	importContext.Service.AddVehicle(vehicle)
	importContext.Vehicles[key] = vehicle

	return nil
}

func importLine(importContext *formats.ImportContext, record Line) error {
	vehicle, exists := importContext.Vehicles[record.Vehicle]
	if !exists {
		return fmt.Errorf("%w: vehicle key %q", ctdf.ErrVehicleNotFound, record.Vehicle)
	}

	servingDays, err := ctdf.ParseWeekdaySet(record.Days)
	if err != nil {
		return err
	}

	line := ctdf.NewLine(record.Name, servingDays, vehicle)

	for _, stopRecord := range record.Stops {
		station, exists := importContext.Stations[stopRecord.Station]
		if !exists {
			return fmt.Errorf("%w: station key %q", ctdf.ErrStationNotFound, stopRecord.Station)
		}

		stopTime, err := ctdf.ParseTimeOfDay(stopRecord.Time)
		if err != nil {
			return err
		}

		name := stopRecord.Name
		if name == "" {
			name = station.Name
		}

		line.CreateStop(stopTime, station, name)
	}

	if _, err := importContext.Service.AddLine(line); err != nil {
		return err
	}
	importContext.Lines[record.Name] = line

	return nil
}
