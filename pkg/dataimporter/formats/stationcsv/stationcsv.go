package stationcsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataimporter/formats"
)

type Station struct {
	Key            string `csv:"station_key"`
	Name           string `csv:"station_name"`
	TravelCenter   bool   `csv:"travel_center"`
	StepFreeAccess bool   `csv:"step_free_access"`
	Toilets        bool   `csv:"toilets"`
}

// StationList is a CSV file with one station per row.
type StationList struct {
	Stations []*Station
}

func (s *StationList) ParseFile(reader io.Reader) error {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		return r
	})

	return gocsv.Unmarshal(reader, &s.Stations)
}

func (s *StationList) Import(importContext *formats.ImportContext) error {
	log.Info().Int("stations", len(s.Stations)).Msg("Importing station list")

	for _, record := range s.Stations {
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

		station := &ctdf.Station{}
		if err := copier.Copy(station, record); err != nil {
			return err
		}

		importContext.Service.AddStation(station)
		importContext.Stations[key] = station
	}

	return nil
}
