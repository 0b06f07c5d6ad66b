package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataimporter/formats"
	"github.com/travigo/timetable/pkg/dataimporter/formats/stationcsv"
	"github.com/travigo/timetable/pkg/dataimporter/formats/yamldataset"
	"github.com/travigo/timetable/pkg/timetable"
)

type DataSetFormat string

const (
	DataSetFormatYAML       DataSetFormat = "timetable-yaml"
	DataSetFormatStationCSV DataSetFormat = "station-csv"
)

type DataSet struct {
	Identifier string
	Format     DataSetFormat
	Source     string
}

// GetDataset describes the file at path, choosing the format from its extension.
func GetDataset(path string) (DataSet, error) {
	dataset := DataSet{
		Identifier: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Source:     path,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dataset.Format = DataSetFormatYAML
	case ".csv":
		dataset.Format = DataSetFormatStationCSV
	default:
		return DataSet{}, fmt.Errorf("%w: unrecognised dataset file %q", ctdf.ErrInvalidArgument, path)
	}

	return dataset, nil
}

func ImportDataset(dataset DataSet, importContext *formats.ImportContext) error {
	var format formats.Format

	switch dataset.Format {
	case DataSetFormatYAML:
		format = &yamldataset.Dataset{}
	case DataSetFormatStationCSV:
		format = &stationcsv.StationList{}
	default:
		return fmt.Errorf("%w: unrecognised format %s", ctdf.ErrInvalidArgument, dataset.Format)
	}

	log.Info().Str("dataset", dataset.Identifier).Str("format", string(dataset.Format)).Msg("Loading dataset")

	file, err := os.Open(dataset.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := format.ParseFile(file); err != nil {
		return fmt.Errorf("%s: %w", dataset.Source, err)
	}

	if err := format.Import(importContext); err != nil {
		return fmt.Errorf("%s: %w", dataset.Source, err)
	}

	return nil
}

// LoadFiles imports every file in order into service. Station lists have to come before the
// datasets referring to their keys.
func LoadFiles(service *timetable.Service, paths ...string) (*formats.ImportContext, error) {
	importContext := formats.NewImportContext(service)

	for _, path := range paths {
		dataset, err := GetDataset(path)
		if err != nil {
			return nil, err
		}

		if err := ImportDataset(dataset, importContext); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("stations", service.StationCount()).
		Int("vehicles", service.VehicleCount()).
		Int("lines", service.LineCount()).
		Msg("Timetable loaded")

	return importContext, nil
}
