package dataimporter

import (
	"github.com/travigo/timetable/pkg/dataimporter/formats"
	"github.com/travigo/timetable/pkg/dataimporter/manager"
	"github.com/travigo/timetable/pkg/timetable"
	"github.com/urfave/cli/v2"
)

// DatasetFlag is shared by every command that needs a populated timetable.
var DatasetFlag = &cli.StringSliceFlag{
	Name:    "dataset",
	Aliases: []string{"file"},
	Usage:   "dataset file to load (.yaml or station .csv), may be repeated",
	EnvVars: []string{"TRAVIGO_DATASET"},
}

// LoadService creates a Service configured from the environment and loads the given files.
func LoadService(paths []string) (*timetable.Service, *formats.ImportContext, error) {
	config, err := timetable.ConfigFromEnvironment()
	if err != nil {
		return nil, nil, err
	}

	service := timetable.NewService(config)

	importContext, err := manager.LoadFiles(service, paths...)
	if err != nil {
		return nil, nil, err
	}

	return service, importContext, nil
}
