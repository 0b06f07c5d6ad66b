package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/timetable"
)

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetDataset(t *testing.T) {
	dataset, err := GetDataset("data/demo.yaml")
	require.NoError(t, err)
	assert.Equal(t, DataSet{Identifier: "demo", Format: DataSetFormatYAML, Source: "data/demo.yaml"}, dataset)

	dataset, err = GetDataset("stations.CSV")
	require.NoError(t, err)
	assert.Equal(t, DataSetFormatStationCSV, dataset.Format)

	_, err = GetDataset("timetable.xml")
	assert.ErrorIs(t, err, ctdf.ErrInvalidArgument)
}

func TestLoadDemoDataset(t *testing.T) {
	service := timetable.NewService(timetable.DefaultConfig())

	importContext, err := LoadFiles(service, "../../../data/demo.yaml")
	require.NoError(t, err)

	assert.Equal(t, 4, service.StationCount())
	assert.Equal(t, 2, service.VehicleCount())
	assert.Equal(t, 2, service.LineCount())

	mainStation := importContext.Stations["main-station"]
	require.NotNil(t, mainStation)
	assert.True(t, mainStation.TravelCenter)

	line := importContext.Lines["Linie 11"]
	require.NotNil(t, line)
	assert.Equal(t, ctdf.Weekend, line.ServingDays)
	assert.Equal(t, ctdf.TransportTypeLightRail, line.Vehicle.Type)
	assert.Equal(t, "Neckarturm Underground West", line.Stops()[3].Name)

	// 2020-04-22 is a Wednesday, the weekend tram is out of reach of a two day horizon
	allee := importContext.Stations["allee"]
	departures, err := service.GetDepartures(allee.ID, time.Date(2020, time.April, 22, 12, 30, 0, 0, time.UTC), 2880, nil)
	require.NoError(t, err)
	require.Len(t, departures, 2)
	assert.Equal(t, "Linie 10", departures[0].LineName())
	assert.Equal(t, time.Date(2020, time.April, 23, 10, 1, 0, 0, time.UTC), departures[0].ConcreteTime)
	assert.Equal(t, time.Date(2020, time.April, 24, 10, 1, 0, 0, time.UTC), departures[1].ConcreteTime)
}

func TestLoadStationListThenDataset(t *testing.T) {
	service := timetable.NewService(timetable.DefaultConfig())

	importContext, err := LoadFiles(service, "../../../data/stations.csv", "../../../data/airport.yaml")
	require.NoError(t, err)

	airport := importContext.Stations["airport"]
	require.NotNil(t, airport)
	assert.Equal(t, "Airport", airport.Name)
	assert.True(t, airport.TravelCenter && airport.StepFreeAccess && airport.Toilets)

	oldTown := importContext.Stations["old-town"]
	assert.False(t, oldTown.StepFreeAccess)
	assert.True(t, oldTown.Toilets)

	line := importContext.Lines["Airport Express"]
	require.NotNil(t, line)
	assert.Equal(t, ctdf.EveryDay, line.ServingDays)
	assert.Equal(t, "Harbour", line.Stops()[1].Name, "stop name defaults to the station name")
}

func TestLoadFilesErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		err     error
	}{
		{
			name: "unknown station key",
			file: "lines.yaml",
			content: `
Vehicles:
  - Type: Bus
Lines:
  - Name: "1"
    Days: [Mon]
    Vehicle: Bus
    Stops:
      - { Time: "08:00", Station: nowhere }
`,
			err: ctdf.ErrStationNotFound,
		},
		{
			name: "unknown vehicle key",
			file: "lines.yaml",
			content: `
Lines:
  - Name: "1"
    Days: [Mon]
    Vehicle: ghost
`,
			err: ctdf.ErrVehicleNotFound,
		},
		{
			name: "invalid stop time",
			file: "lines.yaml",
			content: `
Stations:
  - Name: Central
Vehicles:
  - Type: Bus
Lines:
  - Name: "1"
    Days: [Mon]
    Vehicle: Bus
    Stops:
      - { Time: "25:00", Station: Central }
`,
			err: ctdf.ErrInvalidArgument,
		},
		{
			name: "invalid weekday",
			file: "lines.yaml",
			content: `
Vehicles:
  - Type: Bus
Lines:
  - Name: "1"
    Days: [Someday]
    Vehicle: Bus
`,
			err: ctdf.ErrInvalidArgument,
		},
		{
			name: "duplicate line name",
			file: "lines.yaml",
			content: `
Vehicles:
  - Type: Bus
Lines:
  - Name: "1"
    Days: [Mon]
    Vehicle: Bus
  - Name: "1"
    Days: [Tue]
    Vehicle: Bus
`,
			err: ctdf.ErrLineAlreadyServed,
		},
		{
			name: "duplicate station key",
			file: "stations.csv",
			content: "station_key,station_name\na,Alpha\na,Again\n",
			err:     ctdf.ErrAlreadyExists,
		},
		{
			name: "unknown transport type",
			file: "vehicles.yaml",
			content: `
Vehicles:
  - Type: Zeppelin
`,
			err: ctdf.ErrInvalidArgument,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := timetable.NewService(timetable.DefaultConfig())

			_, err := LoadFiles(service, writeFile(t, test.file, test.content))
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestLoadFilesRejectsUnknownYAMLFields(t *testing.T) {
	service := timetable.NewService(timetable.DefaultConfig())

	_, err := LoadFiles(service, writeFile(t, "typo.yaml", "Stationz:\n  - Name: Central\n"))
	assert.Error(t, err)
}

func TestLoadEmptyDataset(t *testing.T) {
	service := timetable.NewService(timetable.DefaultConfig())

	_, err := LoadFiles(service, writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, 0, service.StationCount())
}
