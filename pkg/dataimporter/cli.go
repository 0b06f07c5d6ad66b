package dataimporter

import (
	"errors"
	"fmt"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator"
	"github.com/travigo/timetable/pkg/dataaggregator/global"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Load timetable datasets and query them offline",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Load the datasets and report what they contain",
				Flags: []cli.Flag{DatasetFlag},
				Action: func(c *cli.Context) error {
					service, _, err := LoadService(c.StringSlice("dataset"))
					if err != nil {
						return err
					}

					for _, line := range service.Lines() {
						log.Info().
							Int("id", line.ID).
							Str("name", line.Name).
							Str("days", line.ServingDays.String()).
							Int("stops", line.StopCount()).
							Str("vehicle", string(line.Vehicle.Type)).
							Msg("Line")
					}

					return nil
				},
			},
			{
				Name:  "board",
				Usage: "Print the departure board of a station",
				Flags: []cli.Flag{
					DatasetFlag,
					&cli.StringFlag{
						Name:     "station",
						Usage:    "name (or part of the name) of the station",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "datetime",
						Usage: "RFC3339 reference time, defaults to now",
					},
					&cli.StringFlag{
						Name:  "horizon",
						Usage: "ISO8601 duration to look ahead",
						Value: "PT2H",
					},
				},
				Action: func(c *cli.Context) error {
					service, _, err := LoadService(c.StringSlice("dataset"))
					if err != nil {
						return err
					}
					global.Setup(service)

					station, err := lookupStation(c.String("station"))
					if err != nil {
						return err
					}

					reference := time.Now()
					if datetime := c.String("datetime"); datetime != "" {
						if reference, err = time.Parse(time.RFC3339, datetime); err != nil {
							return err
						}
					}

					horizon, err := util.HorizonMinutes(reference, c.String("horizon"))
					if err != nil {
						return err
					}

					departureBoard, err := dataaggregator.Lookup[[]*ctdf.DepartureBoard](query.DepartureBoard{
						StationID:      station.ID,
						StartDateTime:  reference,
						HorizonMinutes: horizon,
						TimeProvider:   ctdf.CurrentTimeFunc(func() time.Time { return reference }),
					})
					if err != nil {
						return err
					}

					fmt.Printf("%s, %s\n", station.Name, reference.Format("Mon 02 Jan 15:04"))
					for _, row := range departureBoard {
						fmt.Printf("%-16s %-10s %-28s %s\n", row.ArrivalMessage, row.LineName, row.StopName, row.Destination)
					}

					return nil
				},
			},
			{
				Name:  "inspect",
				Usage: "Pretty print a station or a line",
				Flags: []cli.Flag{
					DatasetFlag,
					&cli.StringFlag{
						Name: "station",
					},
					&cli.StringFlag{
						Name: "line",
					},
				},
				Action: func(c *cli.Context) error {
					service, _, err := LoadService(c.StringSlice("dataset"))
					if err != nil {
						return err
					}
					global.Setup(service)

					switch {
					case c.String("station") != "":
						station, err := lookupStation(c.String("station"))
						if err != nil {
							return err
						}
						pretty.Println(station)
					case c.String("line") != "":
						lines, err := dataaggregator.Lookup[[]*ctdf.Line](query.LinesByName{Name: c.String("line"), Limit: 1})
						if err != nil {
							return err
						}
						pretty.Println(DescribeLine(lines[0]))
					default:
						return errors.New("one of --station or --line is required")
					}

					return nil
				},
			},
		},
	}
}

func lookupStation(name string) (*ctdf.Station, error) {
	stations, err := dataaggregator.Lookup[[]*ctdf.Station](query.StationsByName{Name: name, Limit: 1})
	if err != nil {
		return nil, err
	}

	return stations[0], nil
}

type LineDescription struct {
	ID          int
	Name        string
	ServingDays string
	VehicleID   int
	VehicleType ctdf.TransportType
	Delay       int
	Functional  bool
	Stops       []string
}

// DescribeLine flattens a line into plain values for printing.
func DescribeLine(line *ctdf.Line) LineDescription {
	description := LineDescription{
		ID:          line.ID,
		Name:        line.Name,
		ServingDays: line.ServingDays.String(),
		VehicleID:   line.Vehicle.ID,
		VehicleType: line.Vehicle.Type,
		Delay:       line.Vehicle.Delay(),
		Functional:  line.Vehicle.IsFunctional(),
	}

	for _, stop := range line.Stops() {
		description.Stops = append(description.Stops, fmt.Sprintf("%s %s (%s)", stop.Time, stop.Name, stop.Station.Name))
	}

	return description
}
