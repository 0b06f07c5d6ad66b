package realtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/dataaggregator"
	"github.com/travigo/timetable/pkg/dataaggregator/global"
	"github.com/travigo/timetable/pkg/dataaggregator/query"
	"github.com/travigo/timetable/pkg/dataimporter"
	"github.com/travigo/timetable/pkg/events"
	"github.com/travigo/timetable/pkg/realtime/gtfsrt"
	"github.com/travigo/timetable/pkg/redis_client"
	"github.com/travigo/timetable/pkg/timetable"
	"github.com/travigo/timetable/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "realtime",
		Usage: "Realtime sources",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "keep a station departure board up to date on a simulated clock",
				Flags: []cli.Flag{
					dataimporter.DatasetFlag,
					&cli.StringFlag{
						Name:     "station",
						Usage:    "name (or part of the name) of the station to watch",
						Required: true,
					},
					&cli.TimestampFlag{
						Name:   "start",
						Usage:  "simulated start time, defaults to now",
						Layout: time.RFC3339,
					},
					&cli.Float64Flag{
						Name:  "speed",
						Usage: "simulated seconds per real second",
						Value: 1,
					},
					&cli.DurationFlag{
						Name:  "tick",
						Usage: "real time between board refreshes",
						Value: 30 * time.Second,
					},
					&cli.StringFlag{
						Name:  "horizon",
						Usage: "ISO8601 duration to look ahead",
						Value: "PT1H",
					},
					&cli.StringFlag{
						Name:    "gtfsrt-feed",
						Usage:   "GTFS Realtime feed file re-applied on every tick",
						EnvVars: []string{"TRAVIGO_GTFSRT_FEED"},
					},
					&cli.BoolFlag{
						Name:    "redis",
						Usage:   "mirror delays into redis and publish delay events",
						EnvVars: []string{"TRAVIGO_REALTIME_REDIS"},
					},
				},
				Action: func(c *cli.Context) error {
					service, _, err := dataimporter.LoadService(c.StringSlice("dataset"))
					if err != nil {
						return err
					}
					global.Setup(service)

					stations, err := dataaggregator.Lookup[[]*ctdf.Station](query.StationsByName{Name: c.String("station"), Limit: 1})
					if err != nil {
						return err
					}
					station := stations[0]

					if c.Bool("redis") {
						if err := attachRedisListeners(service); err != nil {
							return err
						}
					}

					start := time.Now()
					if c.Timestamp("start") != nil {
						start = *c.Timestamp("start")
					}
					clock := NewSimulatedClock(start, c.Float64("speed"))

					ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
					defer cancel()

					horizon := c.String("horizon")
					feedPath := c.String("gtfsrt-feed")

					clock.Run(ctx, c.Duration("tick"), func(now time.Time) {
						if feedPath != "" {
							if err := applyFeedFile(service, feedPath); err != nil {
								log.Error().Err(err).Str("feed", feedPath).Msg("Failed to apply GTFS-RT feed")
							}
						}

						if err := logDepartureBoard(station, now, horizon, clock); err != nil {
							log.Error().Err(err).Msg("Failed to generate departure board")
						}
					})

					return nil
				},
			},
			{
				Name:  "apply-feed",
				Usage: "apply a GTFS Realtime feed to a dataset once and print the result",
				Flags: []cli.Flag{
					dataimporter.DatasetFlag,
					&cli.StringFlag{
						Name:     "gtfsrt-feed",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					service, _, err := dataimporter.LoadService(c.StringSlice("dataset"))
					if err != nil {
						return err
					}

					if err := applyFeedFile(service, c.String("gtfsrt-feed")); err != nil {
						return err
					}

					for _, vehicle := range service.Vehicles() {
						fmt.Printf("%d %-10s delay=%d functional=%t\n", vehicle.ID, vehicle.Type, vehicle.Delay(), vehicle.IsFunctional())
					}

					return nil
				},
			},
		},
	}
}

func attachRedisListeners(service *timetable.Service) error {
	if err := redis_client.Connect(); err != nil {
		return err
	}

	eventsQueue, err := redis_client.QueueConnection.OpenQueue(events.QueueName)
	if err != nil {
		return err
	}

	delayStore := NewDelayStore(redis_client.Client)
	queueListener := events.NewQueueDelayListener(eventsQueue)

	for _, vehicle := range service.Vehicles() {
		if err := errors.Join(vehicle.AddDelayListener(delayStore), vehicle.AddDelayListener(queueListener)); err != nil {
			return err
		}
	}

	return nil
}

func applyFeedFile(service *timetable.Service, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	feed := gtfsrt.Feed{}
	if err := feed.ParseFile(file); err != nil {
		return err
	}

	feed.Apply(service)

	return nil
}

func logDepartureBoard(station *ctdf.Station, now time.Time, horizon string, clock ctdf.CurrentTimeProvider) error {
	horizonMinutes, err := util.HorizonMinutes(now, horizon)
	if err != nil {
		return err
	}

	departureBoard, err := dataaggregator.Lookup[[]*ctdf.DepartureBoard](query.DepartureBoard{
		StationID:      station.ID,
		StartDateTime:  now,
		HorizonMinutes: horizonMinutes,
		TimeProvider:   clock,
	})
	if err != nil {
		return err
	}

	log.Info().Str("station", station.Name).Time("time", now).Int("departures", len(departureBoard)).Msg("Departure board")

	for _, row := range departureBoard {
		log.Info().
			Str("line", row.LineName).
			Str("stop", row.StopName).
			Str("destination", row.Destination).
			Str("type", string(row.Type)).
			Msg(row.ArrivalMessage)
	}

	return nil
}
