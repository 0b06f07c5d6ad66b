package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/timetable/pkg/dataimporter"
	"github.com/travigo/timetable/pkg/events"
	"github.com/travigo/timetable/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					dataimporter.DatasetFlag,
					&cli.BoolFlag{
						Name:    "publish-events",
						Usage:   "publish vehicle delay changes to the events queue",
						EnvVars: []string{"TRAVIGO_PUBLISH_EVENTS"},
					},
				},
				Action: func(c *cli.Context) error {
					service, _, err := dataimporter.LoadService(c.StringSlice("dataset"))
					if err != nil {
						return err
					}

					if c.Bool("publish-events") {
						if err := redis_client.Connect(); err != nil {
							return err
						}

						eventsQueue, err := redis_client.QueueConnection.OpenQueue(events.QueueName)
						if err != nil {
							return err
						}

						listener := events.NewQueueDelayListener(eventsQueue)
						for _, vehicle := range service.Vehicles() {
							if err := vehicle.AddDelayListener(listener); err != nil {
								return err
							}
						}
					}

					log.Info().Str("listen", c.String("listen")).Msg("Starting web API")

					return SetupServer(c.String("listen"), service)
				},
			},
		},
	}
}
