package events

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travigo/timetable/pkg/consumer"
	"github.com/travigo/timetable/pkg/ctdf"
	"github.com/travigo/timetable/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Provides the events runner",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run events consumers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "stats-address",
						Usage:   "address for the queue stats server, empty to disable",
						Value:   ":3333",
						EnvVars: []string{"TRAVIGO_EVENTS_STATS_ADDRESS"},
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					redisConsumer := consumer.RedisConsumer{
						QueueName:       QueueName,
						NumberConsumers: 5,
						BatchSize:       20,
						Timeout:         2 * time.Second,
						Consumer:        NewEventsBatchConsumer(),
						StatsAddress:    c.String("stats-address"),
					}
					if err := redisConsumer.Setup(redis_client.QueueConnection); err != nil {
						return err
					}

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					<-redis_client.QueueConnection.StopAllConsuming() // wait for all Consume() calls to finish

					return nil
				},
			},
			{
				Name:  "test-event",
				Usage: "publish a delay event for a made up vehicle",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "delay",
						Value: 5,
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(); err != nil {
						return err
					}

					eventsQueue, err := redis_client.QueueConnection.OpenQueue(QueueName)
					if err != nil {
						return err
					}

					vehicle := ctdf.NewTransportationVehicle(ctdf.TransportTypeBus)
					NewQueueDelayListener(eventsQueue).NotifyDelay(vehicle, c.Int("delay"))

					return nil
				},
			},
		},
	}
}
