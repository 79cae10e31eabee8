package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/planefence/planealert/internal/config"
	"github.com/planefence/planealert/internal/notify"
	"github.com/planefence/planealert/pkg/alert"
	"github.com/planefence/planealert/pkg/feed"
	"github.com/planefence/planealert/pkg/planedb"
)

// planealert runs as the "PA" subsystem of the planefence tooling.
const subsystem = "PA"

type App struct {
	conf     *config.AppConfig
	db       *planedb.Registry
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewApp(conf *config.AppConfig, db *planedb.Registry, notifier notify.Notifier) *App {
	return &App{
		conf:     conf,
		db:       db,
		notifier: notifier,
		logger:   slog.Default().With("logger", "plane-alert"),
	}
}

// Run delivers one notification per alert, in feed order. A failure on one
// alert never stops the rest.
func (app *App) Run(ctx context.Context, alerts []feed.AlertRecord) int {
	sent := 0

	for _, rec := range alerts {
		app.logger.Info("building alert for " + rec.ICAO)

		ea, err := alert.Enrich(rec, app.db)
		if err != nil {
			app.logger.Error("error enriching alert for " + rec.ICAO + ": " + err.Error())

			continue
		}

		p := notify.BuildPayload(ea, app.conf.FeederName())

		if err := app.notifier.Send(ctx, p); err != nil {
			app.logger.Error("error sending alert for " + rec.ICAO + ": " + err.Error())

			continue
		}

		sent++
	}

	return sent
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if len(os.Args) != 2 {
		fmt.Println("no input file passed\n\tusage: planealert <inputfile>")
		os.Exit(1)
	}

	conf := config.NewAppConfig()
	if err := conf.Load(); err != nil {
		slog.Error("error loading config: " + err.Error())
		os.Exit(1)
	}

	urls := conf.Webhooks(subsystem)
	if len(urls) == 0 {
		slog.Error("no discord webhooks configured for " + subsystem)
		os.Exit(1)
	}

	db, err := planedb.Load(conf.PlaneFile())
	if err != nil {
		slog.Error("error loading plane-db " + conf.PlaneFile() + ": " + err.Error())
		os.Exit(1)
	}

	slog.Info(fmt.Sprintf("loaded %d entries into plane-db", db.Len()))

	alerts, err := feed.Load(os.Args[1])
	if err != nil {
		slog.Error("error loading alerts: " + err.Error())
		os.Exit(1)
	}

	slog.Info(fmt.Sprintf("loaded %d alerts", len(alerts)))

	var snapshot string
	if conf.Media() == "screenshot" {
		snapshot = notify.SnapshotPath(subsystem)
	}

	app := NewApp(conf, db, notify.NewDiscordWebhook(urls, snapshot))
	sent := app.Run(context.Background(), alerts)

	slog.Info(fmt.Sprintf("done sending alerts to discord, %d of %d delivered", sent, len(alerts)))
}
