package main

import (
	"context"
	"errors"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/foundlab/lostfound/modules/lostfound"
	"github.com/foundlab/lostfound/pkg/config"
	"github.com/foundlab/lostfound/pkg/environment"
	"github.com/foundlab/lostfound/pkg/httpserver"
	"github.com/foundlab/lostfound/pkg/logger"
	"github.com/foundlab/lostfound/pkg/lostitem"
	"github.com/foundlab/lostfound/pkg/mailer"
	"github.com/foundlab/lostfound/pkg/mongo"
	"github.com/foundlab/lostfound/pkg/notify"
	"github.com/foundlab/lostfound/pkg/receivers"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE_NAME" envDefault:"lostfound"`
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	var appCfg appConfig
	config.MustLoad(&appCfg)
	env := environment.Parse(appCfg.Env)

	log := logger.New(logger.WithEnvironment(env, appCfg.Service))
	logger.SetAsDefault(log)

	var mongoCfg mongo.Config
	config.MustLoad(&mongoCfg)

	db, err := mongo.NewDatabase(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongo", logger.Error(err))
		return err
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	itemStore := lostitem.NewMongoStore(db)
	receiverStore := receivers.NewMongoStore(db)

	// The mail transport is selected once at startup. Missing live
	// credentials disable notifications with a warning instead of refusing
	// to start: the item lifecycle must keep working without a mail path.
	var mailCfg mailer.Config
	config.MustLoad(&mailCfg)

	sender, err := mailer.NewFromConfig(mailCfg)
	if err != nil {
		if !errors.Is(err, mailer.ErrTransportUnavailable) {
			log.Error("invalid mail configuration", logger.Error(err))
			return err
		}
		log.Warn("mail transport not configured, notifications disabled", logger.Error(err))
		sender = nil
	}
	log.Info("mail transport selected", logger.Transport(mailer.TransportName(sender)))

	dispatcher := notify.NewDispatcher(sender, notify.WithLogger(log))
	svc := lostfound.NewService(itemStore, receiverStore, dispatcher, lostfound.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(db.Client())))
	r.Mount("/", lostfound.Router(svc))

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	srv := httpserver.New(httpCfg, log)
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server stopped", logger.Error(err))
		return err
	}
	return nil
}
