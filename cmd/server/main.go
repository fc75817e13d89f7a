package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nudgyt/scaiguide/api"
	"github.com/nudgyt/scaiguide/core/config"
	"github.com/nudgyt/scaiguide/core/feedback"
	"github.com/nudgyt/scaiguide/core/guide"
	"github.com/nudgyt/scaiguide/core/logger"
	"github.com/nudgyt/scaiguide/core/notification"
	"github.com/nudgyt/scaiguide/core/route"
	"github.com/nudgyt/scaiguide/core/server"
	"github.com/nudgyt/scaiguide/core/session"
	mongodb "github.com/nudgyt/scaiguide/integration/database/mongo"
	redisdb "github.com/nudgyt/scaiguide/integration/database/redis"
	"github.com/nudgyt/scaiguide/integration/storage/s3"
	"github.com/nudgyt/scaiguide/pkg/chatmodel"
)

// navCacheTTL bounds how long a resolved navigation match is reused.
const navCacheTTL = 15 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.New(logCfg)

	var (
		mongoCfg   mongodb.Config
		sessionCfg session.Config
		serverCfg  server.Config
	)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&sessionCfg)
	config.MustLoad(&serverCfg)

	// The document store degrades rather than blocking startup: sessions
	// are still issued with persisted=false until the cluster recovers.
	deps := api.Deps{Logger: log, Probes: map[string]func(context.Context) error{}}

	client, err := mongodb.New(ctx, mongoCfg)
	if err != nil {
		log.Error("mongodb unavailable, running degraded", logger.Error(err))
		if client, err = mongodb.Open(mongoCfg); err != nil {
			log.Error("mongodb client init failed", logger.Error(err))
			os.Exit(1)
		}
	} else {
		deps.StoreEnabled = true
		deps.Probes["mongo"] = mongodb.Healthcheck(client)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongodb disconnect failed", logger.Error(err))
		}
	}()
	db := client.Database(mongoCfg.Database)

	sessions, err := session.NewManager(
		session.NewMongoStore[any](db.Collection("sessions")),
		sessionCfg,
		session.WithLogger[any](log.With(logger.Component("session"))),
	)
	if err != nil {
		log.Error("session manager init failed", logger.Error(err))
		os.Exit(1)
	}
	deps.Sessions = sessions

	// Optional collaborators: chat, cache and photo storage each log and
	// drop out when unconfigured instead of failing the process.
	var guideOpts []guide.Option
	var redisCfg redisdb.Config
	config.MustLoad(&redisCfg)
	if redisCfg.ConnectionURL == "" {
		log.Info("redis not configured, navigation cache disabled")
	} else if cache, err := redisdb.Connect(ctx, redisCfg); err != nil {
		log.Warn("redis unavailable, navigation cache disabled", logger.Error(err))
	} else {
		defer cache.Close()
		deps.Probes["redis"] = redisdb.Healthcheck(cache)
		guideOpts = append(guideOpts, guide.WithCache(cache, navCacheTTL))
	}

	var chatCfg chatmodel.Config
	if err := config.Load(&chatCfg); err != nil {
		log.Info("chat model not configured, guide chat disabled", logger.Error(err))
	} else if model, err := chatmodel.New(ctx, chatCfg); err != nil {
		log.Error("chat model init failed", logger.Error(err))
		os.Exit(1)
	} else {
		guideOpts = append(guideOpts, guide.WithLogger(log.With(logger.Component("guide"))))
		deps.Guide = guide.New(model, guideOpts...)
		log.Info("chat model configured", "model", model.Name())
	}

	var uploader feedback.Uploader
	var s3Cfg s3.Config
	if err := config.Load(&s3Cfg); err != nil {
		log.Info("object storage not configured, feedback photos disabled", "error", err)
	} else if storage, err := s3.New(ctx, s3Cfg); err != nil {
		log.Error("object storage init failed", logger.Error(err))
		os.Exit(1)
	} else {
		uploader = storage
	}

	deps.Feedback = feedback.NewService(feedback.NewMongoRepository(db.Collection("feedback")), uploader)
	deps.Notifications = notification.NewService(notification.NewMongoRepository(db.Collection("notifications")))
	deps.Routes = route.NewService(route.NewMongoRepository(db.Collection("routes")))

	srv := server.New(serverCfg, server.WithLogger(log))
	if err := srv.Start(ctx, api.NewRouter(deps)); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
