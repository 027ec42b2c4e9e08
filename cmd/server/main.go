package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"movingdata.com/p/apiscaffold/app"
	"movingdata.com/p/apiscaffold/app/schema"
	"movingdata.com/p/apiscaffold/modelutil"
)

type serverEnv struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"apiscaffold.db"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func loadEnv(envFile string) (*serverEnv, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := &serverEnv{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "APISCAFFOLD_"}); err != nil {
		return nil, err
	}

	return cfg, nil
}

func main() {
	envFile := flag.String("env", "", "File to load env variables from. If not specified .env is used when present.")
	flag.Parse()

	cfg, err := loadEnv(*envFile)
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	ll, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}
	logrus.SetLevel(ll)

	l := logrus.WithField("addr", cfg.Addr)

	db, err := modelutil.Open(cfg.DatabaseURL)
	if err != nil {
		l.WithError(err).Fatal("could not open database")
	}

	if err := modelutil.Migrate(db, schema.Models()); err != nil {
		l.WithError(err).Fatal("could not migrate database")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := &modelutil.Deps{
		DB:   db,
		Auth: modelutil.NewAuth([]byte(cfg.JWTSecret)),
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.NewRouter(deps, modelutil.NewMetrics(reg)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	l.Info("starting server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.WithError(err).Fatal("server stopped")
	}
}
