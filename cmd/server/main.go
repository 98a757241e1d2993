package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nexus-iam/sentinel/auth"
	clientsredis "github.com/nexus-iam/sentinel/clients/redisrepo"
	"github.com/nexus-iam/sentinel/credentials"
	"github.com/nexus-iam/sentinel/internal/config"
	"github.com/nexus-iam/sentinel/registration"
	"github.com/nexus-iam/sentinel/server"
	"github.com/nexus-iam/sentinel/token"
	"github.com/nexus-iam/sentinel/token/ledgerredis"
	usersredis "github.com/nexus-iam/sentinel/users/redisrepo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	setupLogging(cfg)
	displayAppname(cfg.GetAppName())

	// A bad signing secret means every token we mint could never validate.
	codec, err := token.NewCodec(cfg.GetSigningSecret(), cfg.GetIssuer())
	if err != nil {
		return errors.Wrap(err, "signing configuration")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.GetRedisPassword(),
		DB:       cfg.GetRedisDB(),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.GetRedisAddr()).Msg("unable to reach redis")
	}
	defer func() { _ = redisClient.Close() }()

	userRepo := usersredis.New(redisClient)
	clientRepo := clientsredis.New(redisClient)
	verifier := credentials.NewBcryptVerifier()

	authService, err := auth.NewAuthenticationService(
		auth.Repos{
			Users:   userRepo,
			Clients: clientRepo,
			Ledger:  ledgerredis.New(redisClient),
		},
		codec,
		verifier,
		cfg.GetAccessTokenTTL(),
		cfg.GetRefreshTokenTTL(),
		auth.WithLogger(log.Logger),
	)
	if err != nil {
		return errors.Wrap(err, "building authentication service")
	}

	resolver, err := registration.NewResolver(
		registration.NewUserHandler(userRepo, verifier),
		registration.NewClientHandler(clientRepo, verifier),
	)
	if err != nil {
		return errors.Wrap(err, "building registration resolver")
	}

	httpServer := &http.Server{
		Addr:    cfg.GetPort(),
		Handler: server.New(cfg, authService, resolver),
	}

	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.GetLogLevel()))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
