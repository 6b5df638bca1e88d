package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/application/aggregation"
	"github.com/gridpulse/power-monitor/internal/pkg/application/alerts"
	"github.com/gridpulse/power-monitor/internal/pkg/application/notifications"
	"github.com/gridpulse/power-monitor/internal/pkg/application/reports"
	"github.com/gridpulse/power-monitor/internal/pkg/application/scheduler"
	"github.com/gridpulse/power-monitor/internal/pkg/application/telemetry"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/router"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/internal/pkg/presentation/api"
	"github.com/gridpulse/power-monitor/internal/pkg/presentation/render"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "power-monitor"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	smtpHost
	smtpPort
	smtpUser
	smtpPassword
	smtpFrom

	twilioAccountSID
	twilioAuthToken
	twilioFrom
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		configurationFile: "/opt/power-monitor/config/alerts.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "powermonitor",
		dbSSLMode:  "disable",

		smtpHost:     "",
		smtpPort:     "587",
		smtpUser:     "",
		smtpPassword: "",
		smtpFrom:     "",

		twilioAccountSID: "",
		twilioAuthToken:  "",
		twilioFrom:       "",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux, err := initialize(ctx, flags)
	exitIf(err, logger, "failed to initialize")

	apiPort := ":" + flags[servicePort]
	logger.Info("starting to listen for incoming connections", "port", apiPort)

	server := &http.Server{Addr: flags[listenAddress] + apiPort, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		exitIf(err, logger, "failed to start request router")
	}
}

func initialize(ctx context.Context, flags flagMap) (http.Handler, error) {
	log := logging.GetFromContext(ctx)

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	if err != nil {
		return nil, err
	}

	err = s.Initialize(ctx)
	if err != nil {
		return nil, err
	}

	err = storage.SeedTariffs(ctx, s, defaultTariffs())
	if err != nil {
		return nil, err
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, log))
	if err != nil {
		return nil, err
	}

	alertCfg, err := alerts.LoadConfiguration(flags[configurationFile])
	if err != nil {
		log.Warn("could not load alert configuration, using defaults", "file", flags[configurationFile], "err", err.Error())
		alertCfg = alerts.DefaultConfiguration()
	}

	renderer := render.New()
	dispatcher := notifications.New(s, messenger, renderer, newEmailTransport(ctx, flags), newMessageTransport(ctx, flags))

	telemetrySvc := telemetry.New(s, messenger)
	alertSvc := alerts.New(s, messenger, alerts.NewEvaluator(alertCfg))
	aggregationSvc := aggregation.New(s)
	reportSvc := reports.New(s, dispatcher, messenger)

	messenger.Start()

	err = alertSvc.RegisterTopicMessageHandler(ctx)
	if err != nil {
		return nil, err
	}

	err = dispatcher.RegisterTopicMessageHandler(ctx)
	if err != nil {
		return nil, err
	}

	scheduler.New(aggregationSvc, reportSvc, s).Start(ctx)

	mux, err := api.RegisterHandlers(ctx, router.New(serviceName),
		telemetrySvc, alertSvc, aggregationSvc, reportSvc, dispatcher, s, renderer)
	if err != nil {
		return nil, err
	}

	return mux, nil
}

// newEmailTransport picks SMTP when credentials are configured and the
// recording noop transport otherwise.
func newEmailTransport(ctx context.Context, flags flagMap) notifications.EmailTransport {
	log := logging.GetFromContext(ctx)

	if flags[smtpHost] == "" {
		log.Info("no smtp host configured, email deliveries will be mocked")
		return notifications.NewNoopEmailTransport()
	}

	port, err := strconv.Atoi(flags[smtpPort])
	if err != nil {
		log.Warn("invalid smtp port, email deliveries will be mocked", "port", flags[smtpPort])
		return notifications.NewNoopEmailTransport()
	}

	return notifications.NewSMTPTransport(flags[smtpHost], port, flags[smtpUser], flags[smtpPassword], flags[smtpFrom])
}

func newMessageTransport(ctx context.Context, flags flagMap) notifications.MessageTransport {
	log := logging.GetFromContext(ctx)

	if flags[twilioAccountSID] == "" || flags[twilioAuthToken] == "" {
		log.Info("no twilio credentials configured, whatsapp deliveries will be mocked")
		return notifications.NewNoopMessageTransport()
	}

	return notifications.NewTwilioTransport(flags[twilioAccountSID], flags[twilioAuthToken], flags[twilioFrom])
}

func defaultTariffs() []types.Tariff {
	return []types.Tariff{
		{
			ID:         "default",
			Name:       "Standard Rate",
			RatePerKwh: 225.0,
			Currency:   "NGN",
			Active:     true,
		},
	}
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[smtpHost] = envOrDef(ctx, "SMTP_HOST", flags[smtpHost])
	flags[smtpPort] = envOrDef(ctx, "SMTP_PORT", flags[smtpPort])
	flags[smtpUser] = envOrDef(ctx, "SMTP_USER", flags[smtpUser])
	flags[smtpPassword] = envOrDef(ctx, "SMTP_PASSWORD", flags[smtpPassword])
	flags[smtpFrom] = envOrDef(ctx, "SMTP_FROM", flags[smtpFrom])

	flags[twilioAccountSID] = envOrDef(ctx, "TWILIO_ACCOUNT_SID", flags[twilioAccountSID])
	flags[twilioAuthToken] = envOrDef(ctx, "TWILIO_AUTH_TOKEN", flags[twilioAuthToken])
	flags[twilioFrom] = envOrDef(ctx, "TWILIO_WHATSAPP_FROM", flags[twilioFrom])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "alert threshold configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
