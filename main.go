package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/halshim/cmd"
	"github.com/smazurov/halshim/internal/api"
	"github.com/smazurov/halshim/internal/config"
	"github.com/smazurov/halshim/internal/events"
	"github.com/smazurov/halshim/internal/lights"
	"github.com/smazurov/halshim/internal/logging"
	"github.com/smazurov/halshim/internal/metrics"
	"github.com/smazurov/halshim/internal/metrics/exporters"
	"github.com/smazurov/halshim/internal/sysfs"
	"github.com/smazurov/halshim/internal/systemd"
	"github.com/smazurov/halshim/internal/wlanmac"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"halshim.toml"`

	// Server settings
	Addr string `help:"Address to listen on" short:"a" default:"127.0.0.1:8095" toml:"server.addr" env:"SERVER_ADDR"`

	// Metrics settings
	MetricsEnabled bool `help:"Expose Prometheus metrics on /metrics" default:"true" toml:"metrics.enabled" env:"METRICS_ENABLED"`

	// Auth settings
	AuthUsername string `help:"Basic auth username, empty disables auth" default:"" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel   string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingLights  string `help:"Lights logging level" default:"info" toml:"logging.lights" env:"LOGGING_LIGHTS"`
	LoggingSysfs   string `help:"Sysfs writer logging level" default:"info" toml:"logging.sysfs" env:"LOGGING_SYSFS"`
	LoggingWLANMAC string `help:"WLAN MAC resolver logging level" default:"info" toml:"logging.wlanmac" env:"LOGGING_WLANMAC"`
	LoggingAPI     string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
}

func main() {
	var cli humacli.CLI
	cli = humacli.New(func(hooks humacli.Hooks, opts *Options) {
		if loadErr := config.LoadConfig(opts, cli.Root()); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"lights":  opts.LoggingLights,
				"sysfs":   opts.LoggingSysfs,
				"wlanmac": opts.LoggingWLANMAC,
				"api":     opts.LoggingAPI,
			},
		})

		logger := logging.GetLogger("main")

		// Create event bus for in-process event handling
		eventBus := events.New()
		observer := events.NewLightsObserver(eventBus)

		var unsubscribeMetrics func()
		var metricsHandler http.Handler
		if opts.MetricsEnabled {
			unsubscribeMetrics = metrics.Subscribe(eventBus)
			metricsHandler = exporters.HTTPHandler()
		}

		writer := sysfs.NewWriter(logging.GetLogger("sysfs"), sysfs.WithFailureFunc(observer.WriteFailed))
		lightsCtx := lights.NewContext(writer, logging.GetLogger("lights"), lights.WithObserver(observer))
		module := lights.NewModule(lightsCtx)

		resolver := wlanmac.NewResolver(logging.GetLogger("wlanmac"))

		server := api.NewServer(&api.Options{
			Addr:           opts.Addr,
			AuthUsername:   opts.AuthUsername,
			AuthPassword:   opts.AuthPassword,
			Module:         module,
			Resolver:       resolver,
			EventBus:       eventBus,
			MetricsHandler: metricsHandler,
		})

		// Log levels follow the config file without a restart
		watcher := config.NewConfigWatcher(opts.Config, func(path string) (logging.Config, error) {
			return config.LoadLoggingConfig(path), nil
		}, logger)
		watcher.OnReload(func(cfg logging.Config) {
			logger.Info("Reloading log levels", "level", cfg.Level)
			logging.SetLevels(cfg)
		})

		notifier := systemd.NewNotifier()

		hooks.OnStart(func() {
			if initErr := resolver.InitQMI(); initErr != nil {
				logger.Warn("Failed to initialize WLAN resolver", "error", initErr)
			}
			addr, resolveErr := resolver.Resolve()
			if resolveErr != nil {
				logger.Info("No factory WLAN address", "path", resolver.Path)
			}
			eventBus.Publish(events.NewMACResolvedEvent(addr, resolveErr))

			if watchErr := watcher.Start(); watchErr != nil {
				logger.Warn("Failed to watch config file", "path", opts.Config, "error", watchErr)
			}

			if _, notifyErr := notifier.Ready(); notifyErr != nil {
				logger.Warn("Failed to notify systemd", "error", notifyErr)
			}

			logger.Info("Starting HTTP server", "addr", opts.Addr)
			if startErr := server.Start(); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			_, _ = notifier.Stopping()

			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}
			if stopErr := watcher.Stop(); stopErr != nil {
				logger.Warn("Error stopping config watcher", "error", stopErr)
			}
			resolver.Deinit()
			if unsubscribeMetrics != nil {
				unsubscribeMetrics()
			}
		})
	})

	cli.Root().AddCommand(cmd.CreateSetLightCmd())
	cli.Root().AddCommand(cmd.CreateWLANMacCmd())
	cli.Root().AddCommand(cmd.VersionCmd)

	cli.Run()
}
