package cmd

import (
	"fmt"
	"os"

	"github.com/smazurov/halshim/internal/lights"
	"github.com/smazurov/halshim/internal/logging"
	"github.com/smazurov/halshim/internal/sysfs"
	"github.com/spf13/cobra"
)

// CreateSetLightCmd creates the set-light command.
func CreateSetLightCmd() *cobra.Command {
	var color string
	var flash string
	var onMS, offMS int
	var root string
	var logJSON bool

	cmd := &cobra.Command{
		Use:   "set-light <light>",
		Short: "Apply one request to a light",
		Long: `Opens the named light (backlight, buttons, battery, notifications or attention) ` +
			`and applies a single request. Arbitration state lives only for this invocation, ` +
			`so the request is written as if no other indicator request were active.`,
		Args: cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			initCommandLogging(logJSON)
			logger := logging.GetLogger("lights").With("light", args[0])

			req, err := buildRequest(color, flash, onMS, offMS)
			if err != nil {
				logger.Error("Invalid request", "error", err)
				os.Exit(1)
			}

			writerOpts := []sysfs.Option{}
			if root != "" {
				writerOpts = append(writerOpts, sysfs.WithRoot(root))
			}
			writer := sysfs.NewWriter(logging.GetLogger("sysfs"), writerOpts...)
			module := lights.NewModule(lights.NewContext(writer, logger))

			if err := applyLight(module, args[0], req); err != nil {
				logger.Error("Failed to set light", "error", err, "errno", lights.Errno(err))
				os.Exit(1)
			}
			logger.Info("Light set", "color", fmt.Sprintf("%08x", req.Color), "flash", req.FlashMode.String())
		},
	}

	cmd.Flags().StringVar(&color, "color", "0", "ARGB color in hex, alpha is ignored")
	cmd.Flags().StringVar(&flash, "flash", "none", "Flash mode (none, timed, hardware)")
	cmd.Flags().IntVar(&onMS, "on-ms", 0, "Flash on duration in milliseconds")
	cmd.Flags().IntVar(&offMS, "off-ms", 0, "Flash off duration in milliseconds")
	cmd.Flags().StringVar(&root, "root", "", "Prefix for sysfs paths, for testing against a fake tree")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")

	return cmd
}

// applyLight opens name, applies req and closes the device before returning.
func applyLight(module *lights.Module, name string, req *lights.Request) error {
	dev, err := module.Open(name)
	if err != nil {
		return err
	}
	defer dev.Close()

	return dev.SetLight(req)
}

func buildRequest(color, flash string, onMS, offMS int) (*lights.Request, error) {
	c, err := lights.ParseColor(color)
	if err != nil {
		return nil, err
	}
	mode, err := lights.ParseFlashMode(flash)
	if err != nil {
		return nil, err
	}
	return &lights.Request{
		Color:      c,
		FlashMode:  mode,
		FlashOnMS:  onMS,
		FlashOffMS: offMS,
	}, nil
}

func initCommandLogging(json bool) {
	cfg := logging.Config{Level: "info", Format: "text"}
	if json {
		cfg.Format = "json"
	}
	logging.Initialize(cfg)
}
