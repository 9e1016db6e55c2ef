// Package logging provides structured logging with per-module log levels.
//
// Records go to stdout when something is attached to it and to the systemd
// journal when journald is reachable (both when both are). Journal entries
// carry SYSLOG_IDENTIFIER=halshim and one upper-case field per attribute.
//
// Initialize once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",
//		Format: "text",
//		Modules: map[string]string{
//			"lights": "debug",
//		},
//	})
//
// Then ask for a module logger:
//
//	logger := logging.GetLogger("lights")
//	logger.Debug("Balance correction", "delay", 403)
//
// SetLevels changes levels in place, which is what the config watcher uses
// on reload.
//
// Useful journal queries:
//
//	journalctl -t halshim MODULE=lights
//	journalctl -t halshim MODULE=sysfs -p err
package logging
