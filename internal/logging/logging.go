package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"landrecords/internal/config"
)

// Setup configures the process-wide logrus logger from config.
// Unknown levels fall back to info; format "json" selects the JSON formatter.
func Setup(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
