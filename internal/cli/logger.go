// internal/cli/logger.go
package cli

import (
	"io"

	"github.com/phuslu/log"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

func newLogger(cfg *core.Config, w io.Writer) *log.Logger {
	level := log.ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = log.DebugLevel
	}
	return &log.Logger{
		Level: level,
		Writer: &log.ConsoleWriter{
			Writer:         w,
			EndWithMessage: true,
		},
	}
}
