// internal/cli/root.go
package cli

import (
	"io"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/kvs-toolkit/kvstools/pkg/core"
)

// Version is reported by both tools
const Version = "0.1.0"

// options holds the global flags and the state derived from them
type options struct {
	cfgFile  string
	debug    bool
	logLevel string

	config *core.Config
	logger *log.Logger

	// set by flags to override config values
	overrides []func(*core.Config)
}

// addGlobalFlags registers the flags shared by both tools
func (o *options) addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default is ./"+core.DefaultConfigFile+")")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// stringOverride registers a flag that replaces a config value when set
func (o *options) stringOverride(cmd *cobra.Command, name, usage string, apply func(*core.Config, string)) {
	var value string
	cmd.PersistentFlags().StringVar(&value, name, "", usage)
	o.overrides = append(o.overrides, func(cfg *core.Config) {
		if cmd.PersistentFlags().Changed(name) {
			apply(cfg, value)
		}
	})
}

// initConfig loads the config file and applies flag overrides
func (o *options) initConfig(stderr io.Writer) error {
	cfg, err := core.LoadConfig(o.cfgFile)
	if err != nil {
		return err
	}

	for _, apply := range o.overrides {
		apply(cfg)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.debug {
		cfg.Debug = true
	}

	o.config = cfg
	o.logger = newLogger(cfg, stderr)
	return nil
}
