package commands

import (
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// hclogAdapter adapts hclog.Logger to fortie.Logger.
type hclogAdapter struct {
	logger hclog.Logger
}

// newLogger returns a stderr logger; verbose lowers the level to debug.
func newLogger(verbose bool) fortie.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return &hclogAdapter{logger: hclog.New(&hclog.LoggerOptions{
		Name:   "fortie",
		Level:  level,
		Output: os.Stderr,
	})}
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

// flatten turns fields into hclog key/value pairs in key order.
func flatten(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]interface{}, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, key, fields[key])
	}

	return pairs
}
