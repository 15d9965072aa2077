// Package config resolves the process-wide tuning knobs for a
// basisfact engine: the refactorization threshold, the near-zero
// tolerance, and the logging toggle. Resolution layers compiled-in
// defaults, an optional config file, and a BASISFACT_-prefixed
// environment triad, the same way the pack's peer-configuration surfaces
// layer viper sources. internal/engine never imports this package -
// it only ever sees the resolved engine.Config value.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/simplexcore/basisfact/internal/engine"
)

const envPrefix = "BASISFACT"

// Load resolves an engine.Config from defaults, the environment, and
// (when non-empty) a config file at path. An empty path reads no config
// file; a non-empty path that cannot be read is an error. Environment
// variables take precedence over values from the config file.
func Load(path string) (engine.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("refactor_threshold", engine.DefaultRefactorThreshold)
	v.SetDefault("tolerance", engine.DefaultTolerance)
	v.SetDefault("logging", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return engine.Config{}, err
		}
	}

	return engine.Config{
		RefactorThreshold: v.GetInt("refactor_threshold"),
		Tolerance:         v.GetFloat64("tolerance"),
		LoggingEnabled:    v.GetBool("logging"),
	}, nil
}
