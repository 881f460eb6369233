package viper

import (
	"strings"

	"github.com/atlasbank/atlasctl/internal/util"
	v "github.com/spf13/viper"
)

const envPrefix = "atlasctl"

// InitializeDefaultViper initializes a viper instance with default values and a
// path to a file. If the file does not exist, it will be created with the
// default values.
func InitializeDefaultViper(defaultValues map[string]any, path string) (*v.Viper, error) {
	err := util.InitDir(path, 0o755)
	if err != nil {
		return nil, err
	}

	rv := NewViper(path)

	if len(rv.AllSettings()) == 0 {
		// the 'loaded' viper is empty, so we assume it's uninitialized and
		// set the defaults and write them back to the file
		err = rv.MergeConfigMap(defaultValues)
		if err != nil {
			return nil, err
		}
		err = rv.WriteConfig()
		if err != nil {
			return nil, err
		}
	}

	return rv, nil
}

func NewViperE(path string) (*v.Viper, error) {
	rv := v.New()
	rv.SetConfigFile(path)
	ConfigureEnvVars(rv, envPrefix)
	err := rv.ReadInConfig()
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func NewViper(path string) *v.Viper {
	rv := v.New()
	rv.SetConfigFile(path)
	ConfigureEnvVars(rv, envPrefix)
	_ = rv.ReadInConfig()
	return rv
}

// ConfigureEnvVars wires automatic environment variable resolution so that
// `ATLASCTL_LOG_LEVEL` satisfies the `log-level` key and nested keys map
// through underscores.
func ConfigureEnvVars(rv *v.Viper, prefix string) {
	rv.AutomaticEnv()
	rv.SetEnvPrefix(prefix)
	rv.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}
