package session

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything the client needs outside of user actions: where
// the backend lives, where local state goes, and the default city.
type Config interface {
	APIURL() string
	BasePath() string
	DefaultCity() string
}

// LoadConfig reads a .beethoven config file and BEETHOVEN_* environment
// overrides. Missing config files are fine; defaults apply.
func LoadConfig() (Config, error) {
	viper.SetDefault("api_url", "http://localhost:8000/api")
	viper.SetDefault("path", "~/.beethoven.db")
	viper.SetDefault("city", "astana")
	viper.SetConfigName(".beethoven") // .yaml is implicit
	viper.SetEnvPrefix("BEETHOVEN")
	viper.AutomaticEnv()

	if override := os.Getenv("BEETHOVEN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		URL:  viper.GetString("api_url"),
		Path: path,
		City: viper.GetString("city"),
	}, nil
}

type fileConfig struct {
	URL  string `json:"api_url"`
	Path string `json:"path"`
	City string `json:"city"`
}

func (f *fileConfig) APIURL() string      { return f.URL }
func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) DefaultCity() string { return f.City }
