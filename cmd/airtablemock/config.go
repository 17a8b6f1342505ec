package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bayesimpact/airtablemock"
)

func init() {
	// Bind command-line flags
	pflag.String("config", "", "Path to the configuration file")
	pflag.String("api-endpoint", "", "URL prefix embedded in emulated error messages")
	pflag.String("log-level", "", "Log level of the mock (debug, info, warn, error)")
	pflag.Int64("random-seed", 0, "Seed for generated record IDs; 0 keeps them random")

	f := pflag.CommandLine
	normalizeFunc := f.GetNormalizeFunc()
	f.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})
}

func LoadConfig() error {
	// Set default values
	viper.SetDefault("api_endpoint", airtablemock.DefaultAPIEndpoint)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Parse command-line flags
	pflag.Parse()

	// Bind command-line flags to Viper
	viper.BindPFlags(pflag.CommandLine)

	// Bind environment variables
	viper.SetEnvPrefix("AIRTABLEMOCK")
	viper.AutomaticEnv()

	// Read configuration file if specified
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("airtablemock.conf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc")
	}

	// stderr keeps stdout clean for --export output
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Using defaults and command line/environment options\n     (%v)\n", err)
	}

	// Unmarshal configuration into struct
	var cfg airtablemock.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	airtablemock.Configure(cfg)

	return nil
}
