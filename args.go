package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")

	// sweeper config
	pflag.Duration("sweep-interval", 30*time.Second, "")

	// demo data
	pflag.Bool("seed-demo-data", true, "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("AUCTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL:     viper.GetString("server-url"),
		SweepInterval: viper.GetDuration("sweep-interval"),
		SeedDemoData:  viper.GetBool("seed-demo-data"),
	}
}

type Args struct {
	ServerURL     string
	SweepInterval time.Duration
	SeedDemoData  bool
}

func (args Args) Validate() bool {
	return args.ServerURL != "" && args.SweepInterval > 0
}
