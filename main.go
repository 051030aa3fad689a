package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"riichi/app"
	"riichi/common/config"
	"riichi/common/log"
	"riichi/common/metrics"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "riichi",
	Short: "riichi hand analysis service",
	Long:  `Serves shanten and improving-tile analysis for riichi mahjong hands.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Load(configFile); err != nil {
			log.Fatal("loading configuration: %v", err)
		}
		cfg := config.Get()
		log.Init(cfg.Name, cfg.LogConf.Level)
		log.Info("configuration loaded: %+v", cfg)

		go func() {
			log.Info("statsviz on http://localhost:%d/debug/statsviz/", cfg.MetricPort)
			if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)); err != nil {
				log.Error("metrics server: %v", err)
			}
		}()

		if err := app.Run(context.Background()); err != nil {
			log.Error("analyzer exited: %v", err)
			os.Exit(-1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "application.yml", "configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed: %v", err)
		os.Exit(1)
	}
}
