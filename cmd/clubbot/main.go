package main

import (
	"fmt"
	"log"

	corecmd "github.com/ridness/clubbot/core/cmd"
	"github.com/ridness/clubbot/internal/bot"
	appconfig "github.com/ridness/clubbot/internal/config"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return appconfig.Load(path)
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg, ok := carrier.(*appconfig.AppConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", carrier)
			}
			return bot.New(cfg)
		},
	})
	if err != nil {
		log.Fatalf("clubbot: %v", err)
	}
}
