package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/dongibot/core/bootstrap"
	corecmd "github.com/m3rciful/dongibot/core/cmd"
	"github.com/m3rciful/dongibot/internal/bot"
	appconfig "github.com/m3rciful/dongibot/internal/config"
	"github.com/m3rciful/dongibot/internal/repository"
	"github.com/m3rciful/dongibot/internal/service"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return appconfig.Load(path)
		},
		Bootstrap: bootstrapApp,
	})
	if err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}

func bootstrapApp(ctx context.Context, carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*appconfig.Config)
	if !ok {
		return nil, fmt.Errorf("unexpected config type %T", carrier)
	}

	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
		Seeders: []bootstrap.Seeder{
			bootstrap.SeederFunc(func(ctx context.Context, db *sqlx.DB) error {
				people := service.NewPeople(repository.NewPeople(db))
				return people.Seed(ctx, cfg.Bot.DefaultPeople)
			}),
		},
	})
	if err != nil {
		return nil, err
	}

	return bot.New(cfg, res.DB), nil
}
