package main

import (
	"fmt"
	"log"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/declara/declara/internal/i18n"
	"github.com/declara/declara/internal/index"
	"github.com/declara/declara/internal/webserver"
	"github.com/declara/declara/internal/webserver/infrastructure"
	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Error parsing configuration from environment variables: %s", err)
	}

	if cfg.HomeDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Error retrieving user home dir")
		}
		cfg.HomeDir = homeDir
	}
	if err := os.MkdirAll(fmt.Sprintf("%s/declara", cfg.HomeDir), os.ModePerm); err != nil {
		log.Fatalf("Couldn't create %s/declara, exiting", cfg.HomeDir)
	}

	// Sessions won't survive a restart with a generated secret, but the
	// app stays usable without any configuration.
	if len(cfg.JwtSecret) == 0 {
		cfg.JwtSecret = []byte(uuid.NewString())
	}

	run(cfg)
}

func run(cfg Config) {
	var sender webserver.Sender

	db := infrastructure.Connect(fmt.Sprintf("%s/declara/database.db", cfg.HomeDir))

	idx := openIndex(cfg.HomeDir)
	defer idx.Close()

	sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	printers, err := i18n.Printers(webserver.Translations())
	if err != nil {
		log.Fatal(err)
	}

	webserverConfig := webserver.Config{
		Version:           version,
		Secret:            cfg.JwtSecret,
		MinPasswordLength: cfg.MinPasswordLength,
		BaseURL:           cfg.BaseURL,
		SessionTimeout:    cfg.SessionTimeoutDuration(),
		InviteValidity:    cfg.InviteValidityDuration(),
	}

	controllers := webserver.SetupControllers(webserverConfig, db, idx, sender)
	app := webserver.New(webserverConfig, printers, controllers)

	fmt.Printf("Declara version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

func openIndex(homeDir string) *index.BleveIndexer {
	indexPath := fmt.Sprintf("%s/declara/index", homeDir)

	indexFile, err := bleve.Open(indexPath)
	if err == bleve.ErrorIndexPathDoesNotExist {
		log.Println("No index found, creating a new one")
		indexFile, err = bleve.New(indexPath, index.Mapping())
	}
	if err != nil {
		log.Fatal(err)
	}
	return index.NewBleve(indexFile)
}
