package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wastetrack",
		Usage: "Field worker back end for municipal waste reports",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
			pendingCommand,
			completeCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
