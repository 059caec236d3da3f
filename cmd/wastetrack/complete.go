package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"wastetrack/internal/reports"
	"wastetrack/pkg/types"

	"github.com/urfave/cli/v2"
)

var completeCommand = &cli.Command{
	Name:      "complete",
	Usage:     "Mark a report as collected",
	ArgsUsage: "<residentID> <reportID>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "weight",
			Aliases:  []string{"w"},
			Usage:    "Collected weight",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "photo",
			Usage: "Path to an after-pickup photo",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Confirm the submission",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.ShowSubcommandHelp(c)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(cfg)

		stores, err := openBackends(c.Context, cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer stores.close()

		photos, err := openPhotoStore(c.Context, cfg)
		if err != nil {
			return err
		}

		input := reports.CompleteReportInput{
			ResidentID: c.Args().Get(0),
			ReportID:   c.Args().Get(1),
			Weight:     c.String("weight"),
			Confirmed:  c.Bool("yes"),
		}

		if path := c.String("photo"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open photo: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat photo: %w", err)
			}

			input.Photo = &types.Photo{
				Body:        f,
				ContentType: mime.TypeByExtension(filepath.Ext(path)),
				FileName:    filepath.Base(path),
				Size:        info.Size(),
			}
		}

		completer := reports.NewCompleter(stores.reports, photos, logger)

		completion, err := completer.CompleteReport(c.Context, input)
		if err != nil {
			n := reports.NotificationFor(err)
			return fmt.Errorf("%s: %s: %w", n.Title, n.Message, err)
		}

		return json.NewEncoder(os.Stdout).Encode(completion)
	},
}
