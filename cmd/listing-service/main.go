package main

import (
	"fmt"
	"log"
	"os"

	"listing-service/internal"
	"listing-service/internal/core/domain"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCLI() *cli.App {
	envFileFlag := &cli.StringFlag{
		Name:    "env-file",
		Aliases: []string{"e"},
		Usage:   "Path to a .env file. Defaults to ./.env when present.",
	}

	serveCommand := &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API server.",
		Flags:  []cli.Flag{envFileFlag},
		Action: serve,
	}

	return &cli.App{
		Name:  "listing-service",
		Usage: "Real-estate listing showcase API.",
		Flags: []cli.Flag{envFileFlag},
		// Без подкоманды запускается сервер
		Action: serve,
		Commands: []*cli.Command{
			serveCommand,
			{
				Name:      "parse-floor",
				Usage:     "Parse and validate a floor descriptor (5/15, 10-12/20, 1, 8+, 1-3).",
				ArgsUsage: "<input>",
				Action:    parseFloor,
			},
			{
				Name:  "convert-area",
				Usage: "Convert an area between square meters and pyeong.",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "value", Aliases: []string{"v"}, Required: true, Usage: "Area value."},
					&cli.StringFlag{Name: "from", Value: domain.AreaUnitSqm, Usage: "Source unit: sqm or pyeong."},
					&cli.StringFlag{Name: "to", Value: domain.AreaUnitPyeong, Usage: "Target unit: sqm or pyeong."},
				},
				Action: convertArea,
			},
			{
				Name:   "seed",
				Usage:  "Create the PostgreSQL schema and load the sample listings.",
				Flags:  []cli.Flag{envFileFlag},
				Action: seed,
			},
		},
	}
}

func serve(c *cli.Context) error {
	application, err := internal.NewApp(c.String("env-file"))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}

func parseFloor(c *cli.Context) error {
	input := c.Args().First()
	descriptor, err := domain.ParseFloor(input)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if descriptor == nil {
		fmt.Fprintln(c.App.Writer, domain.FloorMsgValid)
		return nil
	}

	fmt.Fprintf(c.App.Writer, "%s\ntype: %s\ncurrent: %d-%d\n", descriptor.Description, descriptor.Kind, descriptor.Current.Min, descriptor.Current.Max)
	if descriptor.Total != nil {
		fmt.Fprintf(c.App.Writer, "total: %d\n", *descriptor.Total)
	}
	return nil
}

func convertArea(c *cli.Context) error {
	to := c.String("to")
	result, err := domain.ConvertArea(c.Float64("value"), c.String("from"), to)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	unitLabel := "㎡"
	if to == domain.AreaUnitPyeong {
		unitLabel = "평"
	}
	fmt.Fprintf(c.App.Writer, "%g%s\n", result, unitLabel)
	return nil
}

func seed(c *cli.Context) error {
	rows, err := internal.SeedListings(c.Context, c.String("env-file"))
	if err != nil {
		return fmt.Errorf("failed to seed listings: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "seeded %d listings\n", rows)
	return nil
}
