// Command gridsearch solves grid and graph puzzles from input files.
//
// Every puzzle is a subcommand taking a single input path and printing one
// answer per line:
//
//	gridsearch heatloss input.txt
//	gridsearch --garden-steps 6 garden sample.txt
//
// "gridsearch list" prints the available puzzles and "gridsearch mcp" serves
// them as MCP tools over stdio. Parameters come from flags, GRIDSEARCH_*
// environment variables (a .env file is loaded when present) or a JSON file
// given with --params.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/gridsearch/game/config"
	"github.com/wricardo/gridsearch/game/service"
	"github.com/wricardo/gridsearch/transport/mcp"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "gridsearch"
)

var (
	ErrMissingPath    = errors.New("missing input path")
	ErrMissingCommand = errors.New("missing puzzle or command")
	ErrUnknownCommand = errors.New("unknown puzzle or command")
)

var log = logrus.New()

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file: %v", err)
		}
	} else {
		log.Debug("Loaded environment variables from .env file")
	}

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// intParams binds integer flags to the parameter they override
var intParams = []struct {
	flag  string
	env   string
	usage string
	set   func(p *config.Params, v int)
}{
	{"crucible-min", "GRIDSEARCH_CRUCIBLE_MIN", "minimum straight run of the standard crucible",
		func(p *config.Params, v int) { p.Crucible.Min = v }},
	{"crucible-max", "GRIDSEARCH_CRUCIBLE_MAX", "maximum straight run of the standard crucible",
		func(p *config.Params, v int) { p.Crucible.Max = v }},
	{"ultra-min", "GRIDSEARCH_ULTRA_MIN", "minimum straight run of the ultra crucible",
		func(p *config.Params, v int) { p.UltraCrucible.Min = v }},
	{"ultra-max", "GRIDSEARCH_ULTRA_MAX", "maximum straight run of the ultra crucible",
		func(p *config.Params, v int) { p.UltraCrucible.Max = v }},
	{"garden-steps", "GRIDSEARCH_GARDEN_STEPS", "exact number of steps walked in the garden",
		func(p *config.Params, v int) { p.GardenSteps = v }},
	{"expansion", "GRIDSEARCH_EXPANSION", "growth factor of empty rows and columns between galaxies",
		func(p *config.Params, v int) { p.ExpansionFactor = v }},
	{"unfold", "GRIDSEARCH_UNFOLD", "copies of each spring record when unfolding",
		func(p *config.Params, v int) { p.UnfoldCopies = v }},
	{"presses", "GRIDSEARCH_PRESSES", "button presses sent through the pulse network",
		func(p *config.Params, v int) { p.ButtonPresses = v }},
	{"cycles", "GRIDSEARCH_CYCLES", "spin cycles applied to the platform",
		func(p *config.Params, v int) { p.SpinCycles = v }},
}

func newApp(out io.Writer) *cli.Command {
	registry := service.DefaultRegistry()
	var puzzles service.PuzzleService

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "enable debug logging",
			Sources: cli.EnvVars("GRIDSEARCH_DEBUG"),
		},
		&cli.StringFlag{
			Name:    "params",
			Usage:   "JSON file with puzzle parameters (resolved against CONFIG_DIR)",
			Sources: cli.EnvVars("GRIDSEARCH_PARAMS"),
		},
	}
	for _, p := range intParams {
		flags = append(flags, &cli.IntFlag{
			Name:    p.flag,
			Usage:   p.usage,
			Sources: cli.EnvVars(p.env),
		})
	}

	commands := []*cli.Command{
		{
			Name:  "list",
			Usage: "list the available puzzles",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				infos, err := puzzles.ListPuzzles(ctx)
				if err != nil {
					return err
				}
				for _, info := range infos {
					fmt.Fprintf(out, "%-10s %s\n", info.Name, info.Description)
				}
				return nil
			},
		},
		{
			Name:  "mcp",
			Usage: "serve the puzzles as MCP tools over stdio",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				log.Infof("Starting %s v%s MCP stdio server", AppName, Version)
				return mcp.NewServer(puzzles).RunStdio()
			},
		},
	}
	for _, info := range registry.List() {
		commands = append(commands, puzzleCommand(info, &puzzles, out))
	}

	return &cli.Command{
		Name:     AppName,
		Usage:    "solve grid and graph puzzles with a shared search engine",
		Version:  Version,
		Flags:    flags,
		Commands: commands,
		Writer:   out,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if name := cmd.Args().First(); name != "" {
				return fmt.Errorf("%w: %q (see %s list)", ErrUnknownCommand, name, AppName)
			}
			return fmt.Errorf("%w: run %s --help for usage", ErrMissingCommand, AppName)
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}

			params, err := paramsFromFlags(cmd)
			if err != nil {
				return ctx, err
			}
			log.WithFields(logrus.Fields{
				"crucible": params.Crucible,
				"ultra":    params.UltraCrucible,
				"steps":    params.GardenSteps,
			}).Debug("parameters loaded")

			puzzles, err = service.NewPuzzleService(registry, params, log)
			return ctx, err
		},
	}
}

func puzzleCommand(info *service.PuzzleInfo, puzzles *service.PuzzleService, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      info.Name,
		Usage:     info.Description,
		ArgsUsage: "<input>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("%s: %w", info.Name, ErrMissingPath)
			}

			solution, err := (*puzzles).SolveFile(ctx, info.Name, path)
			if err != nil {
				return err
			}
			for _, answer := range solution.Answers {
				fmt.Fprintln(out, answer.Value)
			}
			return nil
		},
	}
}

// paramsFromFlags starts from the defaults or the --params file and applies
// every integer flag that was set on the command line or through the
// environment.
func paramsFromFlags(cmd *cli.Command) (*config.Params, error) {
	params := config.DefaultParams()
	if file := cmd.String("params"); file != "" {
		loaded, err := config.LoadParams(file)
		if err != nil {
			return nil, err
		}
		params = loaded
	}

	for _, p := range intParams {
		if cmd.IsSet(p.flag) {
			p.set(params, int(cmd.Int(p.flag)))
		}
	}

	if err := config.ValidateParams(params); err != nil {
		return nil, err
	}
	return params, nil
}
