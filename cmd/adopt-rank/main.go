package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func main() {
	app := &cli.App{
		Name:  "adopt-rank",
		Usage: "Utility for matching adopters with adoption centers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Usage: "specify the input dataset (.json, .yaml), the sample dataset when omitted",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "specify the random seed of sluggish adopters",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"vv"},
				Usage:   "log every scored pair",
			},
		},
		Before: func(ctx *cli.Context) error {
			config := zap.NewProductionConfig()
			if ctx.Bool("verbose") {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		After: func(ctx *cli.Context) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			rankCmd,
			advertiseCmd,
			reportCmd,
			listCmd,
			sampleCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var rankCmd = &cli.Command{
	Name:    "rank",
	Usage:   "Rank the adoption centers for each adopter",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "adopter",
			Usage: "only rank for the named adopter",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doRank(ctx.Context, options(ctx), ctx.String("adopter"))
	},
}

var advertiseCmd = &cli.Command{
	Name:    "advertise",
	Usage:   "Pick the top adopters each adoption center should advertise to",
	Aliases: []string{"a"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "center",
			Usage: "only advertise for the named center",
		},
		&cli.IntFlag{
			Name:  "top",
			Value: 4,
			Usage: "specify how many adopters to pick per center",
		},
		&cli.StringFlag{
			Name:  "adopt",
			Usage: "adopt one pet of this species from --center first",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doAdvertise(ctx.Context, options(ctx),
			ctx.String("center"), ctx.Int("top"), ctx.String("adopt"))
	},
}

var reportCmd = &cli.Command{
	Name:  "report",
	Usage: "Write both rankings as a JSON report",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output report.json",
		},
		&cli.IntFlag{
			Name:  "top",
			Value: 4,
			Usage: "specify how many adopters to pick per center",
		},
	},
	Action: func(ctx *cli.Context) error {
		top := ctx.Int("top")
		if top < 0 {
			return errors.New("invalid top")
		}
		return doReport(ctx.Context, options(ctx), ctx.String("out"), top)
	},
}

var listCmd = &cli.Command{
	Name:    "list",
	Usage:   "List the adoption centers and adopters of the dataset",
	Aliases: []string{"ls"},
	Action: func(ctx *cli.Context) error {
		return doList(ctx.Context, options(ctx))
	},
}

var sampleCmd = &cli.Command{
	Name:  "sample",
	Usage: "Write the sample dataset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output file (.json, .yaml)",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doSample(ctx.Context, ctx.String("out"))
	},
}

type runOptions struct {
	dataFile string
	seed     *int64
	verbose  bool
}

func options(ctx *cli.Context) runOptions {
	opts := runOptions{
		dataFile: ctx.String("data"),
		verbose:  ctx.Bool("verbose"),
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		opts.seed = &seed
	}
	return opts
}
