package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"aitournament/config"
	"aitournament/engine"
	"aitournament/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type options struct {
	config    string
	epochs    int
	testRuns  int
	trainRuns int
	seed      uint64
	output    string
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "config.yaml", "Configuration file")
	flag.IntVar(&opts.epochs, "epochs", 1, "Number of train + test runs")
	flag.IntVar(&opts.testRuns, "test-runs", 1, "Number of test runs per epoch")
	flag.IntVar(&opts.trainRuns, "train-runs", 0, "Number of train runs per epoch")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 for a time based seed")
	flag.StringVar(&opts.output, "out", "", "Directory for CSV results, overrides the configuration")
	debug := flag.Bool("debug", false, "Log every game")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("tournament aborted")
	}
}

func run(opts options) error {
	c, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.trainRuns > 0 && c.Train == nil {
		return fmt.Errorf("no players or pools defined for train run")
	}
	if opts.testRuns > 0 && c.Test == nil {
		return fmt.Errorf("no players or pools defined for test run")
	}
	if opts.output != "" {
		c.Events.Output = opts.output
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	setup, err := c.Build(rng)
	if err != nil {
		return err
	}
	e, err := engine.New(setup.Game)
	if err != nil {
		return err
	}
	if c.Train != nil {
		if err := e.SetTrainingRoster(setup.TrainPlayers, setup.TrainPools); err != nil {
			return fmt.Errorf("train roster: %w", err)
		}
	}
	if c.Test != nil {
		if err := e.SetTestingRoster(setup.TestPlayers, setup.TestPools); err != nil {
			return fmt.Errorf("test roster: %w", err)
		}
	}

	var writer *metrics.Writer
	if c.Events.Output != "" {
		writer, err = metrics.NewWriter(c.Events.Output)
		if err != nil {
			return err
		}
	}

	onStart(opts, seed, setup)
	for epoch := 1; epoch <= opts.epochs; epoch++ {
		onEpochStarted(epoch)

		if opts.trainRuns > 0 {
			if err := runEpoch(e, engine.Train, epoch, opts.trainRuns, c.Events, writer); err != nil {
				return err
			}
		}
		if opts.testRuns > 0 {
			if err := runEpoch(e, engine.Test, epoch, opts.testRuns, c.Events, writer); err != nil {
				return err
			}
		}
	}
	onFinished(writer)
	return nil
}

func runEpoch(e *engine.Engine, mode engine.Mode, epoch, iterations int, events config.EventsConfig, writer *metrics.Writer) error {
	hooks := engine.Hooks{}
	if events.LogRounds {
		hooks.OnRoundComplete = onStep
	}
	if events.LogGames {
		hooks.OnGameComplete = onGameFinished(mode)
	}
	if mode == engine.Test {
		hooks.OnRunComplete = onTestRunFinished
	}

	collector := metrics.NewCollector(mode)
	results, err := e.Run(iterations, mode, collector.Hooks(hooks))
	if err != nil {
		return err
	}
	if mode == engine.Train {
		onTrainRunFinished(results)
	}

	if writer == nil {
		return nil
	}
	name := fmt.Sprintf("epoch%d_%s", epoch, mode)
	if err := writer.WriteGameRecords(name, collector.Games()); err != nil {
		return err
	}
	return writer.WriteSummaries(name, metrics.Summarize(results))
}
