package main

import (
	"aitournament/config"
	"aitournament/engine"
	"aitournament/game"
	"aitournament/metrics"

	"github.com/rs/zerolog/log"
)

func onStart(opts options, seed uint64, setup *config.Setup) {
	log.Info().Msgf("game: %v", setup.Game)
	log.Info().Msgf("epochs: %d, seed: %d", opts.epochs, seed)

	log.Info().Msgf("training runs per epoch: %d", opts.trainRuns)
	if opts.trainRuns > 0 {
		for _, p := range setup.TrainPlayers {
			log.Info().Msgf("trained player: %s", p.Name())
		}
		for _, p := range setup.TrainPools {
			log.Info().Msgf("trained player pool: %s", p.Name())
		}
	}

	log.Info().Msgf("testing runs per epoch: %d", opts.testRuns)
	if opts.testRuns > 0 {
		for _, p := range setup.TestPlayers {
			log.Info().Msgf("tested player: %s", p.Name())
		}
		for _, p := range setup.TestPools {
			log.Info().Msgf("tested player pool: %s", p.Name())
		}
	}
}

func onEpochStarted(epoch int) {
	log.Info().Msgf("epoch %d", epoch)
}

func onStep(g game.Game, roster *engine.Roster) {
	log.Debug().Msgf("round complete, current players %v", g.CurrentPlayers())
}

func onGameFinished(mode engine.Mode) func(int, game.Game, *engine.RunResults, *engine.Roster) {
	return func(iteration int, g game.Game, results *engine.RunResults, roster *engine.Roster) {
		for seat, p := range roster.Players {
			log.Info().Msgf("%s game %d: seat %d %s scored %v", mode, iteration, seat, p.Name(), g.Result(seat))
		}
	}
}

func onTrainRunFinished(results *engine.RunResults) {
	for _, s := range metrics.Summarize(results) {
		log.Debug().Msgf("train: %s\t%d games\tmean %.3f", s.Name, s.Games, s.Mean)
	}
}

func onTestRunFinished(results *engine.RunResults) {
	log.Info().Msg("test results:")
	for _, pr := range results.Players {
		log.Info().Msgf("%s\t%v", pr.Player.Name(), pr.Results)
	}
	for _, pr := range results.Pools {
		log.Info().Msgf("%s\t%v", pr.Pool.Name(), pr.Games)
	}
}

func onFinished(writer *metrics.Writer) {
	if writer != nil {
		log.Info().Msgf("results written to %s", writer.Dir())
	}
	log.Info().Msg("finished!")
}
