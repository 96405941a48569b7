package metrics

import "aitournament/engine"

type Summary struct {
	Name  string
	Pool  bool
	Games int
	Mean  float64
	Best  float64
}

// Summarize reduces run results to one line per standalone player and pool.
// Pool lines average over every seat the pool had.
func Summarize(results *engine.RunResults) []Summary {
	var out []Summary
	for _, pr := range results.Players {
		out = append(out, summarize(pr.Player.Name(), false, len(pr.Results), pr.Results))
	}
	for _, pr := range results.Pools {
		var all []float64
		for _, g := range pr.Games {
			all = append(all, g...)
		}
		out = append(out, summarize(pr.Pool.Name(), true, len(pr.Games), all))
	}
	return out
}

func summarize(name string, pool bool, games int, values []float64) Summary {
	s := Summary{Name: name, Pool: pool, Games: games}
	if len(values) == 0 {
		return s
	}
	sum := 0.0
	s.Best = values[0]
	for _, v := range values {
		sum += v
		if v > s.Best {
			s.Best = v
		}
	}
	s.Mean = sum / float64(len(values))
	return s
}
