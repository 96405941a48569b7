// meta/meta.go
package meta

// SIGMA is the initial mutation strength of a one-plus-one pool.
const SIGMA = 1.0

// SIGMA_PROPORTION scales sigma up or down after every scaling interval.
const SIGMA_PROPORTION = 1.2

// SIGMA_SCALING_INTERVAL is the number of games between sigma adjustments.
const SIGMA_SCALING_INTERVAL = 10

// WIN_PROPORTION is the target share of games won by the challenger.
const WIN_PROPORTION = 0.2

// MUTATION_STDDEV is the default noise of an evolution pool.
const MUTATION_STDDEV = 0.1

// SEARCH_DEPTH is the default ply cutoff of MinMax players.
const SEARCH_DEPTH = 2
