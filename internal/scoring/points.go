package scoring

// Scorer computes a goalkeeper's points from wins, draws, saves, goals and
// infractions, in that order
type Scorer func(wins, draws, saves, goals, infractions float64) float64

// Weights is a linear points table
type Weights struct {
	Win        float64
	Draw       float64
	Save       float64
	Goal       float64
	Infraction float64
}

// DefaultWeights returns the league's standard points table
func DefaultWeights() Weights {
	return Weights{
		Win:        3,
		Draw:       1,
		Save:       1,
		Goal:       2,
		Infraction: -1,
	}
}

// Scorer returns a Scorer applying w
func (w Weights) Scorer() Scorer {
	return func(wins, draws, saves, goals, infractions float64) float64 {
		return wins*w.Win +
			draws*w.Draw +
			saves*w.Save +
			goals*w.Goal +
			infractions*w.Infraction
	}
}

// Sum adds every stat with weight 1
func Sum(wins, draws, saves, goals, infractions float64) float64 {
	return wins + draws + saves + goals + infractions
}
