package gol

// StepStats counts how cells were categorised. The same type holds the
// statistics of a single turn and the running total of a whole run.
type StepStats struct {
	Born         int
	Survived     int
	Loneliness   int // Deaths from fewer than two neighbours
	Overcrowding int // Deaths from more than three neighbours
	Unchanged    int // Dead cells that stayed dead
}

// Record increments the counter matching outcome.
func (stats *StepStats) Record(outcome Outcome) {
	switch outcome {
	case Born:
		stats.Born++
	case Survived:
		stats.Survived++
	case DiedOfLoneliness:
		stats.Loneliness++
	case DiedOfOvercrowding:
		stats.Overcrowding++
	default:
		stats.Unchanged++
	}
}

// Add returns the field-wise sum of both records.
func (stats StepStats) Add(other StepStats) StepStats {
	return StepStats{
		Born:         stats.Born + other.Born,
		Survived:     stats.Survived + other.Survived,
		Loneliness:   stats.Loneliness + other.Loneliness,
		Overcrowding: stats.Overcrowding + other.Overcrowding,
		Unchanged:    stats.Unchanged + other.Unchanged,
	}
}

// Total is the number of cells evaluated, size*size for a single turn.
func (stats StepStats) Total() int {
	return stats.Born + stats.Survived + stats.Loneliness + stats.Overcrowding + stats.Unchanged
}

// Alive is the number of cells alive after the turn these statistics describe.
func (stats StepStats) Alive() int {
	return stats.Born + stats.Survived
}
