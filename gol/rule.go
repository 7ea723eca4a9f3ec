package gol

// Outcome is the category a cell falls into when a turn is evaluated.
type Outcome uint8

const (
	Unchanged Outcome = iota // Dead and stays dead
	Born
	Survived
	DiedOfLoneliness
	DiedOfOvercrowding
)

func (outcome Outcome) String() string {
	switch outcome {
	case Born:
		return "Born"
	case Survived:
		return "Survived"
	case DiedOfLoneliness:
		return "DiedOfLoneliness"
	case DiedOfOvercrowding:
		return "DiedOfOvercrowding"
	default:
		return "Unchanged"
	}
}

// Transition applies the rules of the game to one cell.
//
//	alive, fewer than 2 neighbours -> dies of loneliness
//	alive, 2 or 3 neighbours       -> survives
//	alive, more than 3 neighbours  -> dies of overcrowding
//	dead, exactly 3 neighbours     -> born
//	dead, otherwise                -> stays dead
func Transition(alive bool, neighbours int) (bool, Outcome) {
	if alive {
		switch {
		case neighbours < 2:
			return false, DiedOfLoneliness
		case neighbours <= 3:
			return true, Survived
		default:
			return false, DiedOfOvercrowding
		}
	}
	if neighbours == 3 {
		return true, Born
	}
	return false, Unchanged
}
