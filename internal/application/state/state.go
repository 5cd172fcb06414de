package state

// Phase represents the top-level mode governing each frame
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseIntro
	PhaseGameOver
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseIntro:
		return "Intro"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Resolve maps the session flags to the active phase. GameOver takes
// precedence over Intro when both are set.
func Resolve(gameOver, intro bool) Phase {
	switch {
	case gameOver:
		return PhaseGameOver
	case intro:
		return PhaseIntro
	default:
		return PhasePlaying
	}
}
