// Package session holds the shared state bridge between the core loop
// and the collaborator entity logic. The core reads the flags each tick;
// entities write them.
package session

// DefaultLives is the lives count a fresh session starts with.
const DefaultLives = 3

// State is the per-session shared state. A single instance is passed by
// reference to the scene and to every entity that mutates it.
type State struct {
	Lives int
	Score int

	Intro      bool
	GameOver   bool
	WonGame    bool
	DisplayGem bool

	startLives int
}

// New creates a session with the given starting lives. The intro flag is
// set so the first frame shows the instructions overlay.
func New(startLives int) *State {
	if startLives <= 0 {
		startLives = DefaultLives
	}
	return &State{
		Lives:      startLives,
		Intro:      true,
		startLives: startLives,
	}
}

// Reset restores the session to its defaults after a game over.
// The intro flag is untouched: a reset resumes play, not the intro.
func (s *State) Reset() {
	s.Lives = s.startLives
	s.Score = 0
	s.GameOver = false
	s.WonGame = false
	s.DisplayGem = false
}
