// Package audio plays named sound cues and music on three channels.
// Games only see the Sink interface; the Speaker backend renders synthesized
// clips through beep.
package audio

// Channel numbers. Cues go to 1 or 2, music always uses ChannelMusic.
const (
	Channel1     = 1
	Channel2     = 2
	ChannelMusic = 3
)

// Cue names used by the games.
const (
	CueHit          = "hit"
	CueBlockHit     = "block_hit"
	CueBlockDestroy = "block_destroy"
	CueOutOfBounds  = "out_of_bounds"
	CueScore        = "score"
	CueButtonPress  = "button_press"
	CueMenuOpen     = "menu_open"
	CueMenuClose    = "menu_close"
	CueGameOver     = "game_over"
	TrackTheme      = "theme"
)

// Sink is a fire-and-forget audio output.
type Sink interface {
	PlayCue(name string, channel int)
	PlayMusic(name string)
}

// Discard is a Sink that plays nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) PlayCue(string, int) {}
func (discard) PlayMusic(string)    {}

// Recorder is a Sink that remembers what was requested. Useful in tests.
type Recorder struct {
	Cues  []string
	Music []string
}

// PlayCue records the cue name.
func (r *Recorder) PlayCue(name string, _ int) {
	r.Cues = append(r.Cues, name)
}

// PlayMusic records the track name.
func (r *Recorder) PlayMusic(name string) {
	r.Music = append(r.Music, name)
}

// Count returns how many times the cue was requested.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Cues {
		if c == name {
			n++
		}
	}
	return n
}
