package audio

import "time"

// Note is one square-wave tone. Freq 0 is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Clip is a named sequence of notes.
type Clip struct {
	Name  string
	Notes []Note
	Loop  bool
}

// Duration returns the total length of one pass.
func (c Clip) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.Notes {
		d += n.Dur
	}
	return d
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// DefaultClips returns the built-in cue set.
func DefaultClips() []Clip {
	return []Clip{
		{Name: CueHit, Notes: []Note{{880, ms(40)}}},
		{Name: CueBlockHit, Notes: []Note{{660, ms(30)}, {990, ms(30)}}},
		{Name: CueBlockDestroy, Notes: []Note{{990, ms(40)}, {660, ms(40)}, {440, ms(60)}}},
		{Name: CueOutOfBounds, Notes: []Note{{330, ms(120)}, {220, ms(180)}}},
		{Name: CueScore, Notes: []Note{{660, ms(100)}, {440, ms(100)}, {330, ms(150)}}},
		{Name: CueButtonPress, Notes: []Note{{1200, ms(25)}}},
		{Name: CueMenuOpen, Notes: []Note{{523, ms(50)}, {784, ms(70)}}},
		{Name: CueMenuClose, Notes: []Note{{784, ms(50)}, {523, ms(70)}}},
		{Name: CueGameOver, Notes: []Note{{523, ms(150)}, {392, ms(150)}, {330, ms(150)}, {262, ms(400)}}},
	}
}

// DefaultMusic returns the built-in music tracks.
func DefaultMusic() []Clip {
	return []Clip{{
		Name: TrackTheme,
		Loop: true,
		Notes: []Note{
			{262, ms(200)}, {330, ms(200)}, {392, ms(200)}, {330, ms(200)},
			{294, ms(200)}, {349, ms(200)}, {440, ms(200)}, {0, ms(200)},
		},
	}}
}

// RegisterDefaults adds the built-in cues and music to m.
func RegisterDefaults(m *Manager) {
	for _, c := range DefaultClips() {
		m.AddClip(c)
	}
	for _, c := range DefaultMusic() {
		m.AddMusic(c)
	}
}
