package audio

import (
	"math"
	"sync"
)

// Backend renders clips. Play replaces whatever the channel was playing.
type Backend interface {
	Play(channel int, clip Clip, volume float64)
	SetVolume(channel int, volume float64)
	Stop(channel int)
}

type channelState struct {
	volume  float64
	allowed bool
	playing string
}

// Manager keeps the clip registry and per-channel volume and permission,
// and forwards playback to a Backend. It implements Sink.
type Manager struct {
	mu       sync.Mutex
	clips    map[string]Clip
	music    map[string]Clip
	channels map[int]*channelState
	backend  Backend
}

// NewManager creates a manager with every channel at full volume and allowed.
// A nil backend keeps the bookkeeping without producing sound.
func NewManager(backend Backend) *Manager {
	m := &Manager{
		clips:    make(map[string]Clip),
		music:    make(map[string]Clip),
		channels: make(map[int]*channelState),
		backend:  backend,
	}
	for _, ch := range []int{Channel1, Channel2, ChannelMusic} {
		m.channels[ch] = &channelState{volume: 1, allowed: true}
	}
	return m
}

// AddClip registers a cue. The first registration of a name wins.
func (m *Manager) AddClip(c Clip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clips[c.Name]; !ok {
		m.clips[c.Name] = c
	}
}

// AddMusic registers a music track. The first registration of a name wins.
func (m *Manager) AddMusic(c Clip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.music[c.Name]; !ok {
		m.music[c.Name] = c
	}
}

// PlayCue implements Sink. Unknown names, unknown channels and disallowed
// channels are ignored.
func (m *Manager) PlayCue(name string, channel int) {
	if channel == ChannelMusic {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	clip, ok := m.clips[name]
	if !ok {
		return
	}
	m.play(channel, clip)
}

// PlayMusic implements Sink.
func (m *Manager) PlayMusic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clip, ok := m.music[name]
	if !ok {
		return
	}
	m.play(ChannelMusic, clip)
}

func (m *Manager) play(channel int, clip Clip) {
	st, ok := m.channels[channel]
	if !ok || !st.allowed {
		return
	}
	st.playing = clip.Name
	if m.backend != nil {
		m.backend.Play(channel, clip, st.volume)
	}
}

// StopChannel stops playback on a channel.
func (m *Manager) StopChannel(channel int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.channels[channel]
	if !ok || st.playing == "" {
		return
	}
	st.playing = ""
	if m.backend != nil {
		m.backend.Stop(channel)
	}
}

// SetVolume sets a channel volume, clamped to [0, 1]. A playing channel is
// updated in place.
func (m *Manager) SetVolume(channel int, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.channels[channel]
	if !ok {
		return
	}
	st.volume = math.Max(0, math.Min(1, volume))
	if st.playing != "" && m.backend != nil {
		m.backend.SetVolume(channel, st.volume)
	}
}

// Volume returns a channel volume, or 0 for unknown channels.
func (m *Manager) Volume(channel int) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.channels[channel]; ok {
		return st.volume
	}
	return 0
}

// SetAllowed enables or mutes a channel. Muting stops current playback.
func (m *Manager) SetAllowed(channel int, allowed bool) {
	m.mu.Lock()
	st, ok := m.channels[channel]
	if !ok {
		m.mu.Unlock()
		return
	}
	st.allowed = allowed
	m.mu.Unlock()

	if !allowed {
		m.StopChannel(channel)
	}
}

// Allowed reports whether a channel may play.
func (m *Manager) Allowed(channel int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.channels[channel]; ok {
		return st.allowed
	}
	return false
}

// Playing returns the name of the clip last started on a channel.
func (m *Manager) Playing(channel int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.channels[channel]; ok {
		return st.playing
	}
	return ""
}

// LinearToDb converts a linear volume to decibels. Silence maps to -80 dB.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return -80
	}
	return 20 * math.Log10(linear)
}
