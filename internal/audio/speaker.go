package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	amplitude  = 0.2
)

type voice struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
}

// Speaker is a Backend that plays clips on the system audio device through
// a single beep mixer. Each channel holds at most one voice.
type Speaker struct {
	mixer  *beep.Mixer
	voices map[int]*voice
}

// NewSpeaker initializes the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		voices: make(map[int]*voice),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play implements Backend.
func (s *Speaker) Play(channel int, clip Clip, volume float64) {
	vol := &effects.Volume{Streamer: squareClip(clip), Base: 10}
	applyVolume(vol, volume)
	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Lock()
	defer speaker.Unlock()
	if old, ok := s.voices[channel]; ok {
		old.ctrl.Streamer = nil
	}
	s.voices[channel] = &voice{ctrl: ctrl, vol: vol}
	s.mixer.Add(ctrl)
}

// SetVolume implements Backend.
func (s *Speaker) SetVolume(channel int, volume float64) {
	speaker.Lock()
	defer speaker.Unlock()
	if v, ok := s.voices[channel]; ok {
		applyVolume(v.vol, volume)
	}
}

// Stop implements Backend.
func (s *Speaker) Stop(channel int) {
	speaker.Lock()
	defer speaker.Unlock()
	if v, ok := s.voices[channel]; ok {
		v.ctrl.Streamer = nil
		delete(s.voices, channel)
	}
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	s.voices = make(map[int]*voice)
	speaker.Unlock()
	speaker.Close()
}

// applyVolume maps a linear volume onto the base-10 exponent of effects.Volume.
func applyVolume(v *effects.Volume, linear float64) {
	v.Silent = linear <= 0
	v.Volume = LinearToDb(linear) / 20
}

// squareClip synthesizes a clip as a square wave, looping when requested.
func squareClip(c Clip) beep.Streamer {
	idx := 0
	left := 0
	phase := 0.0
	start := func() bool {
		for idx < len(c.Notes) {
			left = sampleRate.N(c.Notes[idx].Dur)
			if left > 0 {
				return true
			}
			idx++
		}
		return false
	}
	if !start() {
		return beep.Silence(0)
	}

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if left <= 0 {
				idx++
				if !start() {
					if !c.Loop {
						return i, i > 0
					}
					idx = 0
					start()
				}
			}

			note := c.Notes[idx]
			val := 0.0
			if note.Freq > 0 {
				val = amplitude
				if math.Mod(phase, 1.0) > 0.5 {
					val = -val
				}
				phase += note.Freq / float64(sampleRate)
			}
			samples[i][0] = val
			samples[i][1] = val
			left--
		}
		return len(samples), true
	})
}
