package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/paddle-arcade/internal/audio"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/logging"
	"github.com/vovakirdan/paddle-arcade/internal/platform/tui"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

// app holds the services shared by the interactive commands.
type app struct {
	store   *storage.Store
	logger  *log.Logger
	audio   audio.Sink
	closers []io.Closer
	speaker *audio.Speaker
}

// newApp opens the store, the logger and the audio output. Interactive
// commands own the terminal, so without a log file they log nowhere;
// pass stderr as fallback for daemons. Store and audio failures degrade
// to running without them.
func newApp(fallback io.Writer, withAudio bool) (*app, error) {
	opts := logging.DefaultOptions()
	opts.Level = viper.GetString("log-level")
	opts.File = viper.GetString("log-file")
	opts.Fallback = fallback
	opts.Timestamp = true

	logger, closer, err := logging.New(opts)
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger, audio: audio.Discard, closers: []io.Closer{closer}}

	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		a.store = store
		a.closers = append(a.closers, store)
	}

	if withAudio && !viper.GetBool("mute") {
		a.audio = a.openAudio()
	}
	return a, nil
}

// openAudio builds the audio manager with the persisted channel settings.
func (a *app) openAudio() audio.Sink {
	sp, err := audio.NewSpeaker()
	if err != nil {
		a.logger.Warn("audio disabled", "err", err)
		return audio.Discard
	}
	a.speaker = sp

	m := audio.NewManager(sp)
	audio.RegisterDefaults(m)

	settings := storage.DefaultAudio()
	if a.store != nil {
		if loaded, err := a.store.LoadAudio(); err != nil {
			a.logger.Warn("could not load audio settings", "err", err)
		} else {
			settings = loaded
		}
	}
	for key, ch := range channelKeys {
		s := settings[key]
		m.SetVolume(ch, s.Volume)
		m.SetAllowed(ch, s.Allowed)
	}
	return m
}

// channelKeys maps settings keys to audio channels.
var channelKeys = map[string]int{
	storage.KeyChannel1:     audio.Channel1,
	storage.KeyChannel2:     audio.Channel2,
	storage.KeyChannelMusic: audio.ChannelMusic,
}

// Close releases everything newApp opened.
func (a *app) Close() {
	if a.speaker != nil {
		a.speaker.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
}

func (a *app) env() registry.Env {
	return registry.Env{Audio: a.audio, Logger: a.logger}
}

// options builds the TUI options for the current terminal.
func (a *app) options() tui.Options {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return tui.Options{
		Store: a.store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: viper.GetInt("fps"),
			Seed:     viper.GetInt64("seed"),
		},
		Player: viper.GetString("name"),
		Logger: a.logger,
		Audio:  a.audio,
	}
}
