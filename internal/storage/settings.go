package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// Audio settings section and keys.
const (
	SectionAudio = "Audio"

	KeyChannel1     = "Channel1"
	KeyChannel2     = "Channel2"
	KeyChannelMusic = "ChannelMusic"
)

// ChannelSetting is the persisted state of one audio channel.
type ChannelSetting struct {
	Volume  float64
	Allowed bool
}

// DefaultAudio returns the channel defaults keyed like the Audio section.
func DefaultAudio() map[string]ChannelSetting {
	return map[string]ChannelSetting{
		KeyChannel1:     {Volume: 0.9, Allowed: true},
		KeyChannel2:     {Volume: 0.7, Allowed: true},
		KeyChannelMusic: {Volume: 1.0, Allowed: true},
	}
}

// Setting returns the raw value of section/key and whether it exists.
func (s *Store) Setting(section, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE section = ? AND key = ?",
		section, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query setting: %w", err)
	}
	return value, true, nil
}

// SetSetting stores value as text under section/key.
func (s *Store) SetSetting(section, key string, value any) error {
	text, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Errorf("storage: setting %s.%s: %w", section, key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO settings (section, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(section, key) DO UPDATE SET value = excluded.value`,
		section, key, text,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting: %w", err)
	}
	return nil
}

// Section returns every key/value pair of a section.
func (s *Store) Section(section string) (map[string]string, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM settings WHERE section = ?",
		section,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query section: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// LoadAudio reads the Audio section over the defaults. Volumes are stored
// as "<key>.volume" and allowed flags as "<key>.allowed"; undecodable values
// keep their default.
func (s *Store) LoadAudio() (map[string]ChannelSetting, error) {
	out := DefaultAudio()
	raw, err := s.Section(SectionAudio)
	if err != nil {
		return out, err
	}

	for key, def := range out {
		if v, ok := raw[key+".volume"]; ok {
			if f, err := cast.ToFloat64E(v); err == nil {
				def.Volume = f
			}
		}
		if v, ok := raw[key+".allowed"]; ok {
			if b, err := cast.ToBoolE(v); err == nil {
				def.Allowed = b
			}
		}
		out[key] = def
	}
	return out, nil
}

// SaveAudio persists one channel.
func (s *Store) SaveAudio(key string, c ChannelSetting) error {
	if err := s.SetSetting(SectionAudio, key+".volume", c.Volume); err != nil {
		return err
	}
	return s.SetSetting(SectionAudio, key+".allowed", c.Allowed)
}
