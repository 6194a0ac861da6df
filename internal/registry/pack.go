package registry

import "fmt"

// PackManager loads games ("packs") by ID, injects the shared services and
// tells observers which pack is now active.
type PackManager struct {
	env      Env
	create   func(id string) (Game, error)
	current  Game
	info     GameInfo
	onLoaded []func(GameInfo, Game)
}

// NewPackManager creates a manager over the global registry.
func NewPackManager(env Env) *PackManager {
	return &PackManager{env: env.Normalize(), create: Create}
}

// Packs lists the available packs.
func (m *PackManager) Packs() []GameInfo {
	return List()
}

// OnPackLoaded registers an observer fired after each successful load.
func (m *PackManager) OnPackLoaded(fn func(GameInfo, Game)) {
	m.onLoaded = append(m.onLoaded, fn)
}

// Env returns the injected services.
func (m *PackManager) Env() Env { return m.env }

// Current returns the active pack and its game, nil if none was loaded.
func (m *PackManager) Current() (GameInfo, Game) {
	return m.info, m.current
}

// LoadIntoPack creates the game registered under id and makes it current.
func (m *PackManager) LoadIntoPack(id string) (Game, error) {
	g, err := m.create(id)
	if err != nil {
		return nil, fmt.Errorf("registry: load pack: %w", err)
	}
	if s, ok := g.(EnvSetter); ok {
		s.SetEnv(m.env)
	}

	info := GameInfo{ID: g.ID(), Title: g.Title(), Description: g.Description()}
	m.current = g
	m.info = info
	m.env.Logger.Info("pack loaded", "id", info.ID, "title", info.Title)

	for _, fn := range m.onLoaded {
		fn(info, g)
	}
	return g, nil
}
