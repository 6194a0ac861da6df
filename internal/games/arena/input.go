package arena

// Input is the named-action query games receive each tick.
type Input interface {
	IsActionPressed(name string) bool
}

// Edges turns held actions into one-shot presses. Terminal input keeps a
// key held for a short window, so toggles must fire on the rising edge only.
type Edges struct {
	held map[string]bool
}

// Pressed reports whether name is held now but was not on the previous call.
func (e *Edges) Pressed(in Input, name string) bool {
	if e.held == nil {
		e.held = make(map[string]bool)
	}
	now := in.IsActionPressed(name)
	was := e.held[name]
	e.held[name] = now
	return now && !was
}

// Reset forgets every held action.
func (e *Edges) Reset() {
	e.held = nil
}
