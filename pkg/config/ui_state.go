package config

import (
	"time"

	"throbber/pkg/symbols"
)

const (
	defaultColumns    = 4
	defaultTickMillis = 250
	minTickMillis     = 16
)

// MinTick is the shortest tick interval the gallery accepts.
const MinTick = minTickMillis * time.Millisecond

// UIState captures UI-related state.
type UIState struct {
	Demo DemoState `json:"demo"`
}

// DemoState stores the gallery preferences.
type DemoState struct {
	Columns    int    `json:"columns"`
	TickMillis int    `json:"tick_ms"`
	Mode       string `json:"mode"`
}

func defaultDemoState() DemoState {
	return DemoState{
		Columns:    defaultColumns,
		TickMillis: defaultTickMillis,
		Mode:       symbols.Spin.String(),
	}
}

func (d *DemoState) normalize() {
	if d.Columns < 1 {
		d.Columns = defaultColumns
	}
	if d.TickMillis < minTickMillis {
		d.TickMillis = defaultTickMillis
	}
	if _, ok := symbols.ParseWhichUse(d.Mode); !ok {
		d.Mode = symbols.Spin.String()
	}
}

// Normalized returns a copy with out-of-range values replaced by defaults.
func (d DemoState) Normalized() DemoState {
	d.normalize()
	return d
}

// Tick returns the tick interval.
func (d DemoState) Tick() time.Duration {
	return time.Duration(d.TickMillis) * time.Millisecond
}

// UseMode returns the stored use mode.
func (d DemoState) UseMode() symbols.WhichUse {
	use, _ := symbols.ParseWhichUse(d.Mode)
	return use
}

// GetDemoState returns the stored gallery preferences
func GetDemoState() (DemoState, error) {
	state, err := LoadState()
	if err != nil {
		return defaultDemoState(), err
	}
	return state.UI.Demo, nil
}

// SetDemoState stores the gallery preferences
func SetDemoState(demo DemoState) error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.UI.Demo = demo
	return SaveState(state)
}
