package entity

import "github.com/ccradio/rotation-bot/internal/rotation"

// Map is a row of the maps table. RotationOrder is the slot index.
type Map struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Emote         string `json:"emote"`
	RotationOrder int    `json:"rotation_order"`
}

// ToRotation converts the row into the value used by rotation.Clock.
func (m *Map) ToRotation() rotation.Map {
	return rotation.Map{Name: m.Name, Emote: m.Emote}
}
