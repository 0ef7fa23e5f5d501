package models

import "encoding/json"

// Wire keys used by the goalkeepers API
const (
	FieldID          = "id"
	FieldName        = "nome"
	FieldWins        = "vitorias"
	FieldDraws       = "empate"
	FieldSaves       = "defesa"
	FieldGoals       = "gols"
	FieldInfractions = "infracoes"
	FieldPoints      = "pontos"
)

// Record is a raw player record as decoded from the API.
// Any field may be missing or carry an unexpected type.
type Record map[string]interface{}

// Player is a normalized, scored goalkeeper
type Player struct {
	ID          string
	Name        string
	Wins        float64
	Draws       float64
	Saves       float64
	Goals       float64
	Infractions float64
	Points      float64

	// Source is the record the player was built from, kept so the
	// JSON form carries every upstream field
	Source Record
}

// MarshalJSON writes the source record overlaid with the coerced stats and points
func (p Player) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Source)+8)
	for k, v := range p.Source {
		out[k] = v
	}

	if _, ok := out[FieldID]; !ok {
		out[FieldID] = p.ID
	}
	if _, ok := out[FieldName]; !ok {
		out[FieldName] = p.Name
	}

	out[FieldWins] = p.Wins
	out[FieldDraws] = p.Draws
	out[FieldSaves] = p.Saves
	out[FieldGoals] = p.Goals
	out[FieldInfractions] = p.Infractions
	out[FieldPoints] = p.Points

	return json.Marshal(out)
}
