package models_test

import (
	"encoding/json"
	"testing"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

func TestPlayerMarshalJSON_OverlaysSource(t *testing.T) {
	p := models.Player{
		ID:     "9",
		Name:   "Fábio",
		Wins:   3,
		Saves:  0,
		Points: 11,
		Source: models.Record{
			"id":       json.Number("9"),
			"nome":     "Fábio",
			"vitorias": "3",
			"defesa":   "n/a",
			"clube":    "Cruzeiro",
		},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if out["clube"] != "Cruzeiro" {
		t.Errorf("expected extra field kept, got %v", out["clube"])
	}
	if out["vitorias"] != 3.0 {
		t.Errorf("expected coerced wins, got %#v", out["vitorias"])
	}
	if out["defesa"] != 0.0 {
		t.Errorf("expected coerced saves, got %#v", out["defesa"])
	}
	if out["pontos"] != 11.0 {
		t.Errorf("expected points, got %#v", out["pontos"])
	}
	if out["id"] != 9.0 {
		t.Errorf("expected numeric source id, got %#v", out["id"])
	}
}

func TestPlayerMarshalJSON_WithoutSource(t *testing.T) {
	data, err := json.Marshal(models.Player{ID: "1", Name: "Jefferson"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if out["id"] != "1" || out["nome"] != "Jefferson" {
		t.Errorf("unexpected identity fields: %v", out)
	}
	if out["empate"] != 0.0 || out["infracoes"] != 0.0 {
		t.Errorf("expected zero stats, got %v", out)
	}
}
