package leaderboard

import (
	"math"
	"sort"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/scoring"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

// Normalize coerces raw API output into scored players sorted for display.
// Anything other than a list yields an empty slice.
func Normalize(raw interface{}, score scoring.Scorer) []models.Player {
	list := asList(raw)
	players := make([]models.Player, 0, len(list))

	for _, item := range list {
		players = append(players, buildPlayer(asRecord(item), score))
	}

	Sort(players)
	return players
}

func buildPlayer(rec models.Record, score scoring.Scorer) models.Player {
	p := models.Player{
		ID:          stringify(rec[models.FieldID]),
		Name:        stringify(rec[models.FieldName]),
		Wins:        ParseOrZero(rec[models.FieldWins]),
		Draws:       ParseOrZero(rec[models.FieldDraws]),
		Saves:       ParseOrZero(rec[models.FieldSaves]),
		Goals:       ParseOrZero(rec[models.FieldGoals]),
		Infractions: ParseOrZero(rec[models.FieldInfractions]),
		Source:      rec,
	}

	points := score(p.Wins, p.Draws, p.Saves, p.Goals, p.Infractions)
	if math.IsNaN(points) || math.IsInf(points, 0) {
		points = 0
	}
	p.Points = points

	return p
}

// Sort orders players by points, then saves, then wins, all descending.
// Players tied on all three keep their relative order.
func Sort(players []models.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return Less(players[i], players[j])
	})
}

// Less reports whether a ranks above b
func Less(a, b models.Player) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Saves != b.Saves {
		return a.Saves > b.Saves
	}
	return a.Wins > b.Wins
}
