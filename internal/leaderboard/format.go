package leaderboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

// FormatPoints floors v and left-pads it with zeros to at least two digits
func FormatPoints(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	floored := math.Floor(v)
	if floored == 0 {
		// avoid "-0"
		floored = 0
	}
	return padTwo(strconv.FormatFloat(floored, 'f', 0, 64))
}

// FormatRank returns the 1-based, zero-padded rank for index i
func FormatRank(i int) string {
	return padTwo(strconv.Itoa(i + 1))
}

// FormatStat renders a stat the way the page has always shown it:
// integers without a decimal point, fractions in shortest form
func FormatStat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func padTwo(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}

// TopPoints returns the points of the leader, or 0 for an empty board
func TopPoints(players []models.Player) float64 {
	if len(players) == 0 {
		return 0
	}
	return players[0].Points
}

// ProgressWidth returns a player's bar width as a percentage of the leader's points.
// A leader with zero or negative points uses 1 as the denominator.
// The result is always within [0, 100].
func ProgressWidth(points, top float64) float64 {
	den := top
	if den <= 0 || math.IsNaN(den) {
		den = 1
	}

	width := points / den * 100
	switch {
	case math.IsNaN(width) || width < 0:
		return 0
	case width > 100:
		return 100
	}
	return width
}
