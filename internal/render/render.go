// Package render turns a sorted leaderboard into the table body and card
// grid fragments of the goalkeepers page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/leaderboard"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/pkg/models"
)

// FallbackMessage replaces the table rows when a load fails
const FallbackMessage = "Erro ao carregar dados dos goleiros."

const fallbackRow = template.HTML(`<tr>
  <td colspan="8" class="table-fallback">` + FallbackMessage + `</td>
</tr>
`)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Renderer
type Options struct {
	// DetailPath is the player page linked from each name, e.g. "jogador.html"
	DetailPath string
	Title      string
}

// Renderer renders leaderboard fragments and the page around them
type Renderer struct {
	tmpl       *template.Template
	detailPath string
	title      string
}

// New parses the embedded templates
func New(opts Options) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{
		tmpl:       tmpl,
		detailPath: opts.DetailPath,
		title:      opts.Title,
	}, nil
}

type tableRow struct {
	Rank        string
	ID          string
	Name        string
	Points      string
	Wins        string
	Draws       string
	Goals       string
	Saves       string
	Infractions string
}

type tableData struct {
	DetailPath string
	Rows       []tableRow
}

type card struct {
	Position int
	Rank     string
	TopClass string
	Name     string
	Points   string
	Width    string
	Saves    string
	Wins     string
}

// PageData selects which mounts appear on the page
type PageData struct {
	Title string
	Table *Mount
	Cards *Mount
}

// Table replaces dst with one row per player
func (r *Renderer) Table(players []models.Player, dst *Mount) error {
	if dst == nil {
		return nil
	}

	data := tableData{
		DetailPath: r.detailPath,
		Rows:       make([]tableRow, 0, len(players)),
	}
	for i, p := range players {
		data.Rows = append(data.Rows, tableRow{
			Rank:        leaderboard.FormatRank(i),
			ID:          p.ID,
			Name:        p.Name,
			Points:      leaderboard.FormatPoints(p.Points),
			Wins:        leaderboard.FormatStat(p.Wins),
			Draws:       leaderboard.FormatStat(p.Draws),
			Goals:       leaderboard.FormatStat(p.Goals),
			Saves:       leaderboard.FormatStat(p.Saves),
			Infractions: leaderboard.FormatStat(p.Infractions),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "table", data); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	dst.Replace(template.HTML(buf.String()))
	return nil
}

// Cards clears dst and appends one card per player. Cards are rendered
// before dst is touched, so a failure leaves the previous content.
func (r *Renderer) Cards(players []models.Player, dst *Mount) error {
	if dst == nil {
		return nil
	}

	top := leaderboard.TopPoints(players)
	rendered := make([]template.HTML, 0, len(players))

	for i, p := range players {
		c := card{
			Position: i + 1,
			Rank:     leaderboard.FormatRank(i),
			TopClass: topClass(i),
			Name:     p.Name,
			Points:   leaderboard.FormatPoints(p.Points),
			Width:    strconv.FormatFloat(leaderboard.ProgressWidth(p.Points, top), 'f', -1, 64),
			Saves:    leaderboard.FormatStat(p.Saves),
			Wins:     leaderboard.FormatStat(p.Wins),
		}

		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, "card", c); err != nil {
			return fmt.Errorf("rendering card %d: %w", i+1, err)
		}
		rendered = append(rendered, template.HTML(buf.String()))
	}

	dst.Clear()
	for _, h := range rendered {
		dst.Append(h)
	}
	return nil
}

// Fallback replaces dst with the load error row
func (r *Renderer) Fallback(dst *Mount) {
	if dst == nil {
		return
	}
	dst.Replace(fallbackRow)
}

// Page writes the full document containing whichever mounts are present
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = r.title
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// topClass marks the podium
func topClass(i int) string {
	switch i {
	case 0:
		return "top-1"
	case 1:
		return "top-2"
	case 2:
		return "top-3"
	default:
		return ""
	}
}
