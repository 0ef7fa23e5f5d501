package render

import (
	"html/template"
	"strings"
)

// Stable mount identifiers used by the page and its stylesheets
const (
	TableMountID = "tabela-goleiros"
	CardsMountID = "cards-goleiros"
)

// Mount is a render target. Its content is only ever produced by this
// package's templates, so it is trusted HTML. A nil *Mount is an absent
// target and every renderer skips it.
type Mount struct {
	ID      string
	content strings.Builder
}

// NewMount creates an empty mount
func NewMount(id string) *Mount {
	return &Mount{ID: id}
}

// NewTableMount creates the table body mount
func NewTableMount() *Mount {
	return NewMount(TableMountID)
}

// NewCardsMount creates the card grid mount
func NewCardsMount() *Mount {
	return NewMount(CardsMountID)
}

// Replace swaps the whole content
func (m *Mount) Replace(h template.HTML) {
	m.content.Reset()
	m.content.WriteString(string(h))
}

// Append adds h after the current content
func (m *Mount) Append(h template.HTML) {
	m.content.WriteString(string(h))
}

// Clear empties the mount
func (m *Mount) Clear() {
	m.content.Reset()
}

// HTML returns the current content
func (m *Mount) HTML() template.HTML {
	return template.HTML(m.content.String())
}
