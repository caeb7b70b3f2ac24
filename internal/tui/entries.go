package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/multyp/grocer/internal/models"
)

// listEntry adapts a models.List to bubbles/list.Item
type listEntry struct {
	list *models.List
}

func (e listEntry) Title() string       { return e.list.Name }
func (e listEntry) Description() string { return "" }
func (e listEntry) FilterValue() string { return e.list.Name }

// itemEntry adapts a models.Item to bubbles/list.Item
type itemEntry struct {
	item *models.Item
}

func (e itemEntry) Title() string {
	box := boxUnchecked
	if e.item.Checked {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, e.item.Text)
}
func (e itemEntry) Description() string { return "" }
func (e itemEntry) FilterValue() string { return e.item.Text }

// listDelegate renders lists one per line
type listDelegate struct {
	styles Styles
}

func (d listDelegate) Height() int                               { return 1 }
func (d listDelegate) Spacing() int                              { return 0 }
func (d listDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d listDelegate) Render(w io.Writer, m list.Model, index int, entry list.Item) {
	e, ok := entry.(listEntry)
	if !ok {
		return
	}

	line := d.styles.Accent.Render("•") + " " + e.list.Name
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render("> ")
		line = d.styles.Selected.Render("• " + e.list.Name)
	}
	fmt.Fprintln(w, prefix+line)
}

// itemDelegate renders items as single checkbox lines
type itemDelegate struct {
	styles Styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, entry list.Item) {
	e, ok := entry.(itemEntry)
	if !ok {
		return
	}

	box := d.styles.Muted.Render(boxUnchecked)
	text := e.item.Text
	if e.item.Checked {
		box = d.styles.Success.Render(boxChecked)
		text = d.styles.Done.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// itemStats counts checked and pending items for the header
func itemStats(items []*models.Item) (done, pending int) {
	for _, it := range items {
		if it.Checked {
			done++
		} else {
			pending++
		}
	}
	return
}

// progressBar renders a compact done/total gauge for the items header
func progressBar(done, total, width int) string {
	if width <= 0 {
		width = 20
	}
	denom := total
	if denom == 0 {
		denom = 1
	}
	filled := int(float64(done) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
