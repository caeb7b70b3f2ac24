// Package tui implements the interactive two-screen terminal UI: a screen of
// grocery lists and, once one is opened, the checkable items inside it.
// Every mutation goes through the service layer and re-reads from the store.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/multyp/grocer/internal/config"
	"github.com/multyp/grocer/internal/models"
	itemsvc "github.com/multyp/grocer/internal/services/item"
	listsvc "github.com/multyp/grocer/internal/services/list"
)

type screen int

const (
	screenLists screen = iota
	screenItems
)

// Messages produced by the async service round-trips
type (
	listsLoadedMsg []*models.List
	itemsLoadedMsg []*models.Item
	opErrMsg       struct{ err error }
)

// Model is the Bubble Tea model for the whole application
type Model struct {
	listSvc listsvc.Service
	itemSvc itemsvc.Service

	screen     screen
	activeList *models.List

	lists     list.Model
	items     list.Model
	itemsData []*models.Item

	// Inline add
	adding   bool
	ti       textinput.Model
	inputErr string

	keys   config.KeyMappings
	styles Styles

	width  int
	height int
	err    error
}

// InitialModel creates the TUI model over the given services
func InitialModel(listSvc listsvc.Service, itemSvc itemsvc.Service, cfg *config.Config) Model {
	styles := NewStyles(cfg.Theme)

	lists := list.New(nil, listDelegate{styles: styles}, 0, 0)
	lists.Title = "Grocery lists"
	lists.Styles.Title = styles.Title
	lists.SetShowHelp(false)
	lists.SetShowStatusBar(false)
	lists.SetFilteringEnabled(true)
	lists.FilterInput.Prompt = "/ "
	lists.SetStatusBarItemName("list", "lists")

	items := list.New(nil, itemDelegate{styles: styles}, 0, 0)
	items.SetShowHelp(false)
	items.SetShowStatusBar(false)
	items.SetShowTitle(false)
	items.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		listSvc: listSvc,
		itemSvc: itemSvc,
		screen:  screenLists,
		lists:   lists,
		items:   items,
		ti:      ti,
		keys:    cfg.KeyMappings,
		styles:  styles,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadLists()
}

// ============================================================================
// Commands
// ============================================================================

func (m Model) loadLists() tea.Cmd {
	svc := m.listSvc
	return func() tea.Msg {
		lists, err := svc.GetLists(context.Background())
		if err != nil {
			return opErrMsg{err}
		}
		return listsLoadedMsg(lists)
	}
}

func (m Model) loadItems(listID int) tea.Cmd {
	svc := m.itemSvc
	return func() tea.Msg {
		items, err := svc.GetItems(context.Background(), listID)
		if err != nil {
			return opErrMsg{err}
		}
		return itemsLoadedMsg(items)
	}
}

func (m Model) createList(name string) tea.Cmd {
	svc := m.listSvc
	reload := m.loadLists()
	return func() tea.Msg {
		if _, err := svc.CreateList(context.Background(), name); err != nil {
			return opErrMsg{err}
		}
		return reload()
	}
}

func (m Model) deleteList(id int) tea.Cmd {
	svc := m.listSvc
	reload := m.loadLists()
	return func() tea.Msg {
		if err := svc.DeleteList(context.Background(), id); err != nil {
			return opErrMsg{err}
		}
		return reload()
	}
}

func (m Model) createItem(listID int, text string) tea.Cmd {
	svc := m.itemSvc
	reload := m.loadItems(listID)
	return func() tea.Msg {
		if _, err := svc.CreateItem(context.Background(), listID, text); err != nil {
			return opErrMsg{err}
		}
		return reload()
	}
}

func (m Model) toggleItem(it *models.Item) tea.Cmd {
	svc := m.itemSvc
	reload := m.loadItems(it.ListID)
	id, checked := it.ID, !it.Checked
	return func() tea.Msg {
		if err := svc.SetChecked(context.Background(), id, checked); err != nil {
			return opErrMsg{err}
		}
		return reload()
	}
}

func (m Model) deleteItem(it *models.Item) tea.Cmd {
	svc := m.itemSvc
	reload := m.loadItems(it.ListID)
	id := it.ID
	return func() tea.Msg {
		if err := svc.DeleteItem(context.Background(), id); err != nil {
			return opErrMsg{err}
		}
		return reload()
	}
}

// ============================================================================
// Update
// ============================================================================

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.lists.SetSize(msg.Width-4, msg.Height-6)
		m.items.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case listsLoadedMsg:
		entries := make([]list.Item, 0, len(msg))
		for _, l := range msg {
			entries = append(entries, listEntry{list: l})
		}
		m.lists.SetItems(entries)
		m.err = nil
		return m, nil

	case itemsLoadedMsg:
		m.itemsData = msg
		entries := make([]list.Item, 0, len(msg))
		for _, it := range msg {
			entries = append(entries, itemEntry{item: it})
		}
		m.items.SetItems(entries)
		m.err = nil
		return m, nil

	case opErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		if m.screen == screenItems {
			return m.updateItems(msg)
		}
		return m.updateLists(msg)
	}

	var cmd tea.Cmd
	if m.screen == screenItems {
		m.items, cmd = m.items.Update(msg)
	} else {
		m.lists, cmd = m.lists.Update(msg)
	}
	return m, cmd
}

// updateAdding handles keys while the inline add input is focused
func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.ti.Value())
		if value == "" {
			m.inputErr = "cannot be empty"
			return m, nil
		}
		m.adding = false
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Blur()
		if m.screen == screenItems && m.activeList != nil {
			return m, m.createItem(m.activeList.ID, value)
		}
		return m, m.createList(value)
	case "esc":
		m.adding = false
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// updateLists handles keys on the lists screen
func (m Model) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, every key belongs to the filter input
	if m.lists.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.lists, cmd = m.lists.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case m.keys.Quit, "ctrl+c":
		return m, tea.Quit
	case m.keys.OpenList:
		if e, ok := m.lists.SelectedItem().(listEntry); ok {
			m.screen = screenItems
			m.activeList = e.list
			m.itemsData = nil
			m.items.SetItems(nil)
			return m, m.loadItems(e.list.ID)
		}
		return m, nil
	case m.keys.AddList:
		m.adding = true
		m.ti.Placeholder = "New list name..."
		m.ti.Focus()
		return m, textinput.Blink
	case m.keys.DeleteList:
		if e, ok := m.lists.SelectedItem().(listEntry); ok {
			return m, m.deleteList(e.list.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.lists, cmd = m.lists.Update(msg)
	return m, cmd
}

// updateItems handles keys on the items screen
func (m Model) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keys.Quit, "ctrl+c":
		return m, tea.Quit
	case m.keys.Back:
		m.screen = screenLists
		m.activeList = nil
		m.itemsData = nil
		m.items.SetItems(nil)
		return m, m.loadLists()
	case m.keys.ToggleItem:
		if e, ok := m.items.SelectedItem().(itemEntry); ok {
			return m, m.toggleItem(e.item)
		}
		return m, nil
	case m.keys.AddItem:
		m.adding = true
		m.ti.Placeholder = "New item..."
		m.ti.Focus()
		return m, textinput.Blink
	case m.keys.DeleteItem:
		if e, ok := m.items.SelectedItem().(itemEntry); ok {
			return m, m.deleteItem(e.item)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

// ============================================================================
// View
// ============================================================================

func (m Model) View() string {
	var content string
	if m.screen == screenItems {
		content = m.viewItems()
	} else {
		content = m.lists.View() + "\n" + m.styles.Help.Render("enter open • a add • d delete • / filter • q quit")
	}

	if m.adding {
		title := "Add list"
		if m.screen == screenItems {
			title = "Add item"
		}
		if m.inputErr != "" {
			title += " — " + m.styles.Error.Render(m.inputErr)
		}
		content += "\n" + m.styles.InputBar.Render(title+"\n"+m.ti.View())
	}

	if m.err != nil {
		content += "\n" + m.styles.Error.Render("✖ "+m.err.Error())
	}

	return m.styles.Panel.Render(content)
}

// viewItems renders the items screen with a progress header
func (m Model) viewItems() string {
	name := ""
	if m.activeList != nil {
		name = m.activeList.Name
	}
	done, pending := itemStats(m.itemsData)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s",
		m.styles.Title.Render(name),
		m.styles.Success.Render("✔"), done,
		m.styles.Accent.Render("•"), pending,
		m.styles.Muted.Render(progressBar(done, done+pending, 20)),
	)

	body := m.items.View()
	if len(m.itemsData) == 0 {
		body = m.styles.Muted.Render("  nothing here yet — press a to add an item")
	}

	help := m.styles.Help.Render("space toggle • a add • d delete • esc back • q quit")
	return header + "\n\n" + body + "\n" + help
}
