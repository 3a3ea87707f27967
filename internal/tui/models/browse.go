package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	discovery "github.com/allbin/zwave-ports"
	"github.com/allbin/zwave-ports/internal/tui/keys"
	"github.com/allbin/zwave-ports/internal/tui/styles"
)

const (
	columnName   = "name"
	columnClass  = "class"
	columnVIDPID = "vidpid"
	columnDesc   = "description"

	defaultPageSize = 10
)

// Discoverer is what the browser needs from the discovery engine
type Discoverer interface {
	List() []discovery.Endpoint
	Accessible(name string) bool
}

// EndpointsMsg carries a fresh discovery snapshot
type EndpointsMsg struct {
	Endpoints []discovery.Endpoint
	At        time.Time
}

type tickMsg time.Time

// BrowseModel lists endpoints in a table and rescans periodically
type BrowseModel struct {
	discoverer Discoverer
	interval   time.Duration

	endpoints []discovery.Endpoint
	visible   []discovery.Endpoint
	usbOnly   bool
	updated   time.Time

	table  table.Model
	help   help.Model
	keys   keys.BrowseKeys
	width  int
	height int
}

// NewBrowseModel creates the browser. interval <= 0 disables auto rescans.
func NewBrowseModel(d Discoverer, interval time.Duration) *BrowseModel {
	columns := []table.Column{
		table.NewColumn(columnName, "Endpoint", 18),
		table.NewColumn(columnClass, "Class", 9),
		table.NewColumn(columnVIDPID, "VID:PID", 10),
		table.NewFlexColumn(columnDesc, "Description", 1),
	}

	t := table.New(columns).
		Focused(true).
		WithPageSize(defaultPageSize).
		WithTargetWidth(80).
		HeaderStyle(styles.HeaderStyle).
		HighlightStyle(styles.HighlightStyle).
		BorderRounded()

	return &BrowseModel{
		discoverer: d,
		interval:   interval,
		table:      t,
		help:       help.New(),
		keys:       keys.NewBrowseKeys(),
	}
}

// Init scans once and starts the single periodic rescan chain. Manual
// rescans do not re-arm the tick.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.scan(), m.tick())
}

func (m *BrowseModel) scan() tea.Cmd {
	d := m.discoverer
	return func() tea.Msg {
		return EndpointsMsg{Endpoints: d.List(), At: time.Now()}
	}
}

func (m *BrowseModel) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.table.WithTargetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case EndpointsMsg:
		m.endpoints = msg.Endpoints
		m.updated = msg.At
		m.rebuildRows()
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.scan(), m.tick())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.scan()
		case key.Matches(msg, m.keys.ToggleUSB):
			m.usbOnly = !m.usbOnly
			m.rebuildRows()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BrowseModel) rebuildRows() {
	m.visible = m.endpoints
	if m.usbOnly {
		m.visible = discovery.Filter(m.endpoints, discovery.ClassUSB)
	}

	rows := make([]table.Row, 0, len(m.visible))
	for _, ep := range m.visible {
		ids := ""
		if ep.IsUSB() {
			ids = ep.VendorID + ":" + ep.ProductID
		}
		rows = append(rows, table.NewRow(table.RowData{
			columnName:   ep.Name,
			columnClass:  ep.Class(),
			columnVIDPID: ids,
			columnDesc:   ep.Description,
		}))
	}
	m.table = m.table.WithRows(rows)
}

// Visible returns the endpoints currently shown
func (m *BrowseModel) Visible() []discovery.Endpoint {
	return m.visible
}

// Selected returns the highlighted endpoint
func (m *BrowseModel) Selected() (discovery.Endpoint, bool) {
	if len(m.visible) == 0 {
		return discovery.Endpoint{}, false
	}
	name, _ := m.table.HighlightedRow().Data[columnName].(string)
	for _, ep := range m.visible {
		if ep.Name == name {
			return ep, true
		}
	}
	return discovery.Endpoint{}, false
}

func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Serial endpoints"))
	if m.usbOnly {
		b.WriteString(" " + styles.FilterStyle.Render("[usb only]"))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(styles.InfoStyle.Render("No serial ports found"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if ep, ok := m.Selected(); ok {
			b.WriteString(m.details(ep))
			b.WriteString("\n")
		}
	}

	status := fmt.Sprintf("%d endpoint(s)", len(m.visible))
	if !m.updated.IsZero() {
		status += " · scanned " + m.updated.Format("15:04:05")
	}
	b.WriteString(styles.StatusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *BrowseModel) details(ep discovery.Endpoint) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styles.LabelStyle.Render(label), styles.ValueStyle.Render(value))
	}

	lines := []string{row("Name", ep.Name), row("Description", ep.Description)}
	if ep.Manufacturer != "" {
		lines = append(lines, row("Manufacturer", ep.Manufacturer))
	}
	if ep.SerialNumber != "" {
		lines = append(lines, row("Serial", ep.SerialNumber))
	}

	access := "read/write"
	ok := m.discoverer.Accessible(ep.Name)
	if !ok {
		access = "permission denied"
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		styles.LabelStyle.Render("Access"), styles.AccessStyle(ok).Render(access)))

	return styles.DetailBorderStyle.Render(strings.Join(lines, "\n"))
}
