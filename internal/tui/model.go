// Package tui is the interactive scan browser: a table of discovered
// cache directories with marking, tier overrides, and confirmed
// deletion. All presentation state (marks, cursor, expansion) lives
// here, never in the core scan nodes.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/aimole/internal/deleter"
	"github.com/lakshaymaurya-felt/aimole/internal/safety"
	"github.com/lakshaymaurya-felt/aimole/internal/scan"
	"github.com/lakshaymaurya-felt/aimole/internal/ui"
)

// row is one table line: a top-level cache root or one of its children.
type row struct {
	Path        string
	Name        string
	Size        int64
	Tier        safety.Tier
	Description string
	IsRoot      bool
	Marked      bool
	Deleted     bool
	DeleteErr   string
}

type scanDoneMsg struct {
	result scan.ScanResult
}

type deleteResultMsg struct {
	result deleter.Result
}

type keyMap struct {
	Mark         key.Binding
	Delete       key.Binding
	DeleteMarked key.Binding
	Override     key.Binding
	ResetOvr     key.Binding
	Rescan       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Mark:         key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "mark")),
		Delete:       key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "delete")),
		DeleteMarked: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete marked")),
		Override:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "cycle override")),
		ResetOvr:     key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "reset override")),
		Rescan:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Delete, k.DeleteMarked, k.Override, k.Rescan, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mark, k.Delete, k.DeleteMarked},
		{k.Override, k.ResetOvr, k.Rescan, k.Help, k.Quit},
	}
}

type styles struct {
	base    lipgloss.Style
	header  lipgloss.Style
	title   lipgloss.Style
	chip    lipgloss.Style
	status  lipgloss.Style
	muted   lipgloss.Style
	safe    lipgloss.Style
	caution lipgloss.Style
	danger  lipgloss.Style
	confirm lipgloss.Style
}

var sty = styles{
	base:    lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	header:  lipgloss.NewStyle().Padding(0, 1),
	title:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	chip:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Padding(0, 1),
	status:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	safe:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	caution: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	confirm: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("203")).Bold(true).Padding(0, 1),
}

// Model is the bubbletea model for the scan browser.
type Model struct {
	scanner   *scan.Scanner
	overrides safety.OverrideStore

	table    table.Model
	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	keys     keyMap

	rows      []row
	totalSize int64
	loading   bool
	lastEvent string

	confirming   bool
	confirmPaths []string

	deleting    bool
	deleteQueue []string
	deleteDone  int
	deleteFails int
	freedBytes  int64

	width  int
	height int
}

// New builds the browser over a configured scanner and override store.
func New(scanner *scan.Scanner, store safety.OverrideStore) Model {
	columns := []table.Column{
		{Title: "Directory", Width: 44},
		{Title: "Size", Width: 10},
		{Title: "Tier", Width: 9},
		{Title: "Description", Width: 40},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true))
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(tableStyles)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return Model{
		scanner:   scanner,
		overrides: store,
		table:     t,
		spinner:   sp,
		progress:  progress.New(progress.WithDefaultGradient()),
		help:      help.New(),
		keys:      newKeyMap(),
		loading:   true,
		lastEvent: "Scanning…",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, scanCmd(m.scanner))
}

func scanCmd(s *scan.Scanner) tea.Cmd {
	return func() tea.Msg {
		return scanDoneMsg{result: s.Scan()}
	}
}

func deleteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return deleteResultMsg{result: deleter.DeleteOne(path)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case progress.FrameMsg:
		updated, cmd := m.progress.Update(msg)
		if next, ok := updated.(progress.Model); ok {
			m.progress = next
		}
		cmds = append(cmds, cmd)
	case scanDoneMsg:
		m.loading = false
		m.applyScan(msg.result)
		m.lastEvent = fmt.Sprintf("Found %d cache roots, %s total", rootCount(m.rows), ui.FormatSize(m.totalSize))
	case deleteResultMsg:
		if cmd := m.applyDeleteResult(msg.result); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.syncTable()
	case tea.KeyMsg:
		if m.confirming {
			switch msg.String() {
			case "y", "Y":
				paths := m.confirmPaths
				m.confirming = false
				m.confirmPaths = nil
				if cmd := m.startDelete(paths); cmd != nil {
					cmds = append(cmds, cmd)
				}
			case "n", "N", "esc":
				m.confirming = false
				m.confirmPaths = nil
				m.lastEvent = "Deletion cancelled"
			}
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Mark):
			m.toggleMark()
		case key.Matches(msg, m.keys.Delete):
			if cmd := m.requestDelete(m.selectedPaths(false)); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case key.Matches(msg, m.keys.DeleteMarked):
			if cmd := m.requestDelete(m.selectedPaths(true)); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case key.Matches(msg, m.keys.Override):
			m.cycleOverride()
		case key.Matches(msg, m.keys.ResetOvr):
			m.resetOverride()
		case key.Matches(msg, m.keys.Rescan):
			if !m.deleting {
				m.loading = true
				m.lastEvent = "Scanning…"
				cmds = append(cmds, m.spinner.Tick, scanCmd(m.scanner))
			}
		}
	}

	if !m.confirming {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// applyScan rebuilds the rows from a fresh result: each root followed by
// its children, preserving the scanner's ordering.
func (m *Model) applyScan(result scan.ScanResult) {
	m.rows = m.rows[:0]
	m.totalSize = result.TotalSize
	for _, node := range result.Nodes {
		m.rows = append(m.rows, row{
			Path: node.Path, Name: node.Name, Size: node.Size,
			Tier: node.Tier, Description: node.Description, IsRoot: true,
		})
		for _, child := range node.Children {
			m.rows = append(m.rows, row{
				Path: child.Path, Name: child.Name, Size: child.Size,
				Tier: child.Tier, Description: child.Description,
			})
		}
	}
	m.syncTable()
}

func rootCount(rows []row) int {
	n := 0
	for _, r := range rows {
		if r.IsRoot {
			n++
		}
	}
	return n
}

func (m *Model) syncTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		name := r.Name
		if !r.IsRoot {
			name = "  " + name
		}
		switch {
		case r.DeleteErr != "":
			name += " !"
		case r.Deleted:
			name += " ✕"
		case r.Marked:
			name += " ●"
		}
		rows = append(rows, table.Row{
			name,
			ui.FormatSize(r.Size),
			tierCell(r.Tier),
			r.Description,
		})
	}
	m.table.SetRows(rows)
}

func tierCell(t safety.Tier) string {
	switch t {
	case safety.TierSafe:
		return sty.safe.Render(t.Label())
	case safety.TierDanger:
		return sty.danger.Render(t.Label())
	default:
		return sty.caution.Render(t.Label())
	}
}

func (m *Model) current() *row {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return nil
	}
	return &m.rows[idx]
}

func (m *Model) toggleMark() {
	r := m.current()
	if r == nil || r.Deleted {
		return
	}
	r.Marked = !r.Marked
	m.syncTable()
}

// selectedPaths returns either the marked rows or the row under the
// cursor. Deleted rows never qualify.
func (m *Model) selectedPaths(marked bool) []string {
	if marked {
		var paths []string
		for _, r := range m.rows {
			if r.Marked && !r.Deleted {
				paths = append(paths, r.Path)
			}
		}
		return paths
	}
	if r := m.current(); r != nil && !r.Deleted {
		return []string{r.Path}
	}
	return nil
}

// requestDelete gates deletion behind a y/n confirmation. Danger-tier
// selections are called out in the prompt; the deletion service itself
// does not enforce tiers.
func (m *Model) requestDelete(paths []string) tea.Cmd {
	if len(paths) == 0 || m.deleting {
		return nil
	}
	m.confirming = true
	m.confirmPaths = paths
	return nil
}

func (m *Model) startDelete(paths []string) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	m.deleting = true
	m.deleteQueue = paths
	m.deleteDone = 0
	m.deleteFails = 0
	m.freedBytes = 0
	m.lastEvent = fmt.Sprintf("Deleting %d item(s)…", len(paths))
	return tea.Batch(m.progress.SetPercent(0), deleteCmd(paths[0]))
}

// applyDeleteResult records one per-path outcome and advances the
// queue. A failure never stops the remaining deletions.
func (m *Model) applyDeleteResult(result deleter.Result) tea.Cmd {
	for i := range m.rows {
		if m.rows[i].Path != result.Path {
			continue
		}
		if result.Success {
			m.rows[i].Deleted = true
			m.rows[i].Marked = false
			m.rows[i].DeleteErr = ""
		} else {
			m.rows[i].DeleteErr = result.Err
		}
	}
	if result.Success {
		m.freedBytes += result.FreedBytes
	} else {
		m.deleteFails++
	}

	m.deleteDone++
	percent := float64(m.deleteDone) / float64(len(m.deleteQueue))
	progressCmd := m.progress.SetPercent(percent)
	if m.deleteDone < len(m.deleteQueue) {
		return tea.Batch(progressCmd, deleteCmd(m.deleteQueue[m.deleteDone]))
	}

	m.deleting = false
	if m.deleteFails > 0 {
		m.lastEvent = fmt.Sprintf("Freed %s, %d item(s) failed", ui.FormatSize(m.freedBytes), m.deleteFails)
	} else {
		m.lastEvent = fmt.Sprintf("Freed %s", ui.FormatSize(m.freedBytes))
	}
	m.deleteQueue = nil
	return progressCmd
}

// cycleOverride advances the selected row's tier Safe → Caution →
// Danger → Safe and persists it as a user override.
func (m *Model) cycleOverride() {
	r := m.current()
	if r == nil || r.Deleted || m.overrides == nil {
		return
	}
	next := safety.TierSafe
	switch r.Tier {
	case safety.TierSafe:
		next = safety.TierCaution
	case safety.TierCaution:
		next = safety.TierDanger
	}
	if err := m.overrides.Set(r.Path, next); err != nil {
		m.lastEvent = fmt.Sprintf("Override failed: %v", err)
		return
	}
	r.Tier = next
	r.Description = safety.DescOverride
	m.lastEvent = fmt.Sprintf("Override: %s → %s", r.Name, next.Label())
	m.syncTable()
}

// resetOverride removes the persisted override; the computed tier comes
// back on the next rescan.
func (m *Model) resetOverride() {
	r := m.current()
	if r == nil || m.overrides == nil {
		return
	}
	if err := m.overrides.Remove(r.Path); err != nil {
		m.lastEvent = fmt.Sprintf("Reset failed: %v", err)
		return
	}
	m.lastEvent = fmt.Sprintf("Override cleared: %s (rescan to recompute)", r.Name)
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height

	sizeWidth := 10
	tierWidth := 9
	descWidth := 34
	nameWidth := max(width-sizeWidth-tierWidth-descWidth-10, 24)
	m.table.SetColumns([]table.Column{
		{Title: "Directory", Width: nameWidth},
		{Title: "Size", Width: sizeWidth},
		{Title: "Tier", Width: tierWidth},
		{Title: "Description", Width: descWidth},
	})
	m.table.SetWidth(width - 4)
	m.table.SetHeight(max(height-9, 5))
	m.progress.Width = max(width-24, 20)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		sty.base.Render(m.table.View()),
		m.statusView(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	title := sty.title.Render("aimole")
	chip := sty.chip.Render(fmt.Sprintf("total: %s", ui.FormatSize(m.totalSize)))
	return sty.header.Render(lipgloss.JoinHorizontal(lipgloss.Left, title, " ", chip, "  ",
		sty.muted.Render("AI coding-tool cache browser")))
}

func (m Model) statusView() string {
	if m.loading {
		return sty.status.Render(fmt.Sprintf("%s Scanning known cache roots…", m.spinner.View()))
	}
	if m.deleting {
		line := fmt.Sprintf("Deleting %d/%d", m.deleteDone, len(m.deleteQueue))
		return lipgloss.JoinVertical(lipgloss.Left, sty.status.Render(line), sty.muted.Render(m.progress.View()))
	}
	return sty.status.Render(m.lastEvent)
}

func (m Model) footerView() string {
	if m.confirming {
		dangers := 0
		for _, r := range m.rows {
			for _, p := range m.confirmPaths {
				if r.Path == p && r.Tier == safety.TierDanger {
					dangers++
				}
			}
		}
		label := fmt.Sprintf("Delete %d item(s) permanently? (y/n)", len(m.confirmPaths))
		if dangers > 0 {
			label = fmt.Sprintf("Delete %d item(s), %d marked DANGER? (y/n)", len(m.confirmPaths), dangers)
		}
		return sty.confirm.Render(label)
	}
	return m.help.View(m.keys)
}
