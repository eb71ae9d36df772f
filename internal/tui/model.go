// Package tui provides the interactive directory browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/file-helpers/internal/tui/shared"
	"github.com/joe/file-helpers/pkg/filehelpers"
	"github.com/joe/file-helpers/pkg/filesystem"
)

// Exported constants.
const (
	// PreviewLimit is the number of bytes of a file shown in the preview pane.
	PreviewLimit = 2048
	// PreviewLines is the number of lines shown in the preview pane.
	PreviewLines = 12
	// DefaultVisibleRows is the entry rows shown before the window size is known.
	DefaultVisibleRows = 20
)

// Model is the browser state: the directory being shown, its entries and the
// selected entry's preview.
type Model struct {
	fs      filesystem.FileSystem
	helpers *filehelpers.Helpers

	dir      string
	entries  []ListEntry
	cursor   int
	loading  bool
	spinner  spinner.Model
	preview  *Preview
	err      error
	errPath  string
	width    int
	height   int
	quitting bool
}

// ListEntry is one row of the listing.
type ListEntry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Preview holds the head of a file read through GetContents.
type Preview struct {
	Path   string
	Text   string
	Size   int
	Binary bool
}

// ListingLoadedMsg is sent when a directory has been read.
type ListingLoadedMsg struct {
	Dir     string
	Entries []ListEntry
	Err     error
}

// PreviewLoadedMsg is sent when a file preview has been read.
type PreviewLoadedMsg struct {
	Preview *Preview
	Err     error
}

// NewModel creates a browser over fsys starting in dir. Reads go through helpers,
// which must wrap the same file system.
func NewModel(fsys filesystem.FileSystem, helpers *filehelpers.Helpers, dir string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(shared.ColorPrimary)

	return Model{
		fs:      fsys,
		helpers: helpers,
		dir:     dir,
		loading: true,
		spinner: s,
	}
}

// Cursor returns the index of the selected entry.
func (m Model) Cursor() int {
	return m.cursor
}

// Dir returns the directory being shown.
func (m Model) Dir() string {
	return m.dir
}

// Entries returns the entries of the directory being shown.
func (m Model) Entries() []ListEntry {
	return m.entries
}

// Err returns the last load error, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDir(m.dir))
}

// Run shows the browser until the user quits.
func Run(fsys filesystem.FileSystem, helpers *filehelpers.Helpers, dir string, opts ...tea.ProgramOption) error {
	program := tea.NewProgram(NewModel(fsys, helpers, dir), opts...)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}

	return nil
}
