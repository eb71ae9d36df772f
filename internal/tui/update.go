package tui

import (
	"bytes"
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/file-helpers/internal/tui/shared"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ListingLoadedMsg:
		m.loading = false
		m.err = msg.Err
		m.errPath = msg.Dir

		if msg.Err == nil {
			m.dir = msg.Dir
			m.entries = msg.Entries
			m.cursor = 0
			m.preview = nil
		}

		return m, nil

	case PreviewLoadedMsg:
		m.loading = false
		m.err = msg.Err

		if msg.Err == nil {
			m.preview = msg.Preview
		} else if len(m.entries) > 0 {
			m.errPath = m.entries[m.cursor].Path
		}

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", shared.KeyCtrlC:
		m.quitting = true

		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.preview = nil
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.preview = nil
		}

	case "enter", "right", "l":
		if len(m.entries) == 0 || m.loading {
			return m, nil
		}

		selected := m.entries[m.cursor]
		m.loading = true

		if selected.IsDir {
			return m, tea.Batch(m.spinner.Tick, m.loadDir(selected.Path))
		}

		return m, tea.Batch(m.spinner.Tick, m.loadPreview(selected.Path))

	case "backspace", "left", "h":
		if m.loading {
			return m, nil
		}

		m.loading = true

		return m, tea.Batch(m.spinner.Tick, m.loadDir(m.fs.Join(m.dir, "..")))

	case "r":
		m.loading = true

		return m, tea.Batch(m.spinner.Tick, m.loadDir(m.dir))
	}

	return m, nil
}

// loadDir lists dir with directories first, then files, each sorted by name.
func (m Model) loadDir(dir string) tea.Cmd {
	fsys := m.fs
	helpers := m.helpers

	return func() tea.Msg {
		if err := helpers.Exists(dir); err != nil {
			return ListingLoadedMsg{Dir: dir, Err: err}
		}

		listing := fsys.List(dir)
		defer listing.Close()

		entries := []ListEntry{}

		for listing.HasNextEntry() {
			name := listing.NextEntry()
			entry := ListEntry{Name: name, Path: fsys.Join(dir, name)}

			if info, err := fsys.Stat(entry.Path); err == nil {
				entry.IsDir = info.IsDir()
				entry.Size = info.Size()
			}

			entries = append(entries, entry)
		}

		if err := listing.Err(); err != nil {
			return ListingLoadedMsg{Dir: dir, Err: err}
		}

		sort.Slice(entries, func(i, j int) bool {
			if entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir
			}

			return entries[i].Name < entries[j].Name
		})

		return ListingLoadedMsg{Dir: dir, Entries: entries}
	}
}

// loadPreview reads path in text mode and keeps its first PreviewLimit bytes.
func (m Model) loadPreview(path string) tea.Cmd {
	helpers := m.helpers

	return func() tea.Msg {
		content, err := helpers.GetContents(path, false)
		if err != nil {
			return PreviewLoadedMsg{Err: err}
		}

		preview := &Preview{Path: path, Size: len(content)}

		head := content
		if len(head) > PreviewLimit {
			head = head[:PreviewLimit]
		}

		if bytes.IndexByte(head, 0) >= 0 {
			preview.Binary = true
		} else {
			preview.Text = string(head)
		}

		return PreviewLoadedMsg{Preview: preview}
	}
}
