package tui

import (
	"fmt"
	"strings"

	"github.com/joe/file-helpers/internal/tui/shared"
)

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle(m.dir))
	builder.WriteString("\n")

	if m.loading {
		fmt.Fprintf(&builder, "%s Loading...\n", m.spinner.View())
	}

	if m.err != nil {
		builder.WriteString(shared.RenderActionableError(m.err, m.errPath, m.width))
		builder.WriteString("\n")
	}

	builder.WriteString(m.renderEntries())

	if m.preview != nil {
		builder.WriteString("\n")
		builder.WriteString(m.renderPreview())
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim("↑/k ↓/j move • enter open • backspace/h up • r reload • q quit"))
	builder.WriteString("\n")

	return builder.String()
}

func (m Model) renderEntries() string {
	if len(m.entries) == 0 {
		if m.loading || m.err != nil {
			return ""
		}

		return shared.RenderDim("(empty)") + "\n"
	}

	start, end := m.visibleRange()

	var builder strings.Builder

	for i := start; i < end; i++ {
		entry := m.entries[i]

		name := entry.Name
		if entry.IsDir {
			name += "/"
		}

		prefix := "  "
		if i == m.cursor {
			prefix = shared.PromptArrow
		}

		line := prefix + shared.EntryStyle(entry.IsDir, i == m.cursor).Render(name)
		if !entry.IsDir {
			line += "  " + shared.RenderDim(shared.FormatBytes(entry.Size))
		}

		builder.WriteString(line)
		builder.WriteString("\n")
	}

	if end < len(m.entries) {
		builder.WriteString(shared.RenderDim(fmt.Sprintf("  ... and %d more", len(m.entries)-end)))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (m Model) renderPreview() string {
	header := shared.TruncatePath(m.preview.Path, m.width-shared.DefaultPadding*2)
	size := shared.FormatBytes(int64(m.preview.Size))

	if m.preview.Binary {
		return shared.RenderBox(header + "\n" + shared.RenderDim("binary file, "+size))
	}

	lines := strings.Split(m.preview.Text, "\n")
	if len(lines) > PreviewLines {
		lines = lines[:PreviewLines]
	}

	return shared.RenderBox(header + "  " + shared.RenderDim(size) + "\n" + strings.Join(lines, "\n"))
}

// visibleRange returns the window of entries around the cursor that fits the terminal.
func (m Model) visibleRange() (int, int) {
	rows := DefaultVisibleRows
	if m.height > 0 {
		// title, help line and margins
		const chrome = 6

		rows = max(m.height-chrome, 1)
	}

	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}

	end := min(start+rows, len(m.entries))

	return start, end
}
