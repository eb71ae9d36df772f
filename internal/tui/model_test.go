package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	pkgerrors "github.com/joe/file-helpers/pkg/errors"
	"github.com/joe/file-helpers/pkg/filehelpers"
	"github.com/joe/file-helpers/pkg/filesystem"
)

// settle runs cmd and feeds every message it produces back into m until no
// commands remain. Spinner ticks are dropped so the loop ends.
func settle(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}

	switch msg := cmd().(type) {
	case nil, spinner.TickMsg:
		return m
	case tea.BatchMsg:
		for _, sub := range msg {
			m = settle(m, sub)
		}

		return m
	default:
		next, nextCmd := m.Update(msg)

		return settle(next.(Model), nextCmd)
	}
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg

	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		msg = tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	next, cmd := m.Update(msg)

	return settle(next.(Model), cmd)
}

func names(entries []ListEntry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Name
	}

	return out
}

var _ = Describe("Model", func() {
	var (
		mock  *filesystem.MockFileSystem
		model Model
	)

	BeforeEach(func() {
		mock = filesystem.NewMockFileSystem()
		mock.AddFile("/work/notes.txt", []byte("line one\nline two\n"))
		mock.AddFile("/work/blob.bin", []byte{0x00, 0x01, 0x02})
		mock.AddFile("/work/models/face.tflite", []byte("weights"))
		mock.AddDir("/work/empty")

		model = NewModel(mock, filehelpers.New(mock), "/work")
		model = settle(model, model.Init())
	})

	Describe("Loading", func() {
		It("lists directories first, then files, by name", func() {
			Expect(names(model.Entries())).To(Equal([]string{"empty", "models", "blob.bin", "notes.txt"}))
			Expect(model.Entries()[2].Size).To(BeEquivalentTo(3))
			Expect(model.loading).To(BeFalse())
		})

		It("releases the listing", func() {
			Expect(mock.ListingsOpen()).To(BeZero())
		})

		It("reports a missing start directory as NotFound", func() {
			missing := NewModel(mock, filehelpers.New(mock), "/nowhere")
			missing = settle(missing, missing.Init())

			Expect(pkgerrors.IsNotFound(missing.Err())).To(BeTrue())
			Expect(missing.View()).To(ContainSubstring("Error:"))
		})
	})

	Describe("Navigation", func() {
		It("moves the cursor within bounds", func() {
			model = press(model, "up")
			Expect(model.Cursor()).To(Equal(0))

			for range 10 {
				model = press(model, "j")
			}

			Expect(model.Cursor()).To(Equal(3))

			model = press(model, "k")
			Expect(model.Cursor()).To(Equal(2))
		})

		It("descends into a directory and back out", func() {
			model = press(model, "down")
			model = press(model, "enter")

			Expect(model.Dir()).To(Equal("/work/models"))
			Expect(names(model.Entries())).To(Equal([]string{"face.tflite"}))

			model = press(model, "backspace")
			Expect(model.Dir()).To(Equal("/work"))
		})

		It("shows an empty directory", func() {
			model = press(model, "enter")

			Expect(model.Dir()).To(Equal("/work/empty"))
			Expect(model.View()).To(ContainSubstring("(empty)"))
		})

		It("keeps the current directory when a reload fails", func() {
			mock.DenyPath("/work")
			model = press(model, "r")

			Expect(model.Dir()).To(Equal("/work"))
			Expect(pkgerrors.IsPermissionDenied(model.Err())).To(BeTrue())
		})
	})

	Describe("Preview", func() {
		It("shows the head of a text file", func() {
			model = press(model, "j")
			model = press(model, "j")
			model = press(model, "j")
			model = press(model, "enter")

			Expect(model.preview).NotTo(BeNil())
			Expect(model.preview.Binary).To(BeFalse())
			Expect(model.View()).To(ContainSubstring("line two"))
		})

		It("marks files with NUL bytes as binary", func() {
			model = press(model, "j")
			model = press(model, "j")
			model = press(model, "enter")

			Expect(model.preview.Binary).To(BeTrue())
			Expect(model.View()).To(ContainSubstring("binary file, 3 B"))
		})

		It("clears the preview when the cursor moves", func() {
			model.cursor = 3
			model = press(model, "enter")
			Expect(model.preview).NotTo(BeNil())

			model = press(model, "k")
			Expect(model.preview).To(BeNil())
		})
	})

	Describe("Quitting", func() {
		It("quits on q", func() {
			next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.Quit()))
			Expect(next.(Model).View()).To(BeEmpty())
		})
	})

	Describe("Window size", func() {
		It("shows only the rows that fit", func() {
			for i := range 30 {
				mock.AddFile(mock.Join("/work/many", string(rune('a'+i%26))+string(rune('a'+i/26))), nil)
			}

			model = NewModel(mock, filehelpers.New(mock), "/work/many")
			model = settle(model, model.Init())

			next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
			model = next.(Model)

			Expect(model.View()).To(ContainSubstring("... and 26 more"))
		})
	})
})

func TestTUI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "TUI Suite")
}
