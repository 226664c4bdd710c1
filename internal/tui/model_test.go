package tui_test

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joe/dir-iter/internal/tui"
	"github.com/joe/dir-iter/internal/tui/shared"
	"github.com/joe/dir-iter/pkg/diriter"
	"github.com/joe/dir-iter/pkg/filesystem"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send delivers msg and then, synchronously, whatever the returned command
// produces, the way the program loop would.
func send(model tea.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	updated, cmd := model.Update(msg)

	if cmd != nil {
		if next := cmd(); next != nil {
			if _, quit := next.(tea.QuitMsg); !quit {
				updated, cmd = updated.Update(next)
			}
		}
	}

	m, ok := updated.(tui.Model)
	Expect(ok).To(BeTrue())

	return m, cmd
}

var _ = Describe("Model", func() {
	var (
		fsys  *filesystem.MockFileSystem
		model tui.Model
	)

	BeforeEach(func() {
		fsys = filesystem.NewMockFileSystem()
		for _, p := range []string{"/tree/a.txt", "/tree/b/c.txt", "/tree/d.txt"} {
			fsys.AddFile(p, nil, fsys.Now())
		}

		finder, err := diriter.New("/tree", diriter.WithFileSystem(fsys))
		Expect(err).ShouldNot(HaveOccurred())

		model = tui.NewModel(finder.Iterator(), "/tree")
		model, _ = send(model, model.Init()())
	})

	Describe("Startup", func() {
		It("previews the first file without emitting it", func() {
			Expect(model.Upcoming()).To(Equal("a.txt"))
			Expect(model.Trail()).To(BeEmpty())
			Expect(model.Busy()).To(BeFalse())
		})

		It("ignores keys until the first preview arrives", func() {
			finder, err := diriter.New("/tree", diriter.WithFileSystem(fsys))
			Expect(err).ShouldNot(HaveOccurred())

			fresh := tui.NewModel(finder.Iterator(), "/tree")
			initial := fresh.Init()
			Expect(fresh.Busy()).To(BeTrue())

			updated, cmd := fresh.Update(runeKey('n'))
			Expect(cmd).To(BeNil())

			fresh, _ = send(updated, initial())
			Expect(fresh.Trail()).To(BeEmpty())
			Expect(fresh.Upcoming()).To(Equal("a.txt"))
			Expect(fresh.Busy()).To(BeFalse())
		})
	})

	Describe("Stepping forward", func() {
		It("appends to the trail and moves the preview", func() {
			model, _ = send(model, runeKey('n'))

			Expect(model.Trail()).To(Equal([]string{"a.txt"}))
			Expect(model.Upcoming()).To(Equal("b/c.txt"))
			Expect(model.Status()).To(Equal("1 visited"))
		})

		It("accepts j and the down arrow", func() {
			model, _ = send(model, runeKey('j'))
			model, _ = send(model, tea.KeyMsg{Type: tea.KeyDown})

			Expect(model.Trail()).To(Equal([]string{"a.txt", "b/c.txt"}))
		})

		It("reports the end of the tree", func() {
			for range 4 {
				model, _ = send(model, runeKey('n'))
			}

			Expect(model.Trail()).To(Equal([]string{"a.txt", "b/c.txt", "d.txt"}))
			Expect(model.Upcoming()).To(BeEmpty())
			Expect(model.Status()).To(Equal("end of tree"))
		})

		It("shows files created while browsing", func() {
			model, _ = send(model, runeKey('n'))
			fsys.AddFile("/tree/b/0.txt", nil, fsys.Now())

			model, _ = send(model, runeKey('n'))
			Expect(model.Trail()).To(Equal([]string{"a.txt", "b/0.txt"}))
		})
	})

	Describe("Stepping back", func() {
		It("undoes the last step", func() {
			model, _ = send(model, runeKey('n'))
			model, _ = send(model, runeKey('n'))
			model, _ = send(model, runeKey('p'))

			Expect(model.Trail()).To(Equal([]string{"a.txt"}))
			Expect(model.Upcoming()).To(Equal("b/c.txt"))
			Expect(model.Status()).To(Equal("undid b/c.txt"))

			model, _ = send(model, runeKey('n'))
			Expect(model.Trail()).To(Equal([]string{"a.txt", "b/c.txt"}))
		})

		It("says when there is nothing to undo", func() {
			model, _ = send(model, tea.KeyMsg{Type: tea.KeyUp})

			Expect(model.Trail()).To(BeEmpty())
			Expect(model.Status()).To(Equal("nothing to undo"))
			Expect(model.View()).To(ContainSubstring(shared.RenderWarning("nothing to undo")))
		})
	})

	Describe("Errors", func() {
		It("stops and shows suggestions when a filter misbehaves", func() {
			provider := diriter.FilterSet{
				"smuggle": func(entries []diriter.Entry) []diriter.Entry {
					return append(entries, diriter.Entry{Path: "/elsewhere"})
				},
			}

			finder, err := diriter.New("/tree", diriter.WithFileSystem(fsys), diriter.WithFilterProvider(provider))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(finder.AddFilter("smuggle")).To(Succeed())

			broken := tui.NewModel(finder.Iterator(), "/tree")
			broken, _ = send(broken, broken.Init()())

			Expect(broken.Err()).To(MatchError(diriter.ErrInvalidFilterResult))
			Expect(broken.View()).To(ContainSubstring("must not add or repeat"))

			broken, _ = send(broken, runeKey('n'))
			Expect(broken.Trail()).To(BeEmpty())
		})
	})

	Describe("View", func() {
		It("renders the trail, the preview and the key help", func() {
			model, _ = send(model, tea.WindowSizeMsg{Width: 80, Height: 24})
			model, _ = send(model, runeKey('n'))

			view := model.View()
			Expect(view).To(ContainSubstring("/tree"))
			Expect(view).To(ContainSubstring("a.txt"))
			Expect(view).To(ContainSubstring("Up next"))
			Expect(view).To(ContainSubstring("b/c.txt"))
			Expect(view).To(ContainSubstring("quit"))
		})

		It("toggles the full help", func() {
			short := model.View()
			model, _ = send(model, runeKey('?'))

			Expect(model.View()).NotTo(Equal(short))
		})
	})

	Describe("Quitting", func() {
		for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
			It("quits on "+msg.String(), func() {
				updated, cmd := model.Update(msg)

				Expect(cmd).NotTo(BeNil())
				Expect(cmd()).To(Equal(tea.Quit()))
				Expect(strings.TrimSpace(updated.View())).To(BeEmpty())
			})
		}
	})
})
