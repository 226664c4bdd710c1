//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, etc.)
package diriter_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-iter/pkg/diriter"
)

func TestCensusHonoursVisibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*diriter.Finder) error
		expected []string
	}{
		{
			name:     "defaults",
			setup:    func(*diriter.Finder) error { return nil },
			expected: sampleSequence,
		},
		{
			name: "hidden included",
			setup: func(f *diriter.Finder) error {
				f.IncludeHidden()
				return nil
			},
			expected: []string{
				"/tree/.h.txt",
				"/tree/.hidden/g.txt",
				"/tree/a.txt",
				"/tree/b/c.txt",
				"/tree/b/d/e.txt",
				"/tree/f.md",
			},
		},
		{
			name:     "extension",
			setup:    func(f *diriter.Finder) error { return f.AddExtension("md") },
			expected: []string{"/tree/f.md"},
		},
		{
			name:     "relative pattern",
			setup:    func(f *diriter.Finder) error { return f.AddPattern("b/d/*") },
			expected: []string{"/tree/b/d/e.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			finder := newMockFinder(t, sampleTree(), "/tree")
			g.Expect(tt.setup(finder)).To(Succeed())

			census, err := finder.Census()
			g.Expect(err).ShouldNot(HaveOccurred())
			g.Expect(census).To(Equal(tt.expected))
		})
	}
}

func TestCensusIgnoresFilters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	finder := newMockFinder(t, sampleTree(), "/tree")
	g.Expect(finder.AddFilters([]string{diriter.OrderByName, diriter.Reverse})).To(Succeed())

	census, err := finder.Census()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(census).To(Equal(sampleSequence))
}
