package reducer

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/api/readingplan"
)

type MockCatalogLoader struct {
	catalog *readingplan.Catalog
}

func (m *MockCatalogLoader) Load() (*readingplan.Catalog, error) {
	return m.catalog, nil
}

func newBook(title string, minutes int, topics ...string) api.Book {
	return api.Book{Title: title, Minutes: minutes, Topics: topics}
}

func reduce(books []api.Book, onlyAllow, forceIgnore []string) (kept []api.Book, ignored []api.Book, err error) {
	bookReducer := &BookReducer{
		onlyAllowRegex:   onlyAllow,
		forceIgnoreRegex: forceIgnore,
		loader:           &MockCatalogLoader{catalog: &readingplan.Catalog{Name: "mock", Books: books}},
	}
	if err := bookReducer.Load(); err != nil {
		return nil, nil, err
	}
	return bookReducer.Reduce()
}

func TestReducerZeroBooks(t *testing.T) {
	g := NewGomegaWithT(t)
	kept, ignored, err := reduce(nil, nil, nil)

	g.Expect(err).Should(BeNil())
	g.Expect(kept).Should(BeEmpty())
	g.Expect(ignored).Should(BeEmpty())
}

func TestReducer(t *testing.T) {
	books := []api.Book{
		newBook("Greedy Algorithms", 85, "Greedy"),
		newBook("Dynamic Programming", 125, "Dynamic_Programming"),
		newBook("", 35, "Backtracking"),
		newBook("Backtracking and Greedy", 80, "Greedy", "Backtracking"),
	}
	tests := []struct {
		name        string
		onlyAllow   []string
		forceIgnore []string
		kept        []api.Book
		ignored     []api.Book
	}{
		{
			name: "should keep everything without expressions",
			kept: books,
		},
		{
			name:        "should drop ignored books",
			forceIgnore: []string{"Greedy"},
			kept:        []api.Book{books[1], books[2]},
			ignored:     []api.Book{books[0], books[3]},
		},
		{
			name:      "should keep only allowed books",
			onlyAllow: []string{"^Dynamic", "Backtracking"},
			kept:      []api.Book{books[1], books[3]},
			ignored:   []api.Book{books[0], books[2]},
		},
		{
			name:      "should match untitled books by position",
			onlyAllow: []string{"^#3$"},
			kept:      []api.Book{books[2]},
			ignored:   []api.Book{books[0], books[1], books[3]},
		},
		{
			name:        "should let ignore win over allow",
			onlyAllow:   []string{"Greedy"},
			forceIgnore: []string{"^Backtracking"},
			kept:        []api.Book{books[0]},
			ignored:     []api.Book{books[1], books[2], books[3]},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			kept, ignored, err := reduce(books, tt.onlyAllow, tt.forceIgnore)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(kept).To(Equal(tt.kept))
			g.Expect(ignored).To(Equal(tt.ignored))
		})
	}
}

func TestReducerInvalidRegex(t *testing.T) {
	g := NewGomegaWithT(t)
	_, _, err := reduce([]api.Book{newBook("a", 1, "x")}, []string{"("}, nil)
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(HavePrefix("failed to compile regex '('"))

	_, _, err = reduce([]api.Book{newBook("a", 1, "x")}, nil, []string{"[a"})
	g.Expect(err).To(HaveOccurred())
}

func TestReduceFromCatalogFiles(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "catalog.yaml")
	g.Expect(os.WriteFile(file, []byte(`
name: mixed
books:
- title: Keep me
  minutes: 10
  topics: [a]
- title: Drop me
  minutes: 20
  topics: [b]
`), 0660)).To(Succeed())

	kept, ignored, err := Reduce([]string{file}, nil, []string{"^Drop"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(kept).To(Equal([]api.Book{newBook("Keep me", 10, "a")}))
	g.Expect(ignored).To(Equal([]api.Book{newBook("Drop me", 20, "b")}))

	bookReducer := NewBookReducer([]string{file}, nil, nil)
	g.Expect(bookReducer.Load()).To(Succeed())
	g.Expect(bookReducer.CatalogName()).To(Equal("mixed"))
	g.Expect(bookReducer.BookCount()).To(Equal(2))
}
