package reducer

import (
	"fmt"
	"regexp"

	"github.com/rmohr/readingplan/pkg/api"
	"github.com/sirupsen/logrus"
)

type BookReducer struct {
	name             string
	books            []api.Book
	onlyAllowRegex   []string
	forceIgnoreRegex []string
	loader           ReducerCatalogLoader
}

func (r *BookReducer) Load() error {
	catalog, err := r.loader.Load()
	if err != nil {
		return err
	}
	r.name = catalog.Name
	r.books = catalog.Books
	return nil
}

func (r *BookReducer) CatalogName() string {
	return r.name
}

func (r *BookReducer) BookCount() int {
	return len(r.books)
}

// Reduce splits the loaded books into the ones to solve for and the ones
// which are ignored. A book is kept if it matches any of the allow
// expressions, or if there are none, and matches none of the ignore
// expressions. Books are matched by name, see api.Book.Name, and keep their
// relative order.
func (r *BookReducer) Reduce() (kept []api.Book, ignored []api.Book, err error) {
	allow, err := compile(r.onlyAllowRegex)
	if err != nil {
		return nil, nil, err
	}
	ignore, err := compile(r.forceIgnoreRegex)
	if err != nil {
		return nil, nil, err
	}

	kept = []api.Book{}
	for i, book := range r.books {
		name := book.Name(i)
		allowed := len(allow) == 0
		for _, rex := range allow {
			if rex.MatchString(name) {
				allowed = true
				break
			}
		}
		if !allowed {
			logrus.Warnf("Book %s is not explicitly allowed.", name)
			ignored = append(ignored, book)
			continue
		}

		dropped := false
		for _, rex := range ignore {
			if rex.MatchString(name) {
				logrus.Warnf("Book %s is forcefully ignored by regex '%v'.", name, rex)
				dropped = true
				break
			}
		}
		if dropped {
			ignored = append(ignored, book)
			continue
		}
		kept = append(kept, book)
	}
	return kept, ignored, nil
}

func compile(expressions []string) ([]*regexp.Regexp, error) {
	var compiled []*regexp.Regexp
	for _, expr := range expressions {
		rex, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile regex '%v': %v", expr, err)
		}
		compiled = append(compiled, rex)
	}
	return compiled, nil
}

func NewBookReducer(catalogFiles []string, onlyAllowRegex []string, forceIgnoreRegex []string) *BookReducer {
	return &BookReducer{
		onlyAllowRegex:   onlyAllowRegex,
		forceIgnoreRegex: forceIgnoreRegex,
		loader: CatalogLoader{
			catalogFiles: catalogFiles,
		},
	}
}

func Reduce(catalogFiles []string, onlyAllowRegex []string, forceIgnoreRegex []string) (kept []api.Book, ignored []api.Book, err error) {
	bookReducer := NewBookReducer(catalogFiles, onlyAllowRegex, forceIgnoreRegex)
	logrus.Info("Loading catalog.")
	if err := bookReducer.Load(); err != nil {
		return nil, nil, err
	}
	logrus.Infof("Loaded %d books.", bookReducer.BookCount())
	return bookReducer.Reduce()
}
