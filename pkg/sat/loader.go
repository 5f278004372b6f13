package sat

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/cover"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Var binds a SAT variable to the book it selects.
type Var struct {
	satVarName string
	Index      int
	Book       *api.Book
}

// Model is a weighted MaxSAT encoding of a cover problem: a hard clause per
// topic demanding one of its providers and a soft clause per book, weighted
// by its reading time, asking to leave it out.
type Model struct {
	books   []*Var
	topics  []string
	hard    []maxsat.Constr
	soft    []maxsat.Constr
	cheapTo map[string]*Var
}

type Loader struct {
	m         *Model
	provides  map[string][]*Var
	varsCount int
}

func NewLoader() *Loader {
	return &Loader{
		m: &Model{
			cheapTo: map[string]*Var{},
		},
		provides:  map[string][]*Var{},
		varsCount: 0,
	}
}

// Load creates a variable for every book and registers which topics it provides.
func (loader *Loader) Load(books []api.Book) error {
	for i := range books {
		book := &books[i]
		if book.Minutes < 0 {
			return &cover.InvalidBookError{Index: i, Reason: fmt.Sprintf("negative reading time %d", book.Minutes)}
		}
		v := &Var{
			satVarName: loader.ticket(),
			Index:      i,
			Book:       book,
		}
		loader.m.books = append(loader.m.books, v)

		seen := map[string]bool{}
		for _, topic := range book.Topics {
			if topic == "" {
				return &cover.InvalidBookError{Index: i, Reason: "empty topic label"}
			}
			if seen[topic] {
				continue
			}
			seen[topic] = true
			loader.provides[topic] = append(loader.provides[topic], v)
			if cheapest, ok := loader.m.cheapTo[topic]; !ok || book.Minutes < cheapest.Book.Minutes {
				loader.m.cheapTo[topic] = v
			}
		}

		if book.Minutes > 0 {
			loader.m.soft = append(loader.m.soft, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(v.satVarName)}, book.Minutes))
		}
		logrus.Debugf("Book %s is variable %s.", book.Name(i), v.satVarName)
	}
	logrus.Debugf("Generated %v variables.", len(loader.m.books))
	return nil
}

func (loader *Loader) constructRequirements(required []string) (*Model, error) {
	var topics []string
	if required == nil {
		topics = maps.Keys(loader.provides)
	} else {
		for i, topic := range required {
			if topic == "" {
				return nil, fmt.Errorf("required topic %d is empty", i)
			}
		}
		topics = slices.Clone(required)
	}
	slices.Sort(topics)
	topics = slices.Compact(topics)

	for _, topic := range topics {
		providers := loader.provides[topic]
		if len(providers) == 0 {
			return nil, fmt.Errorf("%w: no book covers %s", cover.ErrInfeasible, topic)
		}
		lits := make([]maxsat.Lit, 0, len(providers))
		for _, p := range providers {
			lits = append(lits, maxsat.Var(p.satVarName))
		}
		loader.m.hard = append(loader.m.hard, maxsat.HardClause(lits...))
	}
	loader.m.topics = topics
	return loader.m, nil
}

func (loader *Loader) ticket() string {
	loader.varsCount++
	return "x" + strconv.Itoa(loader.varsCount)
}
