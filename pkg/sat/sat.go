package sat

import (
	"fmt"

	"github.com/crillab/gophersat/maxsat"
	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/cover"
	"github.com/sirupsen/logrus"
)

// Resolver finds minimum cost covers with gophersat's MaxSAT solver. It
// solves the same problem as cover.Solver and is used to cross-check it.
type Resolver struct {
	loader *Loader
	model  *Model
}

func NewResolver() *Resolver {
	return &Resolver{loader: NewLoader()}
}

// LoadBooks replaces all previously loaded books and requirements.
func (r *Resolver) LoadBooks(books []api.Book) error {
	r.loader = NewLoader()
	r.model = nil
	return r.loader.Load(books)
}

// ConstructRequirements sets the topics to cover. A nil slice means every
// topic of the loaded books.
func (r *Resolver) ConstructRequirements(required []string) error {
	logrus.Info("Adding required topics to the resolver.")
	model, err := r.loader.constructRequirements(required)
	if err != nil {
		return err
	}
	r.model = model
	return nil
}

func (r *Resolver) Resolve() (*cover.Solution, error) {
	if r.model == nil {
		return nil, fmt.Errorf("requirements were not constructed")
	}
	if len(r.model.topics) == 0 {
		return &cover.Solution{Cost: 0, Selection: []int{}, Topics: r.model.topics}, nil
	}
	if len(r.model.soft) == 0 {
		// every book is free, any provider per topic is optimal
		return r.model.freeSelection(), nil
	}

	logrus.Infof("Solving %d hard and %d soft constraints.", len(r.model.hard), len(r.model.soft))
	problem := maxsat.New(append(r.model.hard, r.model.soft...)...)
	bindings, cost := problem.Solve()
	if bindings == nil {
		return nil, cover.ErrInfeasible
	}

	solution := &cover.Solution{Selection: []int{}, Topics: r.model.topics}
	for _, v := range r.model.books {
		if bindings[v.satVarName] {
			solution.Selection = append(solution.Selection, v.Index)
			solution.Cost += v.Book.Minutes
		}
	}
	if solution.Cost != cost {
		return nil, fmt.Errorf("solver reported cost %d, but the selected books take %d minutes", cost, solution.Cost)
	}
	return solution, nil
}

func (m *Model) freeSelection() *cover.Solution {
	selected := map[int]bool{}
	for _, topic := range m.topics {
		selected[m.cheapTo[topic].Index] = true
	}
	solution := &cover.Solution{Selection: []int{}, Topics: m.topics}
	for _, v := range m.books {
		if selected[v.Index] {
			solution.Selection = append(solution.Selection, v.Index)
		}
	}
	return solution
}

// Solve is a shorthand for loading, constraining and resolving in one go.
func Solve(books []api.Book, required []string) (*cover.Solution, error) {
	r := NewResolver()
	if err := r.LoadBooks(books); err != nil {
		return nil, err
	}
	if err := r.ConstructRequirements(required); err != nil {
		return nil, err
	}
	return r.Resolve()
}
