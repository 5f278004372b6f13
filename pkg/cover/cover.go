package cover

import (
	"context"
	"fmt"

	"github.com/rmohr/readingplan/pkg/api"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// how many combinations are evaluated between two context checks
const cancelCheckInterval = 4096

// Solution is a cheapest selection of books covering all target topics.
type Solution struct {
	Cost int
	// Selection holds the indices of the chosen books in ascending order.
	Selection []int
	// Topics is the sorted target the selection covers.
	Topics []string
}

type Solver struct {
	workers  int
	maxBooks int
}

// NewSolver returns a solver which shards the enumeration across the given
// number of workers. A workers value below two searches sequentially. If
// maxBooks is positive, larger inputs are rejected with ErrTooManyBooks.
func NewSolver(workers, maxBooks int) *Solver {
	return &Solver{
		workers:  workers,
		maxBooks: maxBooks,
	}
}

// MinimumCoverCost returns the minimum total reading time of a selection of
// books which covers every topic any of the books covers.
func MinimumCoverCost(books []api.Book) (int, error) {
	solution, err := NewSolver(1, 0).Solve(context.Background(), books, nil)
	if err != nil {
		return 0, err
	}
	return solution.Cost, nil
}

// Solve finds the cheapest selection of books covering required. A nil
// required list means the union of all book topics. An empty target is
// covered by the empty selection at cost zero. When several selections share
// the minimum cost, the one found first is returned: fewer books first, then
// the lexicographically smallest indices.
func (s *Solver) Solve(ctx context.Context, books []api.Book, required []string) (*Solution, error) {
	if err := s.CheckLimit(len(books)); err != nil {
		return nil, err
	}
	in, err := newInstance(books, required)
	if err != nil {
		return nil, err
	}
	if len(in.topics) == 0 {
		return &Solution{Cost: 0, Selection: []int{}, Topics: in.topics}, nil
	}

	logrus.Debugf("Enumerating subsets of %d books over %d topics.", len(books), len(in.topics))

	var best *candidate
	if s.workers > 1 {
		best, err = in.searchParallel(ctx, s.workers)
	} else {
		best, err = in.searchSequential(ctx)
	}
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, ErrInfeasible
	}
	return &Solution{Cost: best.cost, Selection: best.selection, Topics: in.topics}, nil
}

// CheckLimit returns ErrTooManyBooks if the solver was configured with a
// book limit below count.
func (s *Solver) CheckLimit(count int) error {
	if s.maxBooks > 0 && count > s.maxBooks {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyBooks, count, s.maxBooks)
	}
	return nil
}

type candidate struct {
	cost      int
	selection []int
}

// better reports whether c should replace other. Candidates are compared by
// cost, then by size, then lexicographically, which is the order in which the
// sequential search finds them.
func (c *candidate) better(other *candidate) bool {
	if other == nil {
		return true
	}
	if c.cost != other.cost {
		return c.cost < other.cost
	}
	if len(c.selection) != len(other.selection) {
		return len(c.selection) < len(other.selection)
	}
	return slices.Compare(c.selection, other.selection) < 0
}

func (in *instance) searchSequential(ctx context.Context) (*candidate, error) {
	var best *candidate
	for r := 1; r <= len(in.costs); r++ {
		found, err := in.searchSize(ctx, r)
		if err != nil {
			return nil, err
		}
		if found != nil && found.better(best) {
			best = found
		}
	}
	return best, nil
}

// searchSize returns the cheapest covering combination of exactly r books, or
// nil if none of them covers the target.
func (in *instance) searchSize(ctx context.Context, r int) (*candidate, error) {
	var best *candidate
	comb := NewCombinations(len(in.costs), r)
	coverage := newTopicSet(len(in.topics))
	for i := 0; comb.Next(); i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		indices := comb.Indices()
		coverage.reset()
		total := 0
		for _, j := range indices {
			total += in.costs[j]
			coverage.union(in.masks[j])
		}
		if !coverage.contains(in.target) {
			continue
		}
		if best == nil {
			best = &candidate{cost: total, selection: slices.Clone(indices)}
		} else if total < best.cost {
			best.cost = total
			best.selection = append(best.selection[:0], indices...)
		}
	}
	return best, nil
}
