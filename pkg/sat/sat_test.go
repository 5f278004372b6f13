package sat

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/cover"
)

func book(minutes int, topics ...string) api.Book {
	return api.Book{Minutes: minutes, Topics: topics}
}

func referenceBooks() []api.Book {
	return []api.Book{
		book(300, "Backtracking", "Dynamic_Programming", "Greedy"),
		book(125, "Dynamic_Programming"),
		book(35, "Backtracking"),
		book(85, "Greedy"),
		book(120, "Backtracking", "Dynamic_Programming"),
		book(80, "Greedy", "Backtracking"),
	}
}

func Test(t *testing.T) {
	tests := []struct {
		name      string
		books     []api.Book
		required  []string
		cost      int
		selection []int
	}{
		{
			name:      "should resolve the reference catalog",
			books:     referenceBooks(),
			cost:      200,
			selection: []int{4, 5},
		},
		{
			name:      "should resolve required topics only",
			books:     referenceBooks(),
			required:  []string{"Greedy"},
			cost:      80,
			selection: []int{5},
		},
		{
			name:      "should resolve an empty catalog",
			books:     nil,
			cost:      0,
			selection: []int{},
		},
		{
			name:      "should resolve books without topics",
			books:     []api.Book{book(3), book(4)},
			cost:      0,
			selection: []int{},
		},
		{
			name:      "should resolve free books",
			books:     []api.Book{book(0, "a"), book(0, "a", "b"), book(0, "c")},
			cost:      0,
			selection: []int{0, 1, 2},
		},
		{
			name:      "should resolve duplicated topics",
			books:     []api.Book{book(9, "a", "a", "b"), book(4, "b", "b")},
			cost:      9,
			selection: []int{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			solution, err := Solve(tt.books, tt.required)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(solution.Cost).To(Equal(tt.cost))
			g.Expect(solution.Selection).To(Equal(tt.selection))
		})
	}
}

func TestInfeasible(t *testing.T) {
	g := NewGomegaWithT(t)
	solution, err := Solve(referenceBooks(), []string{"Graphs"})
	g.Expect(err).To(MatchError(cover.ErrInfeasible))
	g.Expect(err).To(MatchError("no selection of books covers all topics: no book covers Graphs"))
	g.Expect(solution).To(BeNil())
}

func TestInvalidBooks(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := Solve([]api.Book{book(-1, "a")}, nil)
	g.Expect(err).To(MatchError("book 0 is invalid: negative reading time -1"))
	_, err = Solve([]api.Book{book(1, "a"), book(1, "")}, nil)
	g.Expect(err).To(MatchError("book 1 is invalid: empty topic label"))
}

func TestEmptyRequiredTopic(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := Solve(referenceBooks(), []string{"Greedy", ""})
	g.Expect(err).To(MatchError("required topic 1 is empty"))
	g.Expect(err).ToNot(MatchError(cover.ErrInfeasible))

	_, coverErr := cover.NewSolver(1, 0).Solve(context.Background(), referenceBooks(), []string{"Greedy", ""})
	g.Expect(coverErr).To(MatchError(err.Error()))
}

func TestLoadBooksTwice(t *testing.T) {
	g := NewGomegaWithT(t)
	r := NewResolver()
	g.Expect(r.LoadBooks([]api.Book{book(1000, "a")})).To(Succeed())
	g.Expect(r.ConstructRequirements(nil)).To(Succeed())
	g.Expect(r.LoadBooks(referenceBooks())).To(Succeed())
	_, err := r.Resolve()
	g.Expect(err).To(MatchError("requirements were not constructed"))

	g.Expect(r.ConstructRequirements(nil)).To(Succeed())
	solution, err := r.Resolve()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution.Cost).To(Equal(200))
	g.Expect(solution.Selection).To(Equal([]int{4, 5}))

	g.Expect(r.LoadBooks(referenceBooks())).To(Succeed())
	g.Expect(r.ConstructRequirements(nil)).To(Succeed())
	solution, err = r.Resolve()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(solution.Cost).To(Equal(200))
}

func TestResolveWithoutRequirements(t *testing.T) {
	g := NewGomegaWithT(t)
	r := NewResolver()
	g.Expect(r.LoadBooks(referenceBooks())).To(Succeed())
	_, err := r.Resolve()
	g.Expect(err).To(MatchError("requirements were not constructed"))
}

func TestAgreesWithExhaustiveSearch(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 40; i++ {
		t.Run(fmt.Sprintf("instance: %d", i), func(t *testing.T) {
			g := NewGomegaWithT(t)
			topics := 1 + rnd.Intn(6)
			books := make([]api.Book, 1+rnd.Intn(10))
			for j := range books {
				books[j].Minutes = rnd.Intn(100)
				books[j].Topics = []string{fmt.Sprintf("t%d", rnd.Intn(topics))}
				for k := 0; k < topics; k++ {
					if rnd.Intn(3) == 0 {
						books[j].Topics = append(books[j].Topics, fmt.Sprintf("t%d", k))
					}
				}
			}

			want, err := cover.NewSolver(1, 0).Solve(context.Background(), books, nil)
			g.Expect(err).ToNot(HaveOccurred())
			got, err := Solve(books, nil)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(got.Cost).To(Equal(want.Cost))
			g.Expect(got.Topics).To(Equal(want.Topics))

			covered := map[string]bool{}
			for _, index := range got.Selection {
				for _, topic := range books[index].Topics {
					covered[topic] = true
				}
			}
			for _, topic := range got.Topics {
				g.Expect(covered).To(HaveKey(topic))
			}
		})
	}
}
