package main

import (
	"fmt"
	"os"

	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/api/readingplan"
	"github.com/rmohr/readingplan/pkg/cover"
	"golang.org/x/exp/slices"
	"sigs.k8s.io/yaml"
)

func toPlan(name, strategy string, books []api.Book, solution *cover.Solution, cmdline []string) (*readingplan.Plan, error) {
	if err := checkSelection(books, solution); err != nil {
		return nil, err
	}
	planned := make([]readingplan.PlannedBook, 0, len(solution.Selection))
	for _, index := range solution.Selection {
		book := books[index]
		planned = append(planned, readingplan.PlannedBook{
			Index:   index,
			Title:   book.Title,
			Minutes: book.Minutes,
			Topics:  book.Topics,
		})
	}
	return &readingplan.Plan{
		CommandLineArguments: cmdline,
		Catalog:              name,
		Strategy:             strategy,
		Cost:                 solution.Cost,
		Topics:               solution.Topics,
		Books:                planned,
	}, nil
}

// checkSelection makes sure a solution is consistent with the books it was
// computed from, independent of the solver which produced it.
func checkSelection(books []api.Book, solution *cover.Solution) error {
	covered := map[string]bool{}
	total := 0
	for _, index := range solution.Selection {
		if index < 0 || index >= len(books) {
			return fmt.Errorf("selection refers to book %d, but there are only %d books", index, len(books))
		}
		total += books[index].Minutes
		for _, topic := range books[index].Topics {
			covered[topic] = true
		}
	}
	if total != solution.Cost {
		return fmt.Errorf("selection takes %d minutes, but the solution claims %d", total, solution.Cost)
	}
	for _, topic := range solution.Topics {
		if !covered[topic] {
			return fmt.Errorf("selection does not cover topic %s", topic)
		}
	}
	return nil
}

// fromPlan turns a stored plan back into a solution for books and makes sure
// it still is one.
func fromPlan(books []api.Book, required []string, plan *readingplan.Plan) (*cover.Solution, error) {
	var target []string
	if required == nil {
		target = cover.Universe(books)
	} else {
		target = slices.Clone(required)
		slices.Sort(target)
		target = slices.Compact(target)
	}
	if !slices.Equal(plan.Topics, target) {
		return nil, fmt.Errorf("plan covers topics %v, expected %v", plan.Topics, target)
	}

	solution := &cover.Solution{Cost: plan.Cost, Selection: make([]int, 0, len(plan.Books)), Topics: plan.Topics}
	for i, book := range plan.Books {
		if i > 0 && book.Index <= plan.Books[i-1].Index {
			return nil, fmt.Errorf("plan lists book %d out of order", book.Index)
		}
		solution.Selection = append(solution.Selection, book.Index)
	}
	if err := checkSelection(books, solution); err != nil {
		return nil, err
	}
	return solution, nil
}

func writePlan(plan *readingplan.Plan, file string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %v", err)
	}
	if err := os.WriteFile(file, data, 0666); err != nil {
		return fmt.Errorf("failed to write plan file: %v", err)
	}
	return nil
}
