package main

import (
	"context"
	"fmt"

	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/catalog"
	"github.com/rmohr/readingplan/pkg/cover"
	"github.com/rmohr/readingplan/pkg/reducer"
	"github.com/rmohr/readingplan/pkg/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	StrategyBruteForce = "bruteforce"
	StrategySAT        = "sat"
)

type solveHelperOpts struct {
	catalogs         []string
	required         []string
	forceIgnoreRegex []string
	onlyAllowRegex   []string
	workers          int
	maxBooks         int
}

var solvehelperopts = solveHelperOpts{}

func addSolveHelperFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&solvehelperopts.catalogs, "catalog", "c", []string{catalog.DefaultCatalogFileName}, "catalog file. Can be specified multiple times. Looked up in the XDG config directories if it does not exist locally.")
	cmd.Flags().StringArrayVar(&solvehelperopts.required, "require", nil, "topic which has to be covered. Can be specified multiple times. Defaults to all topics of the catalog.")
	cmd.Flags().StringArrayVar(&solvehelperopts.forceIgnoreRegex, "force-ignore-regex", nil, "books matching these regex patterns are not considered")
	cmd.Flags().StringArrayVar(&solvehelperopts.onlyAllowRegex, "only-allow-regex", nil, "only books matching these regex patterns are considered")
	cmd.Flags().IntVarP(&solvehelperopts.workers, "workers", "w", 1, "number of workers sharing the exhaustive search")
	cmd.Flags().IntVar(&solvehelperopts.maxBooks, "max-books", 24, "refuse exhaustive searches over more books than this, 0 disables the limit")
}

// requiredTopics returns nil unless topics were explicitly requested, which
// makes the solvers target every topic of the catalog.
func requiredTopics(cmd *cobra.Command) []string {
	if !cmd.Flags().Changed("require") {
		return nil
	}
	return solvehelperopts.required
}

func loadBooks() (name string, books []api.Book, err error) {
	files := make([]string, 0, len(solvehelperopts.catalogs))
	for _, c := range solvehelperopts.catalogs {
		file, err := catalog.FindCatalogFile(c)
		if err != nil {
			return "", nil, err
		}
		files = append(files, file)
	}
	bookReducer := reducer.NewBookReducer(files, solvehelperopts.onlyAllowRegex, solvehelperopts.forceIgnoreRegex)
	logrus.Info("Loading catalog.")
	if err := bookReducer.Load(); err != nil {
		return "", nil, err
	}
	logrus.Infof("Loaded %d books.", bookReducer.BookCount())
	books, ignored, err := bookReducer.Reduce()
	if err != nil {
		return "", nil, err
	}
	if len(ignored) > 0 {
		logrus.Infof("Ignoring %d books.", len(ignored))
	}
	return bookReducer.CatalogName(), books, nil
}

// checkLimits applies the limits of a strategy which don't depend on the
// search itself, so that they hold for cached answers too.
func checkLimits(strategy string, books []api.Book) error {
	if strategy == StrategyBruteForce {
		return cover.NewSolver(solvehelperopts.workers, solvehelperopts.maxBooks).CheckLimit(len(books))
	}
	return nil
}

func solve(ctx context.Context, strategy string, books []api.Book, required []string) (*cover.Solution, error) {
	logrus.Infof("Solving with strategy %s.", strategy)
	switch strategy {
	case StrategyBruteForce:
		return cover.NewSolver(solvehelperopts.workers, solvehelperopts.maxBooks).Solve(ctx, books, required)
	case StrategySAT:
		return sat.Solve(books, required)
	default:
		return nil, fmt.Errorf("unknown strategy %s, expected %s or %s", strategy, StrategyBruteForce, StrategySAT)
	}
}
