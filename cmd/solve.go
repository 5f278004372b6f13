package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rmohr/readingplan/pkg/api/readingplan"
	"github.com/rmohr/readingplan/pkg/catalog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveOpts struct {
	strategy string
	output   string
	cacheDir string
	noCache  bool
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "print the minimum reading time covering all topics",
		Long: `searches all selections of books of the catalog and prints the smallest total reading time of a selection
which covers every topic of the catalog, or every topic given with --require.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, books, err := loadBooks()
			if err != nil {
				return err
			}
			required := requiredTopics(cmd)

			cache := &catalog.CacheHelper{CacheDir: solveopts.cacheDir}
			digest, err := catalog.Digest(books, required, solveopts.strategy)
			if err != nil {
				return err
			}

			if err := checkLimits(solveopts.strategy, books); err != nil {
				return err
			}

			var plan *readingplan.Plan
			if !solveopts.noCache {
				plan, err = cache.ReadPlan(digest)
				if err == nil {
					if _, err := fromPlan(books, required, plan); err != nil {
						logrus.Warnf("Ignoring cached plan %s: %v", digest, err)
						plan = nil
					} else {
						logrus.Infof("Using cached plan %s.", digest)
					}
				} else if !errors.Is(err, catalog.ErrCacheMiss) {
					logrus.Warnf("Ignoring cache: %v", err)
				}
			}

			if plan == nil {
				solution, err := solve(cmd.Context(), solveopts.strategy, books, required)
				if err != nil {
					return err
				}
				plan, err = toPlan(name, solveopts.strategy, books, solution, os.Args[1:])
				if err != nil {
					return err
				}
				if !solveopts.noCache {
					if err := cache.WritePlan(digest, plan); err != nil {
						logrus.Warnf("Failed to cache plan: %v", err)
					}
				}
			}

			for _, book := range plan.Books {
				logrus.Infof("Selecting %s: %d minutes.", books[book.Index].Name(book.Index), book.Minutes)
			}
			fmt.Fprintln(cmd.OutOrStdout(), plan.Cost)

			if solveopts.output != "" {
				plan.CommandLineArguments = os.Args[1:]
				logrus.Infof("Writing plan to %s.", solveopts.output)
				return writePlan(plan, solveopts.output)
			}
			return nil
		},
	}

	addSolveHelperFlags(solveCmd)
	solveCmd.Flags().StringVarP(&solveopts.strategy, "strategy", "s", StrategyBruteForce, "solver to use, bruteforce or sat")
	solveCmd.Flags().StringVarP(&solveopts.output, "output", "o", "", "where to write the reading plan")
	solveCmd.Flags().StringVar(&solveopts.cacheDir, "cache-dir", catalog.DefaultCacheDir(), "directory for cached plans")
	solveCmd.Flags().BoolVar(&solveopts.noCache, "no-cache", false, "neither read nor write cached plans")
	return solveCmd
}
