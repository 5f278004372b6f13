package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewVerifyCmd() *cobra.Command {

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "cross-check the exhaustive search against the SAT solver",
		Long:  `solves the catalog with both strategies and fails if they disagree on the minimum reading time`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, books, err := loadBooks()
			if err != nil {
				return err
			}
			required := requiredTopics(cmd)

			costs := map[string]int{}
			for _, strategy := range []string{StrategyBruteForce, StrategySAT} {
				solution, err := solve(cmd.Context(), strategy, books, required)
				if err != nil {
					return fmt.Errorf("strategy %s failed: %v", strategy, err)
				}
				if err := checkSelection(books, solution); err != nil {
					return fmt.Errorf("strategy %s returned an invalid selection: %v", strategy, err)
				}
				log.Infof("Strategy %s found %d minutes with %d books.", strategy, solution.Cost, len(solution.Selection))
				costs[strategy] = solution.Cost
			}

			if costs[StrategyBruteForce] != costs[StrategySAT] {
				return fmt.Errorf("strategies disagree: %s found %d, %s found %d", StrategyBruteForce, costs[StrategyBruteForce], StrategySAT, costs[StrategySAT])
			}
			fmt.Fprintln(cmd.OutOrStdout(), costs[StrategyBruteForce])
			return nil
		},
	}

	addSolveHelperFlags(verifyCmd)
	return verifyCmd
}
