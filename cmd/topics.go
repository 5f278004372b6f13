package main

import (
	"fmt"

	"github.com/rmohr/readingplan/pkg/cover"
	"github.com/spf13/cobra"
)

func NewTopicsCmd() *cobra.Command {

	topicsCmd := &cobra.Command{
		Use:   "topics",
		Short: "list all topics of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, books, err := loadBooks()
			if err != nil {
				return err
			}
			for _, topic := range cover.Universe(books) {
				fmt.Fprintln(cmd.OutOrStdout(), topic)
			}
			return nil
		},
	}

	addSolveHelperFlags(topicsCmd)
	return topicsCmd
}
