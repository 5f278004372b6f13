package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	logLevel string
}

var rootopts = rootOpts{}

var rootCmd = &cobra.Command{
	Use:   "readingplan",
	Short: "readingplan finds the shortest reading list covering all topics of a book catalog",
	Long:  `The tool searches every selection of books of a catalog and reports the smallest total reading time of a selection which covers all topics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(rootopts.logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewTopicsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}
