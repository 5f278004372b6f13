package main

import (
	"github.com/rmohr/readingplan/pkg/catalog"
	"github.com/spf13/cobra"
)

type initOpts struct {
	out   string
	force bool
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample catalog.yaml",
		Long:  `Create a catalog file with a small sample of books which can be edited and solved`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalog.NewCatalogInit(initopts.out, initopts.force).Init()
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "output", "o", catalog.DefaultCatalogFileName, "where to write the catalog")
	initCmd.Flags().BoolVar(&initopts.force, "force", false, "overwrite an existing catalog")
	return initCmd
}
