package catalog

import (
	"fmt"
	"os"

	"github.com/rmohr/readingplan/pkg/api"
	"github.com/rmohr/readingplan/pkg/api/readingplan"
	"sigs.k8s.io/yaml"
)

type CatalogInit struct {
	File  string
	Force bool
}

func NewCatalogInit(file string, force bool) *CatalogInit {
	return &CatalogInit{
		File:  file,
		Force: force,
	}
}

// Init writes the sample catalog to File.
func (c *CatalogInit) Init() error {
	_, err := os.Stat(c.File)
	if !c.Force && !os.IsNotExist(err) {
		return fmt.Errorf("catalog file %s already exists", c.File)
	}
	data, err := yaml.Marshal(SampleCatalog())
	if err != nil {
		return err
	}
	return os.WriteFile(c.File, data, 0660)
}

func SampleCatalog() *readingplan.Catalog {
	return &readingplan.Catalog{
		Name: "algorithms",
		Books: []api.Book{
			{Minutes: 300, Topics: []string{"Backtracking", "Dynamic_Programming", "Greedy"}},
			{Minutes: 125, Topics: []string{"Dynamic_Programming"}},
			{Minutes: 35, Topics: []string{"Backtracking"}},
			{Minutes: 85, Topics: []string{"Greedy"}},
			{Minutes: 120, Topics: []string{"Backtracking", "Dynamic_Programming"}},
			{Minutes: 80, Topics: []string{"Greedy", "Backtracking"}},
		},
	}
}
