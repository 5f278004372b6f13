package reducer

import (
	"github.com/rmohr/readingplan/pkg/api/readingplan"
	"github.com/rmohr/readingplan/pkg/catalog"
)

type ReducerCatalogLoader interface {
	Load() (*readingplan.Catalog, error)
}

type CatalogLoader struct {
	catalogFiles []string
}

func (c CatalogLoader) Load() (*readingplan.Catalog, error) {
	return catalog.LoadCatalogFiles(c.catalogFiles)
}
