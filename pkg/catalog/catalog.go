package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rmohr/readingplan/pkg/api/readingplan"
	"sigs.k8s.io/yaml"
)

const DefaultCatalogFileName = "catalog.yaml"

func LoadCatalogFile(file string) (*readingplan.Catalog, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %v", file, err)
	}
	catalog := &readingplan.Catalog{}
	if err := yaml.UnmarshalStrict(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %v", file, err)
	}
	return catalog, nil
}

// LoadCatalogFiles concatenates the books of all given catalogs in order.
func LoadCatalogFiles(files []string) (*readingplan.Catalog, error) {
	merged := &readingplan.Catalog{}
	var names []string
	for _, file := range files {
		catalog, err := LoadCatalogFile(file)
		if err != nil {
			return nil, err
		}
		if catalog.Name != "" {
			names = append(names, catalog.Name)
		}
		merged.Books = append(merged.Books, catalog.Books...)
	}
	merged.Name = strings.Join(names, ",")
	return merged, nil
}

// FindCatalogFile returns name if it exists relative to the working
// directory, and otherwise looks for it in the XDG config directories.
func FindCatalogFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("catalog file %s does not exist", name)
	}
	file, err := xdg.SearchConfigFile(filepath.Join("readingplan", name))
	if err != nil {
		return "", fmt.Errorf("catalog file %s does not exist: %v", name, err)
	}
	return file, nil
}
