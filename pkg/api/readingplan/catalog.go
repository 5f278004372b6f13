package readingplan

import "github.com/rmohr/readingplan/pkg/api"

type Catalog struct {
	Name  string     `json:"name,omitempty"`
	Books []api.Book `json:"books"`
}
