package api

import "fmt"

// Book is a single entry of a reading catalog. Minutes is the cost of reading
// it, Topics the labels it covers. Books are identified by their position in
// a list, so two books with identical fields are still distinct.
type Book struct {
	Title   string   `json:"title,omitempty"`
	Minutes int      `json:"minutes"`
	Topics  []string `json:"topics"`
}

// Name returns the title, or a positional name for untitled books.
func (b Book) Name(index int) string {
	if b.Title != "" {
		return b.Title
	}
	return fmt.Sprintf("#%d", index+1)
}
