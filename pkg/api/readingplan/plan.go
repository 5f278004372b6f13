package readingplan

type PlannedBook struct {
	Index   int      `json:"index"`
	Title   string   `json:"title,omitempty"`
	Minutes int      `json:"minutes"`
	Topics  []string `json:"topics"`
}

// Plan is the serialized result of a solve. Books lists the chosen books in
// catalog order, Topics the topics they were chosen to cover.
type Plan struct {
	CommandLineArguments []string      `json:"cli-arguments,omitempty"`
	Catalog              string        `json:"catalog,omitempty"`
	Strategy             string        `json:"strategy"`
	Cost                 int           `json:"cost"`
	Topics               []string      `json:"topics"`
	Books                []PlannedBook `json:"books"`
}
