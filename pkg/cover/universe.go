package cover

import (
	"fmt"

	"github.com/rmohr/readingplan/pkg/api"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Universe returns the sorted set of all topics covered by any of the books.
func Universe(books []api.Book) []string {
	set := map[string]struct{}{}
	for _, book := range books {
		for _, topic := range book.Topics {
			set[topic] = struct{}{}
		}
	}
	topics := maps.Keys(set)
	slices.Sort(topics)
	return topics
}

func validate(books []api.Book) error {
	for i, book := range books {
		if book.Minutes < 0 {
			return &InvalidBookError{Index: i, Reason: fmt.Sprintf("negative reading time %d", book.Minutes)}
		}
		for _, topic := range book.Topics {
			if topic == "" {
				return &InvalidBookError{Index: i, Reason: "empty topic label"}
			}
		}
	}
	return nil
}

// topicSet is a bitset over the indices of the target topics.
type topicSet []uint64

func newTopicSet(size int) topicSet {
	return make(topicSet, (size+63)/64)
}

func (s topicSet) add(i int) {
	s[i/64] |= 1 << (uint(i) % 64)
}

func (s topicSet) union(o topicSet) {
	for i := range s {
		s[i] |= o[i]
	}
}

func (s topicSet) reset() {
	for i := range s {
		s[i] = 0
	}
}

func (s topicSet) contains(o topicSet) bool {
	for i := range o {
		if s[i]&o[i] != o[i] {
			return false
		}
	}
	return true
}

// instance is the solver's view of a problem: costs and topic bitsets per book
// and the bitset every selection has to cover.
type instance struct {
	topics []string
	costs  []int
	masks  []topicSet
	target topicSet
}

func newInstance(books []api.Book, required []string) (*instance, error) {
	if err := validate(books); err != nil {
		return nil, err
	}

	var topics []string
	if required == nil {
		topics = Universe(books)
	} else {
		for i, topic := range required {
			if topic == "" {
				return nil, fmt.Errorf("required topic %d is empty", i)
			}
		}
		topics = slices.Clone(required)
		slices.Sort(topics)
		topics = slices.Compact(topics)
	}

	index := make(map[string]int, len(topics))
	target := newTopicSet(len(topics))
	for i, topic := range topics {
		index[topic] = i
		target.add(i)
	}

	in := &instance{
		topics: topics,
		costs:  make([]int, len(books)),
		masks:  make([]topicSet, len(books)),
		target: target,
	}
	for i, book := range books {
		in.costs[i] = book.Minutes
		in.masks[i] = newTopicSet(len(topics))
		for _, topic := range book.Topics {
			// topics outside of the target don't matter
			if j, ok := index[topic]; ok {
				in.masks[i].add(j)
			}
		}
	}
	return in, nil
}
