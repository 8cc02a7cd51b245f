package booking

import (
	"errors"
	"regexp"
	"sort"
)

var (
	ErrEmptyCatalog     = errors.New("slot catalog is empty")
	ErrMalformedSlot    = errors.New("slot label must be HH:MM")
	ErrUnorderedCatalog = errors.New("slot catalog must be strictly ascending")
)

var slotLabelRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SlotCatalog is the fixed, ordered list of bookable time-of-day labels.
// It comes from configuration, never from user input.
type SlotCatalog struct {
	labels []string
	index  map[string]int
}

func NewSlotCatalog(labels []string) (SlotCatalog, error) {
	if len(labels) == 0 {
		return SlotCatalog{}, ErrEmptyCatalog
	}

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if !slotLabelRegex.MatchString(l) {
			return SlotCatalog{}, ErrMalformedSlot
		}
		if _, dup := index[l]; dup {
			return SlotCatalog{}, ErrUnorderedCatalog
		}
		index[l] = i
	}

	// HH:MM labels sort lexicographically in time-of-day order.
	if !sort.StringsAreSorted(labels) {
		return SlotCatalog{}, ErrUnorderedCatalog
	}

	owned := make([]string, len(labels))
	copy(owned, labels)

	return SlotCatalog{labels: owned, index: index}, nil
}

func (c SlotCatalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

func (c SlotCatalog) Len() int {
	return len(c.labels)
}

// Labels returns the full catalog in ascending time-of-day order.
func (c SlotCatalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Available returns the catalog minus the booked labels, preserving catalog
// order. Labels outside the catalog are ignored.
func (c SlotCatalog) Available(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	free := make([]string, 0, len(c.labels))
	for _, l := range c.labels {
		if _, ok := taken[l]; !ok {
			free = append(free, l)
		}
	}
	return free
}
