package catalog

import (
	"errors"
	"sort"
	"time"
)

// ErrNoMainProduct is returned when no product in a group has an average cycle.
var ErrNoMainProduct = errors.New("no main product found for this group")

// HistoryItem is a previous generation and how long it lasted.
type HistoryItem struct {
	Product
	UpgradedAfter int64   `json:"upgraded_after"`
	BarPercent    float64 `json:"bar_percent"`
}

// GroupView is everything the group page shows.
type GroupView struct {
	Name             string        `json:"group"`
	Main             Entry         `json:"main"`
	History          []HistoryItem `json:"history"`
	MaxUpgradedAfter int64         `json:"max_upgraded_after"`
}

// BuildGroup picks the group's current product (the first, by id, with a
// known average cycle) and lays out the upgrade history newest first.
// products must all belong to the group.
func BuildGroup(name string, products []Product, now time.Time) (GroupView, error) {
	sorted := make([]Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var main *Product
	for i := range sorted {
		if sorted[i].AvgCycle != nil {
			main = &sorted[i]
			break
		}
	}
	if main == nil {
		return GroupView{}, ErrNoMainProduct
	}

	view := GroupView{
		Name:    name,
		Main:    Assess(*main, now),
		History: []HistoryItem{},
	}

	for _, p := range sorted {
		if p.UpgradedAfter == nil {
			continue
		}
		view.History = append(view.History, HistoryItem{Product: p, UpgradedAfter: *p.UpgradedAfter})
		if *p.UpgradedAfter > view.MaxUpgradedAfter {
			view.MaxUpgradedAfter = *p.UpgradedAfter
		}
	}

	sort.SliceStable(view.History, func(i, j int) bool {
		return newerRelease(view.History[i].ReleaseDate, view.History[j].ReleaseDate)
	})

	if view.MaxUpgradedAfter > 0 {
		for i := range view.History {
			view.History[i].BarPercent = float64(view.History[i].UpgradedAfter) / float64(view.MaxUpgradedAfter) * 100
		}
	}

	return view, nil
}

// newerRelease orders known dates newest first and unknown dates last.
func newerRelease(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.After(*b)
	}
}
