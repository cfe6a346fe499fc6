// File: /utils/filters.go
package utils

import (
	"sort"
	"strings"

	"eventfdr-api/models"
)

// Sort keys accepted by SortEvents
const (
	SortDateAsc    = "date-asc"
	SortDateDesc   = "date-desc"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortPopularity = "popularity"
	SortName       = "name"
)

// FilterEvents returns the subset of events matching all supplied
// criteria. It never mutates the input and treats empty criteria as
// no-ops. Dates are YYYY-MM-DD, so lexicographic comparison orders
// them correctly.
func FilterEvents(events []models.Event, filters models.EventFilters) []models.Event {
	result := make([]models.Event, 0, len(events))

	query := strings.ToLower(strings.TrimSpace(filters.Query))

	for _, event := range events {
		if query != "" && !matchesQuery(&event, query) {
			continue
		}

		if filters.Category != "" && filters.Category != models.CategoryAll {
			if event.Category != filters.Category {
				continue
			}
		}

		if filters.City != "" && filters.City != models.CityAll {
			if event.City != filters.City {
				continue
			}
		}

		if pr := filters.PriceRange; pr != nil {
			if event.Price < pr.Min {
				continue
			}
			if pr.Max >= 0 && event.Price > pr.Max {
				continue
			}
		}

		if filters.DateFrom != "" && event.Date < filters.DateFrom {
			continue
		}
		if filters.DateTo != "" && event.Date > filters.DateTo {
			continue
		}

		result = append(result, event)
	}

	return result
}

func matchesQuery(event *models.Event, query string) bool {
	if strings.Contains(strings.ToLower(event.Title), query) ||
		strings.Contains(strings.ToLower(event.Description), query) ||
		strings.Contains(strings.ToLower(event.Category), query) ||
		strings.Contains(strings.ToLower(event.Venue), query) ||
		strings.Contains(strings.ToLower(event.City), query) {
		return true
	}

	for _, tag := range event.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// SortEvents returns a sorted copy of events. The sort is stable, so
// equal keys keep their input order and re-sorting is a no-op. An
// unknown sort key returns the input order unchanged.
func SortEvents(events []models.Event, sortBy string) []models.Event {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)

	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date < sorted[j].Date
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Registered > sorted[j].Registered
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	}

	return sorted
}
