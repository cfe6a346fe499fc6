// File: /utils/filters_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventfdr-api/models"
)

func testEvents() []models.Event {
	return []models.Event{
		{
			ID:       "evt-1",
			Title:    "TechConf 2026",
			Category: "Technology",
			City:     "Bangalore",
			Venue:    "BIEC",
			Date:     "2026-02-15",
			Price:    2499,
			Tags:     models.StringSlice{"AI", "Cloud"},

			Capacity:   100,
			Registered: 80,
		},
		{
			ID:       "evt-2",
			Title:    "Sounds of India",
			Category: "Music",
			City:     "Mumbai",
			Venue:    "Race Course",
			Date:     "2026-03-20",
			Price:    1499,
			Tags:     models.StringSlice{"Festival"},

			Capacity:   200,
			Registered: 150,
		},
		{
			ID:       "evt-3",
			Title:    "Community Meetup",
			Category: "Education",
			City:     "Pune",
			Venue:    "Tech Park",
			Date:     "2026-02-21",
			Price:    0,
			Tags:     models.StringSlice{"Free", "Open Source"},

			Capacity:   150,
			Registered: 87,
		},
	}
}

func TestFilterEventsNoCriteriaReturnsInputOrder(t *testing.T) {
	events := testEvents()

	got := FilterEvents(events, models.EventFilters{})

	assert.Len(t, got, len(events))
	for i := range events {
		assert.Equal(t, events[i].ID, got[i].ID)
	}
}

func TestFilterEventsAllSentinelsAreNoOps(t *testing.T) {
	events := testEvents()

	got := FilterEvents(events, models.EventFilters{
		Category: models.CategoryAll,
		City:     models.CityAll,
	})

	assert.Len(t, got, len(events))
}

func TestFilterEventsByQuery(t *testing.T) {
	events := testEvents()

	// Title match, case-insensitive
	got := FilterEvents(events, models.EventFilters{Query: "techconf"})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)

	// Tag match
	got = FilterEvents(events, models.EventFilters{Query: "open source"})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-3", got[0].ID)

	// Venue match
	got = FilterEvents(events, models.EventFilters{Query: "race"})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-2", got[0].ID)

	// No match
	got = FilterEvents(events, models.EventFilters{Query: "pottery"})
	assert.Empty(t, got)
}

func TestFilterEventsByCategoryAndCity(t *testing.T) {
	events := testEvents()

	got := FilterEvents(events, models.EventFilters{Category: "Music"})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-2", got[0].ID)

	got = FilterEvents(events, models.EventFilters{City: "Pune"})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-3", got[0].ID)
}

func TestFilterEventsByPriceRange(t *testing.T) {
	events := testEvents()

	free := models.PriceRange{Min: 0, Max: 0}
	got := FilterEvents(events, models.EventFilters{PriceRange: &free})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-3", got[0].ID)

	// Unbounded max
	above := models.PriceRange{Min: 1000, Max: -1}
	got = FilterEvents(events, models.EventFilters{PriceRange: &above})
	assert.Len(t, got, 2)
}

func TestFilterEventsByDateRange(t *testing.T) {
	events := testEvents()

	got := FilterEvents(events, models.EventFilters{
		DateFrom: "2026-02-01",
		DateTo:   "2026-02-28",
	})
	assert.Len(t, got, 2)

	// Bounds are inclusive by calendar date
	got = FilterEvents(events, models.EventFilters{
		DateFrom: "2026-02-15",
		DateTo:   "2026-02-15",
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)
}

func TestSortEventsKeys(t *testing.T) {
	events := testEvents()

	got := SortEvents(events, SortDateAsc)
	assert.Equal(t, []string{"evt-1", "evt-3", "evt-2"}, ids(got))

	got = SortEvents(events, SortDateDesc)
	assert.Equal(t, []string{"evt-2", "evt-3", "evt-1"}, ids(got))

	got = SortEvents(events, SortPriceAsc)
	assert.Equal(t, []string{"evt-3", "evt-2", "evt-1"}, ids(got))

	got = SortEvents(events, SortPopularity)
	assert.Equal(t, []string{"evt-2", "evt-3", "evt-1"}, ids(got))

	got = SortEvents(events, SortName)
	assert.Equal(t, []string{"evt-3", "evt-2", "evt-1"}, ids(got))

	// Unknown key keeps the input order
	got = SortEvents(events, "bogus")
	assert.Equal(t, []string{"evt-1", "evt-2", "evt-3"}, ids(got))
}

func TestSortEventsIsIdempotent(t *testing.T) {
	events := testEvents()

	once := SortEvents(events, SortPriceAsc)
	twice := SortEvents(once, SortPriceAsc)

	assert.Equal(t, ids(once), ids(twice))
}

func TestSortEventsStableOnEqualKeys(t *testing.T) {
	events := []models.Event{
		{ID: "a", Price: 100},
		{ID: "b", Price: 100},
		{ID: "c", Price: 100},
	}

	got := SortEvents(events, SortPriceAsc)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSortEventsDoesNotMutateInput(t *testing.T) {
	events := testEvents()

	SortEvents(events, SortPriceAsc)

	assert.Equal(t, []string{"evt-1", "evt-2", "evt-3"}, ids(events))
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
