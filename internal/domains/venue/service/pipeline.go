package service

import (
	"sort"
	"strings"
	"time"

	"courtside/internal/domains/venue/model"
	"courtside/internal/domains/venue/model/dto"
	"courtside/shared/constant"
)

// Filter keeps the venues satisfying every active predicate: the free-text
// search matches name OR city OR location case-insensitively, and each
// selected facet must equal its field exactly. Order is preserved and no
// venue is synthesized or duplicated.
func Filter(venues []model.Venue, state dto.FilterState) []model.Venue {
	filtered := make([]model.Venue, 0, len(venues))

	query := strings.ToLower(strings.TrimSpace(state.SearchQuery))

	for _, venue := range venues {
		if query != "" &&
			!strings.Contains(strings.ToLower(venue.Name), query) &&
			!strings.Contains(strings.ToLower(venue.City), query) &&
			!strings.Contains(strings.ToLower(venue.Location), query) {
			continue
		}

		if state.SelectedName != "" && state.SelectedName != venue.Name {
			continue
		}

		if state.SelectedCity != "" && state.SelectedCity != venue.City {
			continue
		}

		if state.SelectedLocation != "" && state.SelectedLocation != venue.Location {
			continue
		}

		filtered = append(filtered, venue)
	}

	return filtered
}

// Sort orders the filtered list by the single active criterion. Rating wins
// over price; with neither active the original fetch order is returned. The
// input slice is never mutated and ties keep their relative order.
func Sort(venues []model.Venue, state dto.FilterState) []model.Venue {
	sorted := make([]model.Venue, len(venues))
	copy(sorted, venues)

	switch {
	case state.SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RatingValue() > sorted[j].RatingValue()
		})
	case state.SortByPrice == constant.SortPriceLowToHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PricePerHour < sorted[j].PricePerHour
		})
	case state.SortByPrice == constant.SortPriceHighToLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PricePerHour > sorted[j].PricePerHour
		})
	}

	return sorted
}

// DeriveFacets collects the distinct trimmed names, cities and locations
// across all venues, each sorted lexicographically. Dedup is case-sensitive
// on the trimmed value.
func DeriveFacets(venues []model.Venue) dto.Facets {
	names := map[string]struct{}{}
	cities := map[string]struct{}{}
	locations := map[string]struct{}{}

	for _, venue := range venues {
		if name := strings.TrimSpace(venue.Name); name != "" {
			names[name] = struct{}{}
		}

		if city := strings.TrimSpace(venue.City); city != "" {
			cities[city] = struct{}{}
		}

		if location := strings.TrimSpace(venue.Location); location != "" {
			locations[location] = struct{}{}
		}
	}

	return dto.Facets{
		Names:     sortedKeys(names),
		Cities:    sortedKeys(cities),
		Locations: sortedKeys(locations),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// DisplayWindow computes the slicing metadata for a filtered list: 6 rows by
// default, everything when showAll is set, and a virtualization hint once the
// revealed list exceeds 20 rows. The list itself is never altered.
func DisplayWindow(totalFiltered int, showAll bool) dto.Display {
	visible := constant.DefaultVisibleVenues
	if showAll || totalFiltered < visible {
		visible = totalFiltered
	}

	return dto.Display{
		TotalFiltered: totalFiltered,
		VisibleCount:  visible,
		ShowAll:       showAll,
		Virtualized:   showAll && totalFiltered > constant.VirtualizationThreshold,
	}
}

// ApplicableSpecial picks the override governing the given date, if any.
// A date-anchored time window beats a plain date override, which beats a
// recurring weekday. is_offer never affects selection, only badging.
func ApplicableSpecial(specials []model.SpecialPrice, date time.Time) *model.SpecialPrice {
	day := date.Format(constant.DateFormat)
	weekday := strings.ToLower(date.Weekday().String())

	var dateMatch, recurringMatch *model.SpecialPrice

	for i := range specials {
		special := &specials[i]

		switch special.Type {
		case model.SpecialPriceTypeTimeBased:
			if special.Date != nil && *special.Date == day {
				return special
			}
		case model.SpecialPriceTypeDate:
			if special.Date != nil && *special.Date == day && dateMatch == nil {
				dateMatch = special
			}
		case model.SpecialPriceTypeRecurring:
			if recurringMatch != nil {
				continue
			}

			for _, name := range special.Weekdays {
				if strings.ToLower(name) == weekday {
					recurringMatch = special

					break
				}
			}
		}
	}

	if dateMatch != nil {
		return dateMatch
	}

	return recurringMatch
}
