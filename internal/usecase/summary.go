package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aaplitrip/trip-catalog/internal/domain"
)

// Highlight extraction limits.
const (
	maxHighlights        = 5
	maxFallbackSentences = 3
	minHighlightLen      = 10
	maxHighlightLen      = 100
	minSentenceLen       = 20
)

// DefaultHighlights is shown when a description yields no highlight phrases.
var DefaultHighlights = []string{
	"Iconic Landmarks & Monuments",
	"Cultural Experiences",
	"Local Cuisine & Dining",
	"Scenic Views & Photography",
	"Guided Tours & Activities",
}

var (
	// itinerarySeparator splits route text on "->" arrows and "Day N:" markers
	itinerarySeparator = regexp.MustCompile(`(?i)->|Day \d+:`)

	// itineraryDayPrefix recognises a segment that still starts with "Day N"
	itineraryDayPrefix = regexp.MustCompile(`(?i)^Day (\d+):?\s*(.+)$`)

	// highlightPatterns capture the phrase following an activity verb, up to the sentence end.
	// The verbs are not word-anchored, so "revisit" and "oversee" also lead a phrase.
	highlightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:visit|explore|see|experience|enjoy|discover)\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)(?:featuring|including|with)\s+([^.!?]+)`),
	}

	sentenceSeparator = regexp.MustCompile(`[.!?]+`)
)

// GetTripSummary condenses a destination into the overview shown on detail screens.
// The destination is backfilled first, so every field of the summary is populated.
// The itinerary is parsed from the route text when it yields more than one day and generated
// from the day count otherwise.
func GetTripSummary(d domain.Destination, now time.Time) domain.TripSummary {
	filled := FillEmptyFields(d, now)

	days := filled.Days()
	if days == 0 {
		days = DefaultTripDays
	}

	itinerary := ParseItinerary(filled.Route)
	if len(itinerary) <= 1 {
		itinerary = generateItinerary(filled, days)
	}

	highlights := ExtractHighlights(filled.Description)
	if len(highlights) == 0 {
		highlights = append([]string(nil), DefaultHighlights...)
	}

	return domain.TripSummary{
		Duration:    filled.Exposure,
		Days:        days,
		Itinerary:   itinerary,
		Highlights:  highlights,
		StartDate:   FormatDate(filled.StartDate),
		EndDate:     FormatDate(filled.EndDate),
		IsDomestic:  filled.IsDomestic(),
		Description: filled.Description,
		Country:     filled.Country,
		Price:       filled.Price,
	}
}

// ParseItinerary splits route text into day entries.
// Segments are separated by "->" or "Day N:" markers; blank segments are dropped and the
// remaining ones are numbered in order.
func ParseItinerary(route string) []domain.ItineraryDay {
	if isBlank(route) {
		return []domain.ItineraryDay{}
	}

	segments := itinerarySeparator.Split(route, -1)
	items := make([]domain.ItineraryDay, 0, len(segments))

	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		day := len(items) + 1
		if m := itineraryDayPrefix.FindStringSubmatch(seg); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				day = n
				seg = strings.TrimSpace(m[2])
			}
		}
		items = append(items, domain.ItineraryDay{Day: day, Activity: seg})
	}
	return items
}

// FormatItinerary renders route text as "Day N: activity" lines.
func FormatItinerary(route string) string {
	items := ParseItinerary(route)
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("Day %d: %s", item.Day, item.Activity)
	}
	return strings.Join(lines, "\n")
}

// ExtractHighlights pulls up to five highlight phrases out of a description.
// Phrases follow verbs such as "visit" or "featuring" and run to the end of the sentence.
// When none are found the first three sentences longer than 20 characters are returned.
func ExtractHighlights(description string) []string {
	if isBlank(description) {
		return []string{}
	}

	highlights := make([]string, 0, maxHighlights)
	for _, pattern := range highlightPatterns {
		for _, m := range pattern.FindAllStringSubmatch(description, -1) {
			n := utf8.RuneCountInString(m[1])
			if n > minHighlightLen && n < maxHighlightLen {
				highlights = append(highlights, strings.TrimSpace(m[1]))
			}
		}
	}

	if len(highlights) > 0 {
		if len(highlights) > maxHighlights {
			highlights = highlights[:maxHighlights]
		}
		return highlights
	}

	sentences := make([]string, 0, maxFallbackSentences)
	for _, s := range sentenceSeparator.Split(description, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) <= minSentenceLen {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == maxFallbackSentences {
			break
		}
	}
	return sentences
}

// generateItinerary builds a plan of the given length: arrival, exploration days, departure.
func generateItinerary(d domain.Destination, days int) []domain.ItineraryDay {
	items := make([]domain.ItineraryDay, 0, days)
	for i := 1; i <= days; i++ {
		var activity string
		switch {
		case i == 1:
			activity = fmt.Sprintf("Arrival in %s, %s. Hotel check-in and trip briefing, evening free to settle in.", d.Name, d.Country)
		case i == days:
			activity = "Final sightseeing and shopping, farewell meal, check-out and departure."
		default:
			activity = fmt.Sprintf("Full day exploring %s: major attractions, cultural sites and guided activities.", d.Name)
		}
		items = append(items, domain.ItineraryDay{Day: i, Activity: activity})
	}
	return items
}
