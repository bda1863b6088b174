package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"tripplanner/internal/models/response_models"
)

type SectionKey string

const (
	SectionSummary     SectionKey = "summary"
	SectionItinerary   SectionKey = "itinerary"
	SectionBudget      SectionKey = "budget"
	SectionHotels      SectionKey = "hotels"
	SectionRestaurants SectionKey = "restaurants"
	SectionTips        SectionKey = "tips"
)

// NotGenerated is the value of a section whose marker never appeared.
const NotGenerated = "Not generated"

type sectionMarker struct {
	Key   SectionKey
	Title string
}

// itineraryMarkers are in the order the prompt asks for them.
var itineraryMarkers = []sectionMarker{
	{Key: SectionSummary, Title: "Trip Summary"},
	{Key: SectionItinerary, Title: "Day-wise Itinerary"},
	{Key: SectionBudget, Title: "Budget"},
	{Key: SectionHotels, Title: "Hotels"},
	{Key: SectionRestaurants, Title: "Restaurants"},
	{Key: SectionTips, Title: "Travel Tips"},
}

type ItinerarySections map[SectionKey]string

// ParseSections splits generated text on the heading markers. Markers are
// matched forward only: once a marker has opened a section, earlier markers
// are no longer recognised and are kept as body text.
func ParseSections(raw string) ItinerarySections {
	sections := make(ItinerarySections, len(itineraryMarkers))
	for _, m := range itineraryMarkers {
		sections[m.Key] = NotGenerated
	}

	next := 0
	current := -1
	var body strings.Builder

	flush := func() {
		if current < 0 {
			return
		}
		if text := strings.TrimSpace(body.String()); text != "" {
			sections[itineraryMarkers[current].Key] = text
		}
		body.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		if idx, rest, ok := matchMarker(line, next); ok {
			flush()
			current = idx
			next = idx + 1
			body.WriteString(trimHeadingTail(rest))
			body.WriteString("\n")
			continue
		}
		if current >= 0 {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	return sections
}

// matchMarker reports whether line is a heading for one of the markers at
// position from or later, and returns the text after the marker title. A
// title only counts as a heading when it is decorated (markdown "#", bold
// "*" or a symbol such as the prompt's emoji) or is followed by a colon or
// the end of the line. Plain prose like "Hotels near the beach" is body text.
func matchMarker(line string, from int) (int, string, bool) {
	head := strings.TrimLeftFunc(line, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	decorated := isHeadingDecoration(line[:len(line)-len(head)])

	for i := from; i < len(itineraryMarkers); i++ {
		title := itineraryMarkers[i].Title
		if len(head) < len(title) || !strings.EqualFold(head[:len(title)], title) {
			continue
		}
		rest := head[len(title):]
		if r, _ := utf8.DecodeRuneInString(rest); rest != "" && unicode.IsLetter(r) {
			continue
		}
		if !decorated && !endsHeading(rest) {
			continue
		}
		return i, rest, true
	}
	return 0, "", false
}

func isHeadingDecoration(prefix string) bool {
	for _, r := range prefix {
		if r == '#' || r == '*' || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

// endsHeading reports whether the text after a title closes it: end of
// line, or a colon after optional bold/underscore markers.
func endsHeading(rest string) bool {
	tail := strings.TrimLeft(rest, "*_ \t")
	return tail == "" || strings.HasPrefix(tail, ":")
}

// trimHeadingTail drops the decoration that follows a heading title, such as
// "**:" or ":", keeping any inline content.
func trimHeadingTail(rest string) string {
	return strings.TrimLeft(rest, "*_:#- \t")
}

// SectionList renders the parsed sections in marker order.
func (s ItinerarySections) SectionList() []response_models.ItinerarySection {
	out := make([]response_models.ItinerarySection, 0, len(itineraryMarkers))
	for _, m := range itineraryMarkers {
		text := s[m.Key]
		if text == "" {
			text = NotGenerated
		}
		out = append(out, response_models.ItinerarySection{
			Key:       string(m.Key),
			Title:     m.Title,
			Text:      text,
			Generated: text != NotGenerated,
		})
	}
	return out
}
