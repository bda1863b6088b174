package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseSections_AllMarkersPresent(t *testing.T) {
	got := ParseSections(sampleItinerary)

	want := ItinerarySections{
		SectionSummary:     "Sun, sand and seafood along the Konkan coast.",
		SectionItinerary:   "Day 1\n- **Morning:** Baga beach walk\nDay 2\n- **Morning:** Fort Aguada",
		SectionBudget:      "total within ₹124500, per day ~₹24900",
		SectionHotels:      "1. Taj Exotica, Benaulim",
		SectionRestaurants: "1. Britto's, Baga",
		SectionTips:        "- Rent a scooter\n- Carry sunscreen\n- Respect the lifeguard flags",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSections mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSections_MissingMarkersUseSentinel(t *testing.T) {
	raw := "## Trip Summary\nQuiet hills.\n\n## Hotels\nHill View Inn\n"

	got := ParseSections(raw)

	want := ItinerarySections{
		SectionSummary:     "Quiet hills.",
		SectionItinerary:   NotGenerated,
		SectionBudget:      NotGenerated,
		SectionHotels:      "Hill View Inn",
		SectionRestaurants: NotGenerated,
		SectionTips:        NotGenerated,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSections mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSections_FreeTextWithoutMarkers(t *testing.T) {
	for _, raw := range []string{"", "[error: quota exceeded]", "just some words"} {
		got := ParseSections(raw)
		for _, m := range itineraryMarkers {
			assert.Equal(t, NotGenerated, got[m.Key], "raw=%q key=%s", raw, m.Key)
		}
	}
}

func TestParseSections_MarkersOnlyMatchForward(t *testing.T) {
	raw := "Trip Summary: Calm.\nTrip Summary: not a second summary\nTravel Tips: go early\nHotels: too late"

	got := ParseSections(raw)

	assert.Equal(t, "Calm.\nTrip Summary: not a second summary", got[SectionSummary])
	assert.Equal(t, NotGenerated, got[SectionBudget])
	assert.Equal(t, NotGenerated, got[SectionHotels])
	assert.Equal(t, "go early\nHotels: too late", got[SectionTips])
}

func TestParseSections_MarkerNeedsWordBoundary(t *testing.T) {
	raw := "Trip Summary: ok\nBudgeting advice: spend less\nBudget: 500"

	got := ParseSections(raw)

	assert.Equal(t, "ok\nBudgeting advice: spend less", got[SectionSummary])
	assert.Equal(t, "500", got[SectionBudget])
}

func TestSectionList_OrderAndFlags(t *testing.T) {
	list := ParseSections("Trip Summary: short").SectionList()

	keys := make([]string, 0, len(list))
	for _, s := range list {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"summary", "itinerary", "budget", "hotels", "restaurants", "tips"}, keys)
	assert.True(t, list[0].Generated)
	assert.Equal(t, "Trip Summary", list[0].Title)
	assert.False(t, list[1].Generated)
	assert.Equal(t, NotGenerated, list[1].Text)
}

func TestParseSections_SkippedMarkerIsNotRevisited(t *testing.T) {
	raw := "Budget: 900\nTrip Summary: arrived late"

	got := ParseSections(raw)

	assert.Equal(t, NotGenerated, got[SectionSummary])
	assert.Equal(t, "900\nTrip Summary: arrived late", got[SectionBudget])
}

func TestParseSections_ProseStartingWithTitleIsBody(t *testing.T) {
	raw := "## 🗺️ Trip Summary\nBeaches and forts.\n\n## 📅 Day-wise Itinerary\n" +
		"### Day 1\n- **Morning:** Baga beach\n" +
		"Budget-friendly tip: rent a scooter for the day.\n" +
		"### Day 2\n- **Morning:** Fort Aguada\n" +
		"Hotels near Calangute fill up fast in December.\n" +
		"Restaurants open late here\n" +
		"### Day 3\n- **Evening:** Anjuna flea market\n\n" +
		"## 💰 Budget\nTotal ₹124500\n\n" +
		"## 🏨 Hotels\nTaj Exotica\n"

	got := ParseSections(raw)

	want := ItinerarySections{
		SectionSummary: "Beaches and forts.",
		SectionItinerary: "### Day 1\n- **Morning:** Baga beach\n" +
			"Budget-friendly tip: rent a scooter for the day.\n" +
			"### Day 2\n- **Morning:** Fort Aguada\n" +
			"Hotels near Calangute fill up fast in December.\n" +
			"Restaurants open late here\n" +
			"### Day 3\n- **Evening:** Anjuna flea market",
		SectionBudget:      "Total ₹124500",
		SectionHotels:      "Taj Exotica",
		SectionRestaurants: NotGenerated,
		SectionTips:        NotGenerated,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSections mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSections_UndecoratedHeadingForms(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
	}{
		{"colon", "Budget: 500", true},
		{"bold colon outside", "Budget**: 500", true},
		{"bare title", "Hotels", true},
		{"bold title", "**Hotels**", true},
		{"emoji", "🏨 Hotels near the beach", true},
		{"markdown heading", "### Hotels in Goa", true},
		{"prose", "Hotels near the beach", false},
		{"hyphenated word", "Budget-friendly tip: scooters", false},
		{"bullet prose", "- Restaurants close early", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := matchMarker(tc.line, 0)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}
