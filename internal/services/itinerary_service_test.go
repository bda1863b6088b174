package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

func goaRequest() request_models.GenerationRequest {
	return request_models.GenerationRequest{
		Country:    "India",
		City:       "Goa",
		Days:       5,
		Budget:     1500,
		TravelDate: "2025-12-01",
		Interests:  []string{"Beaches"},
	}
}

func TestConvertedBudget(t *testing.T) {
	tests := []struct {
		name       string
		budget     int
		days       int
		wantTotal  int
		wantPerDay int
	}{
		{"even split", 1500, 5, 124500, 24900},
		{"rounds to nearest", 100, 3, 8300, 2767},
		{"half to even up", 101, 2, 8383, 4192},
		{"half to even down", 103, 2, 8549, 4274},
		{"single day", 20000, 1, 1660000, 1660000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, perDay := ConvertedBudget(tt.budget, tt.days)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantPerDay, perDay)
		})
	}
}

func TestBuildPrompt_EmbedsEveryField(t *testing.T) {
	svc := NewItineraryService(&fakeTextClient{}, discardLogger())
	req := goaRequest()
	req.Interests = []string{"Food", "Beaches"}

	prompt := svc.BuildPrompt(req)

	assert.Contains(t, prompt, "Generate a detailed 5-day travel itinerary for Goa, India, starting on 2025-12-01.")
	assert.Contains(t, prompt, "Focus on: Food, Beaches.")
	assert.Contains(t, prompt, "total within ₹124500, per day ~₹24900")
	for _, m := range itineraryMarkers {
		assert.Contains(t, prompt, m.Title)
	}
	assert.Equal(t, prompt, svc.BuildPrompt(req), "prompt must be deterministic")
}

func TestGenerate_Success(t *testing.T) {
	client := &fakeTextClient{reply: sampleItinerary}
	svc := NewItineraryService(client, discardLogger())

	text, err := svc.Generate(context.Background(), goaRequest())

	require.NoError(t, err)
	assert.Equal(t, sampleItinerary, text)
	assert.Equal(t, 1, client.calls())
}

func TestGenerate_FailuresBecomeGenerationFailure(t *testing.T) {
	tests := []struct {
		name        string
		client      *fakeTextClient
		wantMessage string
	}{
		{"client error", &fakeTextClient{err: errors.New("quota exceeded")}, "quota exceeded"},
		{"empty reply", &fakeTextClient{reply: "  \n"}, "empty response"},
		{"client panic", &fakeTextClient{panics: true}, "client exploded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewItineraryService(tt.client, discardLogger())

			text, err := svc.Generate(context.Background(), goaRequest())

			assert.Empty(t, text)
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrGenerationFailed)

			var failure *utils.GenerationFailure
			require.ErrorAs(t, err, &failure)
			assert.Contains(t, failure.Message, tt.wantMessage)
			assert.Equal(t, 1, tt.client.calls(), "no retry")
		})
	}
}

func TestGenerate_RejectsZeroDays(t *testing.T) {
	client := &fakeTextClient{reply: "x"}
	svc := NewItineraryService(client, discardLogger())
	req := goaRequest()
	req.Days = 0

	_, err := svc.Generate(context.Background(), req)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, client.calls())
}
