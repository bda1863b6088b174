package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type SessionState string

const (
	StateLoggedOut SessionState = "logged_out"
	StateLoggedIn  SessionState = "logged_in"
	StateGenerated SessionState = "generated"
	StateSaved     SessionState = "saved"
	StateExported  SessionState = "exported"
)

// InterestCatalogue is the fixed set of interests a plan can focus on.
var InterestCatalogue = []string{"Nature", "Adventure", "Food", "Culture", "Beaches", "History", "Shopping"}

// PlannerSession is the per-user context between actions. Its mutex
// serializes actions so one session never runs two transitions at once.
type PlannerSession struct {
	mu sync.Mutex

	ID          string
	AccountID   string
	DisplayName string
	State       SessionState
	Request     *request_models.GenerationRequest
	Itinerary   string
}

func (s *PlannerSession) hasItinerary() bool {
	switch s.State {
	case StateGenerated, StateSaved, StateExported:
		return s.Request != nil && s.Itinerary != ""
	}
	return false
}

func (s *PlannerSession) discardPlan() {
	s.Request = nil
	s.Itinerary = ""
}

type PlannerServiceInterface interface {
	Defaults() response_models.PlannerDefaultsResponse
	Interests() []string
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Logout(sessionID string) error
	Session(sessionID string) (*response_models.SessionResponse, error)
	Generate(ctx context.Context, sessionID string, request request_models.GenerationRequest) (*response_models.PlanResponse, error)
	Save(ctx context.Context, sessionID string) (*response_models.SaveTripResponse, error)
	Export(sessionID string) (*PlanDocument, error)
	History(ctx context.Context, sessionID string) ([]response_models.TripSummaryResponse, error)
	OpenTrip(ctx context.Context, sessionID, tripID string) (*response_models.TripDetailResponse, error)
	ExportTrip(ctx context.Context, sessionID, tripID string) (*PlanDocument, error)
}

type PlannerService struct {
	accountService        AccountServiceInterface
	tripService           TripServiceInterface
	itineraryService      ItineraryServiceInterface
	geoService            GeoServiceInterface
	recommendationService RecommendationServiceInterface
	exportService         ExportServiceInterface
	tokens                *utils.TokenIssuer
	sessions              mem.Store[*PlannerSession]
	sessionTTL            time.Duration
	now                   func() time.Time
	log                   *slog.Logger
}

type PlannerDeps struct {
	Accounts        AccountServiceInterface
	Trips           TripServiceInterface
	Itineraries     ItineraryServiceInterface
	Geo             GeoServiceInterface
	Recommendations RecommendationServiceInterface
	Export          ExportServiceInterface
	Tokens          *utils.TokenIssuer
	Sessions        mem.Store[*PlannerSession]
	SessionTTL      time.Duration
	Log             *slog.Logger
}

func NewPlannerService(deps PlannerDeps) PlannerServiceInterface {
	return &PlannerService{
		accountService:        deps.Accounts,
		tripService:           deps.Trips,
		itineraryService:      deps.Itineraries,
		geoService:            deps.Geo,
		recommendationService: deps.Recommendations,
		exportService:         deps.Export,
		tokens:                deps.Tokens,
		sessions:              deps.Sessions,
		sessionTTL:            deps.SessionTTL,
		now:                   time.Now,
		log:                   deps.Log,
	}
}

func (p *PlannerService) Defaults() response_models.PlannerDefaultsResponse {
	return response_models.PlannerDefaultsResponse{
		Country:    "India",
		City:       "Goa",
		Days:       5,
		Budget:     1500,
		TravelDate: utils.FormatTravelDate(p.now()),
		MinDays:    MinDays,
		MaxDays:    MaxDays,
		MinBudget:  MinBudget,
		MaxBudget:  MaxBudget,
		Interests:  p.Interests(),
	}
}

func (p *PlannerService) Interests() []string {
	return slices.Clone(InterestCatalogue)
}

func (p *PlannerService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := p.accountService.Authenticate(ctx, request)
	if err != nil {
		return nil, err
	}

	session := &PlannerSession{
		ID:          ulid.Make().String(),
		AccountID:   account.ID.String(),
		DisplayName: account.Name,
		State:       StateLoggedIn,
	}
	if session.DisplayName == "" {
		session.DisplayName = account.Email
	}

	token, err := p.tokens.CreateToken(session.AccountID, session.ID)
	if err != nil {
		p.log.Error("issue token", "err", err)
		return nil, utils.ErrInvalidCredentials
	}

	p.sessions.Set(session.ID, session, p.sessionTTL)
	p.log.Info("session started", "session_id", session.ID, "account_id", session.AccountID)

	return &response_models.AccountLoginResponse{
		Token:     token,
		SessionID: session.ID,
		State:     string(session.State),
	}, nil
}

// Logout is idempotent; an unknown or expired session is already logged out.
func (p *PlannerService) Logout(sessionID string) error {
	session, ok := p.sessions.Get(sessionID)
	if !ok {
		return nil
	}

	session.mu.Lock()
	session.State = StateLoggedOut
	session.discardPlan()
	session.mu.Unlock()

	p.sessions.Delete(sessionID)
	p.log.Info("session ended", "session_id", sessionID)
	return nil
}

// acquire locks the session; callers must call the returned release.
func (p *PlannerService) acquire(sessionID string) (*PlannerSession, func(), error) {
	session, ok := p.sessions.Get(sessionID)
	if !ok {
		return nil, nil, utils.ErrSessionNotFound
	}
	session.mu.Lock()
	if session.State == StateLoggedOut {
		session.mu.Unlock()
		return nil, nil, utils.ErrSessionNotFound
	}
	return session, session.mu.Unlock, nil
}

func (p *PlannerService) Session(sessionID string) (*response_models.SessionResponse, error) {
	session, release, err := p.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	resp := &response_models.SessionResponse{
		SessionID:   session.ID,
		State:       string(session.State),
		AccountID:   session.AccountID,
		DisplayName: session.DisplayName,
	}
	if session.hasItinerary() {
		resp.Plan = p.renderPlan(*session.Request, session.Itinerary)
	}
	return resp, nil
}

func (p *PlannerService) Generate(ctx context.Context, sessionID string, request request_models.GenerationRequest) (*response_models.PlanResponse, error) {
	if err := validatePlannerRequest(request); err != nil {
		return nil, err
	}

	session, release, err := p.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	// a new generation always replaces the previous plan
	session.discardPlan()
	session.State = StateLoggedIn

	text, err := p.itineraryService.Generate(ctx, request)
	if err != nil {
		return nil, err
	}

	request.Interests = slices.Clone(request.Interests)
	session.Request = &request
	session.Itinerary = text
	session.State = StateGenerated

	return p.renderPlan(request, text), nil
}

// renderPlan builds the displayed plan. Coordinates and recommendations are
// recomputed on every render.
func (p *PlannerService) renderPlan(request request_models.GenerationRequest, text string) *response_models.PlanResponse {
	resolution := p.geoService.Resolve(request.City)
	recommendation := p.recommendationService.Recommend(request.City, request.Budget)

	return &response_models.PlanResponse{
		Request:       request,
		ItineraryText: text,
		Sections:      ParseSections(text).SectionList(),
		Location: response_models.LocationResponse{
			Place:      resolution.Place,
			Latitude:   resolution.Coordinate.Latitude,
			Longitude:  resolution.Coordinate.Longitude,
			Provenance: string(resolution.Provenance),
			Message:    resolution.Message(),
		},
		Recommendations: recommendation.ToResponse(),
	}
}

// Save persists the current plan. Saving again creates another record.
func (p *PlannerService) Save(ctx context.Context, sessionID string) (*response_models.SaveTripResponse, error) {
	session, release, err := p.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	if !session.hasItinerary() {
		return nil, utils.ErrNoItinerary
	}

	tripID, err := p.tripService.Save(ctx, session.AccountID, *session.Request, session.Itinerary)
	if err != nil {
		return nil, err
	}
	session.State = StateSaved

	return &response_models.SaveTripResponse{TripID: tripID}, nil
}

func (p *PlannerService) Export(sessionID string) (*PlanDocument, error) {
	session, release, err := p.acquire(sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	if !session.hasItinerary() {
		return nil, utils.ErrNoItinerary
	}

	doc, err := p.exportService.Export(session.Request.City, session.Itinerary)
	if err != nil {
		return nil, err
	}
	session.State = StateExported
	return doc, nil
}

func (p *PlannerService) History(ctx context.Context, sessionID string) ([]response_models.TripSummaryResponse, error) {
	accountID, err := p.accountOf(sessionID)
	if err != nil {
		return nil, err
	}
	return p.tripService.List(ctx, accountID)
}

func (p *PlannerService) OpenTrip(ctx context.Context, sessionID, tripID string) (*response_models.TripDetailResponse, error) {
	accountID, err := p.accountOf(sessionID)
	if err != nil {
		return nil, err
	}
	return p.tripService.Get(ctx, tripID, accountID)
}

func (p *PlannerService) ExportTrip(ctx context.Context, sessionID, tripID string) (*PlanDocument, error) {
	trip, err := p.OpenTrip(ctx, sessionID, tripID)
	if err != nil {
		return nil, err
	}
	return p.exportService.Export(trip.City, trip.ItineraryText)
}

// accountOf returns the session owner. The lock is released before any
// store call.
func (p *PlannerService) accountOf(sessionID string) (string, error) {
	session, release, err := p.acquire(sessionID)
	if err != nil {
		return "", err
	}
	defer release()
	return session.AccountID, nil
}

func validatePlannerRequest(request request_models.GenerationRequest) error {
	if err := ValidateGenerationRequest(request); err != nil {
		return err
	}
	for _, interest := range request.Interests {
		if !slices.Contains(InterestCatalogue, interest) {
			return fmt.Errorf("%w: unknown interest %q", utils.ErrInvalidInput, interest)
		}
	}
	return nil
}
