package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/repositories"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fastHasher() utils.PasswordHasher {
	return utils.BcryptHasher{Cost: bcrypt.MinCost}
}

type fakeTextClient struct {
	mu      sync.Mutex
	reply   string
	err     error
	panics  bool
	prompts []string
}

func (f *fakeTextClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.panics {
		panic("client exploded")
	}
	return f.reply, f.err
}

func (f *fakeTextClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeRenderer struct {
	err   error
	texts []string
}

func (f *fakeRenderer) Render(text string) ([]byte, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-" + text), nil
}

type staticDataset struct {
	cities map[string]Coordinate
	err    error
	loads  int
}

func (s *staticDataset) Load() (map[string]Coordinate, error) {
	s.loads++
	return s.cities, s.err
}

var errDatasetMissing = errors.New("open worldcities.csv: no such file or directory")

type testStores struct {
	accounts repositories.AccountRepository
	trips    repositories.TripRepository
}

func newTestStores(t *testing.T) testStores {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := infra.OpenGorm(&config.Config{
		DBDriver:    "sqlite",
		DatabaseURL: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return testStores{
		accounts: repositories.NewAccountRepository(db),
		trips:    repositories.NewTripRepository(db),
	}
}

const sampleItinerary = `Here is your plan!

🗺️ **Trip Summary:** Sun, sand and seafood along the Konkan coast.

📅 **Day-wise Itinerary:**
Day 1
- **Morning:** Baga beach walk
Day 2
- **Morning:** Fort Aguada

💰 **Budget:** total within ₹124500, per day ~₹24900

🏨 **Hotels:**
1. Taj Exotica, Benaulim

🍽️ **Restaurants:**
1. Britto's, Baga

💡 **Travel Tips:**
- Rent a scooter
- Carry sunscreen
- Respect the lifeguard flags
`

type plannerFixture struct {
	planner  PlannerServiceInterface
	accounts AccountServiceInterface
	stores   testStores
	client   *fakeTextClient
	renderer *fakeRenderer
	sessions *mem.TTLStore[*PlannerSession]
	tokens   *utils.TokenIssuer
}

func newPlannerFixture(t *testing.T) *plannerFixture {
	t.Helper()
	log := discardLogger()
	stores := newTestStores(t)

	fx := &plannerFixture{
		stores:   stores,
		client:   &fakeTextClient{reply: sampleItinerary},
		renderer: &fakeRenderer{},
		sessions: mem.NewTTLStore[*PlannerSession](),
		tokens:   utils.NewTokenIssuer("test-secret", time.Hour),
	}
	fx.accounts = NewAccountService(stores.accounts, fastHasher(), log)
	fx.planner = NewPlannerService(PlannerDeps{
		Accounts:        fx.accounts,
		Trips:           NewTripService(stores.trips, log),
		Itineraries:     NewItineraryService(fx.client, log),
		Geo:             NewGeoService(&staticDataset{err: errDatasetMissing}, log),
		Recommendations: NewRecommendationService(),
		Export:          NewExportService(fx.renderer),
		Tokens:          fx.tokens,
		Sessions:        fx.sessions,
		SessionTTL:      time.Hour,
		Log:             log,
	})
	return fx
}
