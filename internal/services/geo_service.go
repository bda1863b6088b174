package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/metrics"
)

type Provenance string

const (
	ProvenanceDataset  Provenance = "dataset"
	ProvenanceFallback Provenance = "fallback"
	ProvenanceDefault  Provenance = "default"
)

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DefaultRegion is the center of India, shown when nothing better is known.
var DefaultRegion = Coordinate{Latitude: 20.5937, Longitude: 78.9629}

// fallbackCoordinates covers names the city dataset does not reliably hold.
var fallbackCoordinates = map[string]Coordinate{
	"udupi":   {Latitude: 13.3409, Longitude: 74.7421},
	"manipal": {Latitude: 13.3419, Longitude: 74.7558},
	"malpe":   {Latitude: 13.3615, Longitude: 74.7033},
	"goa":     {Latitude: 15.2993, Longitude: 74.1240},
	"jaipur":  {Latitude: 26.9124, Longitude: 75.7873},
	"mumbai":  {Latitude: 19.0760, Longitude: 72.8777},
}

var errMalformedDataset = errors.New("city dataset is missing city/lat/lng columns")

type Resolution struct {
	Place      string
	Coordinate Coordinate
	Provenance Provenance
}

// Message is the user-facing note on how precise the location is.
func (r Resolution) Message() string {
	switch r.Provenance {
	case ProvenanceDataset:
		return fmt.Sprintf("%s found: %g, %g", r.Place, r.Coordinate.Latitude, r.Coordinate.Longitude)
	case ProvenanceFallback:
		return fmt.Sprintf("Using fallback coordinates for %s.", r.Place)
	default:
		return "City not in dataset. Showing India map."
	}
}

// NormalizePlace case-folds and trims a free-text place name.
func NormalizePlace(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// DisplayPlace title-cases a place name for display.
func DisplayPlace(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

// CityDataset is the read-only city coordinate table, keyed by normalized name.
type CityDataset interface {
	Load() (map[string]Coordinate, error)
}

// CSVCityDataset reads a worldcities-style CSV on every Load. When a city
// name appears more than once the first row wins.
type CSVCityDataset struct {
	Path string
}

func NewCSVCityDataset(path string) *CSVCityDataset {
	return &CSVCityDataset{Path: path}
}

func (d *CSVCityDataset) Load() (map[string]Coordinate, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCityCSV(f)
}

// ParseCityCSV accepts lat/lng or latitude/longitude column names. Rows
// with unparsable coordinates are skipped.
func ParseCityCSV(r io.Reader) (map[string]Coordinate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	cityCol, latCol, lngCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "city":
			cityCol = i
		case "lat", "latitude":
			latCol = i
		case "lng", "lon", "longitude":
			lngCol = i
		}
	}
	if cityCol < 0 || latCol < 0 || lngCol < 0 {
		return nil, errMalformedDataset
	}

	out := make(map[string]Coordinate)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if len(record) <= cityCol || len(record) <= latCol || len(record) <= lngCol {
			continue
		}

		key := NormalizePlace(record[cityCol])
		if key == "" {
			continue
		}
		if _, seen := out[key]; seen {
			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(record[latCol]), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(record[lngCol]), 64)
		if errLat != nil || errLng != nil {
			continue
		}
		out[key] = Coordinate{Latitude: lat, Longitude: lng}
	}
	return out, nil
}

const cityDatasetCacheKey = "cities"

// CachedCityDataset keeps the last successful load for ttl. Failed loads are
// not cached so a dataset that appears later is picked up.
type CachedCityDataset struct {
	source CityDataset
	cache  mem.Store[map[string]Coordinate]
	ttl    time.Duration
}

func NewCachedCityDataset(source CityDataset, cache mem.Store[map[string]Coordinate], ttl time.Duration) *CachedCityDataset {
	return &CachedCityDataset{source: source, cache: cache, ttl: ttl}
}

func (c *CachedCityDataset) Load() (map[string]Coordinate, error) {
	if cities, ok := c.cache.Get(cityDatasetCacheKey); ok {
		return cities, nil
	}
	cities, err := c.source.Load()
	if err != nil {
		return nil, err
	}
	c.cache.Set(cityDatasetCacheKey, cities, c.ttl)
	return cities, nil
}

type GeoServiceInterface interface {
	Resolve(placeName string) Resolution
}

type GeoService struct {
	dataset CityDataset
	log     *slog.Logger
}

func NewGeoService(dataset CityDataset, log *slog.Logger) GeoServiceInterface {
	return &GeoService{
		dataset: dataset,
		log:     log,
	}
}

// Resolve never fails: dataset, then fallback table, then default region.
func (g *GeoService) Resolve(placeName string) Resolution {
	key := NormalizePlace(placeName)
	res := Resolution{Place: DisplayPlace(placeName)}

	cities, err := g.dataset.Load()
	if err != nil {
		g.log.Warn("city dataset unavailable, degrading", "err", err)
	}

	if coord, ok := cities[key]; ok && key != "" {
		res.Coordinate, res.Provenance = coord, ProvenanceDataset
	} else if coord, ok := fallbackCoordinates[key]; ok {
		res.Coordinate, res.Provenance = coord, ProvenanceFallback
	} else {
		res.Coordinate, res.Provenance = DefaultRegion, ProvenanceDefault
	}

	metrics.ObserveResolution(string(res.Provenance))
	return res
}
