package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/godilite/score-report/internal/repository/models"
	"github.com/godilite/score-report/pkg/cache"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dbTimeout = 1 * time.Second

	// SnapshotCacheKey is the cache key of the shared reference snapshot.
	SnapshotCacheKey = "reference:snapshot:v1"
)

// Source delivers raw reference data. Implementations need not validate.
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Load reads src and validates the result. Callers should refuse to serve
// when it fails.
func Load(ctx context.Context, src Source) (*Tables, error) {
	snap, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}
	return snap.Tables()
}

// EmbeddedSource serves Default().
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) (Snapshot, error) {
	return Default(), nil
}

// FileSource reads a YAML document shaped like Snapshot.
type FileSource struct {
	Path string
}

func (f FileSource) Load(_ context.Context) (Snapshot, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(f.Path), yaml.Parser()); err != nil {
		return Snapshot{}, fmt.Errorf("%w: read %s: %v", ErrConfiguration, f.Path, err)
	}

	var snap Snapshot
	if err := k.UnmarshalWithConf("", &snap, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode %s: %v", ErrConfiguration, f.Path, err)
	}
	return snap, nil
}

// Store is the persistence contract StoreSource reads from.
type Store interface {
	GetClassAverages(ctx context.Context) ([]models.ClassAverageRow, error)
	GetScoreBins(ctx context.Context) ([]models.ScoreBinRow, error)
}

// StoreSource assembles a Snapshot from database rows.
type StoreSource struct {
	store Store
}

// NewStoreSource creates a StoreSource.
func NewStoreSource(store Store) *StoreSource {
	if store == nil {
		panic("store must not be nil")
	}
	return &StoreSource{store: store}
}

func (s *StoreSource) Load(ctx context.Context) (Snapshot, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	avgRows, err := s.store.GetClassAverages(dbCtx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrSourceFailure, err)
	}
	binRows, err := s.store.GetScoreBins(dbCtx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrSourceFailure, err)
	}

	snap := Snapshot{
		ClassAverages: make([]ClassReference, 0, len(avgRows)),
	}
	for _, r := range avgRows {
		snap.ClassAverages = append(snap.ClassAverages, ClassReference{
			Subject:      r.Subject,
			ClassAverage: r.ClassAverage,
		})
	}

	index := make(map[string]int)
	for _, r := range binRows {
		i, ok := index[r.Subject]
		if !ok {
			i = len(snap.Distributions)
			index[r.Subject] = i
			snap.Distributions = append(snap.Distributions, DistributionSpec{Subject: r.Subject})
		}
		snap.Distributions[i].Bins = append(snap.Distributions[i].Bins, Bin{
			Lower: r.LowerBound,
			Upper: r.UpperBound,
			Count: r.StudentCount,
		})
	}
	return snap, nil
}

// CachedSource puts a shared cache in front of another source so that a
// fleet of instances reads the database once per TTL. Only snapshots that
// validate are cached.
type CachedSource struct {
	next   Source
	cache  cache.Cacher
	ttl    time.Duration
	logger *zap.Logger
	sf     singleflight.Group
}

// NewCachedSource wraps next with c.
func NewCachedSource(next Source, c cache.Cacher, ttl time.Duration, logger *zap.Logger) *CachedSource {
	if next == nil || c == nil {
		panic("source and cache must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.Named("reference-cache"),
	}
}

func (s *CachedSource) Load(ctx context.Context) (Snapshot, error) {
	return cache.FindAndCache(ctx, s.cache, &s.sf, SnapshotCacheKey, s.ttl, s.logger, func(fetchCtx context.Context) (Snapshot, error) {
		snap, err := s.next.Load(fetchCtx)
		if err != nil {
			return Snapshot{}, err
		}
		if _, err := snap.Tables(); err != nil {
			return Snapshot{}, err
		}
		return snap, nil
	})
}
