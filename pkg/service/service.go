// Package service implements the core operation set of the demo API:
// create/update/delete handlers with field validation, filtered and
// paginated listings, and the prediction stub. Transports (HTTP, CLI)
// call into this package and serialize what comes back; no request
// semantics live outside it.
package service

import (
	"log/slog"
	"time"

	"github.com/polyrpc/demoapi/internal/storage"
	"github.com/polyrpc/demoapi/pkg/api/types"
	"github.com/polyrpc/demoapi/pkg/logging"
	"github.com/polyrpc/demoapi/pkg/resource"
)

// ServiceName identifies this backend in health responses.
const ServiceName = "demoapi"

// Store bundles the collections the services operate on. Each
// collection is owned here exclusively; handlers receive the bundle by
// reference instead of reaching for ambient state.
type Store struct {
	Tasks  *storage.Collection[resource.Task]
	Users  *storage.Collection[resource.User]
	Posts  *storage.Collection[resource.Post]
	Models *storage.ModelCatalog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return newStore(nil, nil, nil)
}

// NewSeededStore creates a store preloaded with the demo data set.
func NewSeededStore() *Store {
	return newStore(storage.SeedTasks(), storage.SeedUsers(), storage.SeedModels())
}

func newStore(tasks []resource.Task, users []resource.User, models []resource.ModelInfo) *Store {
	return &Store{
		Tasks: storage.NewCollection(
			func(t resource.Task) int { return t.ID },
			func(t *resource.Task, id int) { t.ID = id },
			tasks...),
		Users: storage.NewCollection(
			func(u resource.User) int { return u.ID },
			func(u *resource.User, id int) { u.ID = id },
			users...),
		Posts: storage.NewCollection(
			func(p resource.Post) int { return p.ID },
			func(p *resource.Post, id int) { p.ID = id }),
		Models: storage.NewModelCatalog(models...),
	}
}

// Service exposes the demo API operations over a Store.
type Service struct {
	store     *Store
	log       *slog.Logger
	predictor Predictor
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithPredictor replaces the canned prediction stub. The replacement
// sees the same inputs and must produce the same result shape.
func WithPredictor(p Predictor) Option {
	return func(s *Service) { s.predictor = p }
}

// New creates a Service over the given store.
func New(store *Store, opts ...Option) *Service {
	s := &Service{
		store:     store,
		log:       logging.Nop(),
		predictor: stubPredictor{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HealthCheck reports the service as up.
func (s *Service) HealthCheck() types.HealthResponse {
	return types.HealthResponse{
		Status:    "ok",
		Service:   ServiceName,
		Timestamp: time.Now().UTC(),
	}
}
