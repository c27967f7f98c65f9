// Package inventory expone las operaciones del almacén: cada mutación pasa por el guard,
// escribe en el store y entrega el estado a la persistencia como un solo paso atómico.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/store"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Service única autoridad sobre un store. Las mutaciones se serializan con el lock de escritura;
// las lecturas derivan de un mismo estado bajo el lock de lectura.
type Service struct {
	mu    sync.RWMutex
	store *store.Store
	repo  repository.SnapshotRepository
	log   *logger.Logger

	now        func() time.Time
	newID      func() string
	bcryptCost int
}

// Option ajusta el servicio (reloj, ids, costo de bcrypt).
type Option func(*Service)

// WithClock fija el reloj usado para fechas por defecto y marcas de auditoría.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator reemplaza la generación de ids (por defecto UUID v4).
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithBcryptCost cambia el costo de hash de credenciales; los tests usan bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// NewService construye el servicio sobre un store ya cargado.
func NewService(st *store.Store, repo repository.SnapshotRepository, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		store:      st,
		repo:       repo,
		log:        log.Component("inventory"),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open carga el estado inicial desde repo y construye el servicio.
func Open(ctx context.Context, repo repository.SnapshotRepository, log *logger.Logger, opts ...Option) (*Service, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar inventario: %w", err)
	}
	st, err := store.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("estado inicial inválido: %w", err)
	}
	return NewService(st, repo, log, opts...), nil
}

// mutate ejecuta fn con el lock de escritura. Si fn o la persistencia fallan, el store vuelve
// exactamente al estado previo.
func (s *Service) mutate(ctx context.Context, op string, changed entity.Changeset, fn func(st *store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := s.store.Checkpoint()
	if err := fn(s.store); err != nil {
		s.store.Rollback(cp)
		s.log.Debug().Str("op", op).Err(err).Msg("mutación rechazada")
		return err
	}
	if err := s.repo.Save(ctx, s.store.Snapshot(), changed); err != nil {
		s.store.Rollback(cp)
		s.log.Warn().Str("op", op).Err(err).Msg("persistencia falló, cambios revertidos")
		return fmt.Errorf("persistir %s: %w", op, err)
	}
	s.log.Debug().Str("op", op).Msg("mutación aplicada")
	return nil
}

func (s *Service) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash credencial: %w", err)
	}
	return string(h), nil
}
