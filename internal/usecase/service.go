package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Service validates requests once, up front, and forwards them to the
// configured ports. Bad input never reaches generation, so callers get
// either a full set or a typed error, never partial output.
type Service struct {
	Solver    ports.Solver
	Builder   ports.Builder
	Validator ports.Validator
	Exporter  ports.Exporter
}

func NewService(s ports.Solver, b ports.Builder, v ports.Validator, e ports.Exporter) *Service {
	return &Service{Solver: s, Builder: b, Validator: v, Exporter: e}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// GenerateSet builds count puzzles at the named difficulty.
func (u *Service) GenerateSet(ctx context.Context, count int, difficulty string) (*domain.Set, ports.Stats, error) {
	if u.Builder == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if count < 1 {
		return nil, ports.Stats{}, fmt.Errorf("%w: got %d", domain.ErrInvalidCount, count)
	}
	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Builder.Build(ctx, count, d)
}

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Count(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Count(ctx, g, limit)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Export(ctx context.Context, w io.Writer, s *domain.Set) error {
	if u.Exporter == nil {
		return errNotConfigured
	}
	return u.Exporter.Export(ctx, w, s)
}
