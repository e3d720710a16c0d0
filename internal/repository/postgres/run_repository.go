package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

var ErrRunNotFound = errors.New("simulation run not found")

type RunRepository struct {
	DB *gorm.DB
}

var _ simulation.RunRepository = (*RunRepository)(nil)

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{DB: db}
}

func (r *RunRepository) SaveRun(ctx context.Context, run domain.SimulationRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to save simulation run: %w", err)
	}

	return nil
}

// ListRuns returns the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	var runs []domain.SimulationRun
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to query simulation_runs: %w", err)
	}

	return runs, nil
}

func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var run domain.SimulationRun
	err := r.DB.WithContext(ctx).First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation_runs: %w", err)
	}

	return &run, nil
}

func (r *RunRepository) DeleteRun(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	res := r.DB.WithContext(ctx).Delete(&domain.SimulationRun{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete simulation run: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRunNotFound
	}

	return nil
}
