package memory

import (
	"sync"

	"github.com/naborsk/racequiz/internal/model"
	"github.com/naborsk/racequiz/internal/repository"
)

type TelemetryRepository struct {
	mu     sync.RWMutex
	nextID uint
	rows   []model.Telemetry

	// ReplaceErr simulates a transaction abort: ReplaceAll fails and the
	// prior set stays intact.
	ReplaceErr error
}

func NewTelemetryRepository() *TelemetryRepository {
	return &TelemetryRepository{nextID: 1}
}

var _ repository.TelemetryRepository = (*TelemetryRepository)(nil)

func (r *TelemetryRepository) FindAll() ([]model.Telemetry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Telemetry, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *TelemetryRepository) ReplaceAll(rows []model.Telemetry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ReplaceErr != nil {
		return r.ReplaceErr
	}
	replacement := make([]model.Telemetry, 0, len(rows))
	for _, row := range rows {
		if row.ID == 0 {
			row.ID = r.nextID
			r.nextID++
		}
		replacement = append(replacement, row)
	}
	r.rows = replacement
	return nil
}
