package tutor

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("tutor name is required")
	ErrNegativeRate = errors.New("hourly rate cannot be negative")
)

// Tutor is the minimal profile the booking core needs; listing/review
// attributes live behind other services.
type Tutor struct {
	id              uuid.UUID
	name            string
	bio             string
	hourlyRateCents int64
	isActive        bool
}

func NewTutor(id uuid.UUID, name, bio string, hourlyRateCents int64, isActive bool) (*Tutor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	return &Tutor{
		id:              id,
		name:            name,
		bio:             strings.TrimSpace(bio),
		hourlyRateCents: hourlyRateCents,
		isActive:        isActive,
	}, nil
}

// Reconstruct rebuilds a Tutor from storage without re-validating.
func Reconstruct(id uuid.UUID, name, bio string, hourlyRateCents int64, isActive bool) *Tutor {
	return &Tutor{
		id:              id,
		name:            name,
		bio:             bio,
		hourlyRateCents: hourlyRateCents,
		isActive:        isActive,
	}
}

func (t *Tutor) ID() uuid.UUID          { return t.id }
func (t *Tutor) Name() string           { return t.name }
func (t *Tutor) Bio() string            { return t.bio }
func (t *Tutor) HourlyRateCents() int64 { return t.hourlyRateCents }
func (t *Tutor) IsActive() bool         { return t.isActive }
