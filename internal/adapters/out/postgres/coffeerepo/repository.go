package coffeerepo

import (
	"context"
	"errors"

	"waiter/internal/core/domain/model/coffee"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormCoffeeRepository implements ports.CoffeeRepository using GORM.
type GormCoffeeRepository struct {
	db      *gorm.DB
	codec   kernel.MoneyCodec
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCoffeeRepository(db *gorm.DB, codec kernel.MoneyCodec, tracker aggregateTracker) *GormCoffeeRepository {
	return &GormCoffeeRepository{
		db:      db,
		codec:   codec,
		tracker: tracker,
	}
}

// Add saves a new coffee.
func (r *GormCoffeeRepository) Add(ctx context.Context, aggregate *coffee.Coffee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := FromDomain(aggregate, r.codec)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a coffee by ID.
func (r *GormCoffeeRepository) Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CoffeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coffee", id.String())
		}
		return nil, err
	}

	return ToDomain(dto, r.codec)
}

// GetByName retrieves a coffee by its exact name.
func (r *GormCoffeeRepository) GetByName(ctx context.Context, name string) (*coffee.Coffee, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto CoffeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coffee", name)
		}
		return nil, err
	}

	return ToDomain(dto, r.codec)
}

// GetByIDs resolves ids in the given order. Repeated ids yield the same coffee again.
func (r *GormCoffeeRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*coffee.Coffee, error) {
	if len(ids) == 0 {
		return []*coffee.Coffee{}, nil
	}

	keys := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, id.Bytes())
	}

	var dtos []CoffeeDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", keys).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*coffee.Coffee, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto, r.codec)
		if err != nil {
			return nil, err
		}
		byID[c.ID()] = c
	}

	coffees := make([]*coffee.Coffee, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("coffee", id.String())
		}
		coffees = append(coffees, c)
	}

	return coffees, nil
}

// isUniqueViolation recognizes duplicate keys from both the pgx and the lib/pq connections.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}

	return false
}
