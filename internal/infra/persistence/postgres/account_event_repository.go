package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/infra/persistence/model"
)

// accountEventRepository implements repository.AccountEventRepository.
type accountEventRepository struct {
	db *gorm.DB
}

// NewAccountEventRepository is the constructor for accountEventRepository.
func NewAccountEventRepository(db *gorm.DB) repository.AccountEventRepository {
	return &accountEventRepository{db: db}
}

// Record inserts the event, ignoring duplicates of an already stored event id.
func (repo *accountEventRepository) Record(ctx context.Context, event *entity.AccountEvent) (bool, error) {
	row := &model.AccountEventModel{
		EventID:     event.ID,
		Type:        event.Type,
		AccountType: string(event.Account.Type),
		AccountID:   event.Account.ID,
		RequestID:   event.RequestID,
		OccurredAt:  event.OccurredAt,
		ReceivedAt:  event.ReceivedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(row)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record account event")
	}

	return result.RowsAffected == 1, nil
}
