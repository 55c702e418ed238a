package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain"
	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/domain/analysis"
	"gorm.io/gorm"
)

// analysisRecord is the persistence shape. The full report is stored
// as a jsonb document; only the id and timestamp are queryable columns.
type analysisRecord struct {
	ID        string    `gorm:"primaryKey;column:id"`
	VideoID   string    `gorm:"column:video_id;index"`
	Result    []byte    `gorm:"column:result;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (analysisRecord) TableName() string {
	return "analyses"
}

// Migrate creates or updates the analyses table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&analysisRecord{})
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) analysis.Repository {
	return &analysisRepository{
		db: db,
	}
}

func (r *analysisRepository) Save(ctx context.Context, stored *analysis.StoredResult) error {
	payload, err := json.Marshal(stored.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	record := analysisRecord{
		ID:        stored.ID,
		VideoID:   stored.Result.VideoID,
		Result:    payload,
		CreatedAt: stored.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *analysisRepository) Get(ctx context.Context, id string) (*analysis.StoredResult, error) {
	var record analysisRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("analysis", id)
		}
		return nil, err
	}

	var result analysis.Result
	if err := json.Unmarshal(record.Result, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}

	return &analysis.StoredResult{
		ID:        record.ID,
		Result:    result,
		CreatedAt: record.CreatedAt,
	}, nil
}
