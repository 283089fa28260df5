package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"idscan/internal/models"
)

// Postgres backs RecordStore with a relational table. The uniqueIndex on
// id_number enforces the duplicate-key invariant at the database level.
type Postgres struct {
	db *gorm.DB
}

// OpenPostgres connects, tunes the pool and runs AutoMigrate for the
// identity_records table.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connection to db failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get db from GORM: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.IdentityRecord{}); err != nil {
		return nil, fmt.Errorf("AutoMigration failed for IdentityRecord: %w", err)
	}

	log.Println("connected to database successfully")
	return &Postgres{db: db}, nil
}

func (s *Postgres) FindByIDNumber(ctx context.Context, idNumber string) (*models.IdentityRecord, error) {
	var rec models.IdentityRecord
	err := s.db.WithContext(ctx).Where("id_number = ?", idNumber).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Postgres) Insert(ctx context.Context, rec models.NewRecord) (*models.IdentityRecord, error) {
	if err := validateNew(rec); err != nil {
		return nil, err
	}
	row := models.IdentityRecord{
		FullName:    rec.FullName,
		IDNumber:    rec.IDNumber,
		DateOfBirth: rec.DateOfBirth,
		ExpiryDate:  rec.ExpiryDate,
		Address:     rec.Address,
	}
	err := s.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateIDNumber
	} else if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Postgres) ListRecent(ctx context.Context, limit int) ([]models.IdentityRecord, error) {
	var recs []models.IdentityRecord
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Postgres) ListAll(ctx context.Context) ([]models.IdentityRecord, error) {
	var recs []models.IdentityRecord
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Close releases the underlying connection pool.
func (s *Postgres) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
