package store

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "boxcli/internal/errors"
	"boxcli/pkg/contracts/domain"
)

// FilmRow is the persisted form of one unified record.
type FilmRow struct {
	gorm.Model
	Title      string
	Industry   string
	LeadActor  string
	DirectorID string
	GenreID    string
	LanguageID string

	Director *string
	Genre    *string
	Language *string

	BudgetCrores    *float64
	WorldwideCrores *float64
	OverseasCrores  *float64
	IndiaCrores     *float64
	FirstDayCrores  *float64

	IMDBRating     *float64
	RuntimeMinutes *int

	ReleaseDate *time.Time
	Year        *int
	Weekday     *string

	Verdict     *string
	OTTPlatform *string
}

// TableName keeps the snapshot table readable from sqlite3 directly.
func (FilmRow) TableName() string {
	return "films"
}

// Store persists dataset snapshots to a SQLite file so downstream tools can
// query the joined data without re-running the pipeline.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open opens (or creates) the snapshot database and migrates its schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, apperrors.NewStoreError("open snapshot database "+path, err)
	}

	if err := db.AutoMigrate(&FilmRow{}); err != nil {
		return nil, apperrors.NewStoreError("migrate snapshot schema", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// SaveDataset replaces the snapshot with the given dataset in one
// transaction.
func (s *Store) SaveDataset(ctx context.Context, ds *domain.Dataset) error {
	rows := make([]FilmRow, 0, ds.Len())
	for _, f := range ds.Films {
		rows = append(rows, filmRow(f))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&FilmRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return apperrors.NewStoreError("replace snapshot rows", err)
	}

	s.logger.InfoContext(ctx, "persisted dataset snapshot",
		slog.Int("films", len(rows)))
	return nil
}

// CountFilms returns the number of persisted rows.
func (s *Store) CountFilms(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&FilmRow{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewStoreError("count snapshot rows", err)
	}
	return count, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func filmRow(f domain.Film) FilmRow {
	return FilmRow{
		Title:           f.Title,
		Industry:        f.Industry,
		LeadActor:       f.LeadActor,
		DirectorID:      f.DirectorID,
		GenreID:         f.GenreID,
		LanguageID:      f.LanguageID,
		Director:        f.Director,
		Genre:           f.Genre,
		Language:        f.Language,
		BudgetCrores:    f.BudgetCrores,
		WorldwideCrores: f.WorldwideCrores,
		OverseasCrores:  f.OverseasCrores,
		IndiaCrores:     f.IndiaCrores,
		FirstDayCrores:  f.FirstDayCrores,
		IMDBRating:      f.IMDBRating,
		RuntimeMinutes:  f.RuntimeMinutes,
		ReleaseDate:     f.ReleaseDate,
		Year:            f.Year,
		Weekday:         f.Weekday,
		Verdict:         f.Verdict,
		OTTPlatform:     f.OTTPlatform,
	}
}
