package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studio-inventory-backend/internal/model"
)

// ErrStudioNotFound is returned when a studio document does not exist.
var ErrStudioNotFound = errors.New("studio not found")

// Store defines the interface for all database operations. Studio writes
// are always whole-document replacements: the last writer's full snapshot
// wins, so two editors touching different units of the same studio can
// still overwrite each other. That limitation is accepted, not fixed here.
type Store interface {
	DB() *gorm.DB

	SeedStudios(ctx context.Context, studios []model.Studio) error
	ListStudios(ctx context.Context) ([]StudioSnapshot, error)
	GetStudio(ctx context.Context, id string) (StudioSnapshot, error)
	SaveStudio(ctx context.Context, studio model.Studio) error
	ReplaceStudios(ctx context.Context, studios []model.Studio, syncedAt time.Time) error

	AppendHistory(ctx context.Context, rec model.HistoryRecord) error
	ListHistory(ctx context.Context, limit int) ([]model.HistoryRecord, error)

	ListPersonnel(ctx context.Context) ([]string, error)
	AddPersonnel(ctx context.Context, name string) error
	RemovePersonnel(ctx context.Context, name string) error
}

// StudioSnapshot pairs a decoded studio document with its sync timestamp.
type StudioSnapshot struct {
	Studio   model.Studio
	SyncedAt *time.Time
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// SeedStudios inserts the initial studio documents, leaving any that
// already exist untouched.
func (s *gormStore) SeedStudios(ctx context.Context, studios []model.Studio) error {
	docs := make([]model.StudioDocument, 0, len(studios))
	for i, st := range studios {
		data, err := marshalDocument(st)
		if err != nil {
			return fmt.Errorf("failed to encode studio %s: %w", st.ID, err)
		}
		docs = append(docs, model.StudioDocument{ID: st.ID, Position: i, Data: data})
	}
	if len(docs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(&docs).Error
}

// ListStudios returns every studio document decoded, in seed order.
func (s *gormStore) ListStudios(ctx context.Context) ([]StudioSnapshot, error) {
	var docs []model.StudioDocument
	if err := s.db.WithContext(ctx).Order("position").Find(&docs).Error; err != nil {
		return nil, err
	}
	out := make([]StudioSnapshot, 0, len(docs))
	for _, doc := range docs {
		st, err := unmarshalDocument(doc.Data)
		if err != nil {
			return nil, fmt.Errorf("corrupt studio document %s: %w", doc.ID, err)
		}
		out = append(out, StudioSnapshot{Studio: st, SyncedAt: doc.SyncedAt})
	}
	return out, nil
}

func (s *gormStore) GetStudio(ctx context.Context, id string) (StudioSnapshot, error) {
	var doc model.StudioDocument
	if err := s.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StudioSnapshot{}, ErrStudioNotFound
		}
		return StudioSnapshot{}, err
	}
	st, err := unmarshalDocument(doc.Data)
	if err != nil {
		return StudioSnapshot{}, fmt.Errorf("corrupt studio document %s: %w", doc.ID, err)
	}
	return StudioSnapshot{Studio: st, SyncedAt: doc.SyncedAt}, nil
}

// SaveStudio replaces the studio's full document payload.
func (s *gormStore) SaveStudio(ctx context.Context, studio model.Studio) error {
	data, err := marshalDocument(studio)
	if err != nil {
		return fmt.Errorf("failed to encode studio %s: %w", studio.ID, err)
	}
	res := s.db.WithContext(ctx).Model(&model.StudioDocument{}).
		Where("id = ?", studio.ID).
		Update("data", data)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudioNotFound
	}
	return nil
}

// ReplaceStudios writes the given reconciled documents, stamping each with
// syncedAt; a document that does not exist yet is created. Failures are
// collected per studio and returned joined; studios that wrote successfully
// stay written, the operation has no rollback. It is safe to re-run.
func (s *gormStore) ReplaceStudios(ctx context.Context, studios []model.Studio, syncedAt time.Time) error {
	var errs []error
	for i, st := range studios {
		data, err := marshalDocument(st)
		if err != nil {
			errs = append(errs, fmt.Errorf("studio %s: %w", st.ID, err))
			continue
		}
		doc := model.StudioDocument{ID: st.ID, Position: i, Data: data, SyncedAt: &syncedAt}
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "synced_at", "updated_at"}),
		}).Create(&doc).Error
		if err != nil {
			errs = append(errs, fmt.Errorf("studio %s: %w", st.ID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("sync failed for %d of %d studios: %w", len(errs), len(studios), errors.Join(errs...))
	}
	return nil
}

func (s *gormStore) AppendHistory(ctx context.Context, rec model.HistoryRecord) error {
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *gormStore) ListHistory(ctx context.Context, limit int) ([]model.HistoryRecord, error) {
	var records []model.HistoryRecord
	q := s.db.WithContext(ctx).Order("fixed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *gormStore) ListPersonnel(ctx context.Context) ([]string, error) {
	var people []model.Personnel
	if err := s.db.WithContext(ctx).Order("created_at, name").Find(&people).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return names, nil
}

func (s *gormStore) AddPersonnel(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&model.Personnel{Name: name}).Error
}

func (s *gormStore) RemovePersonnel(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Delete(&model.Personnel{Name: name}).Error
}
