package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio-inventory-backend/internal/catalog"
	"studio-inventory-backend/internal/model"
)

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// newSQLiteStore spins up a migrated in-memory database for behavioral tests.
func newSQLiteStore(t *testing.T) Store {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.StudioDocument{},
		&model.HistoryRecord{},
		&model.Personnel{},
		&model.PushSubscription{},
	))
	return NewGormStore(db)
}

func TestGormStore_SaveStudio_NotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "studio_documents" SET`)).
		WithArgs(Any{}, Any{}, "studio-404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.SaveStudio(context.Background(), model.Studio{ID: "studio-404", Name: "Gone"})
	assert.ErrorIs(t, err, ErrStudioNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_AppendHistory(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "history_records"`)).
		WithArgs(Any{}, Any{}, Any{}, Any{}, Any{}, Any{}, Any{}, Any{}, Any{}, Any{}, Any{}).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := model.HistoryRecord{
		ID:             "hist-1",
		EquipmentID:    "s1-cam-1",
		UnitIndex:      1,
		EquipmentName:  "Sony A7S III body",
		StudioName:     "Studio 1",
		FixedAt:        time.Now().UTC(),
		FixedBy:        "Hana",
		PreviousStatus: model.StatusDamaged,
		Remark:         "lens cracked",
	}
	assert.NoError(t, s.AppendHistory(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_SeedAndReadBack(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	studios := catalog.Studios()
	require.NoError(t, s.SeedStudios(ctx, studios))

	// Seeding again must not clobber existing documents.
	require.NoError(t, s.SeedStudios(ctx, studios))

	snapshots, err := s.ListStudios(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, len(studios))
	for i, snap := range snapshots {
		assert.Equal(t, studios[i].ID, snap.Studio.ID)
		assert.Nil(t, snap.SyncedAt)
	}

	snap, err := s.GetStudio(ctx, "studio-1")
	require.NoError(t, err)
	assert.Equal(t, "Studio 1", snap.Studio.Name)
	assert.Equal(t, studios[0].Equipment, snap.Studio.Equipment)

	_, err = s.GetStudio(ctx, "studio-404")
	assert.ErrorIs(t, err, ErrStudioNotFound)
}

func TestGormStore_SaveStudioRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedStudios(ctx, catalog.Studios()))

	snap, err := s.GetStudio(ctx, "studio-1")
	require.NoError(t, err)

	snap.Studio.Equipment[0].Units[0].Status = model.StatusDamaged
	snap.Studio.Equipment[0].Units[0].Remark = "dropped on set"
	require.NoError(t, s.SaveStudio(ctx, snap.Studio))

	reloaded, err := s.GetStudio(ctx, "studio-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDamaged, reloaded.Studio.Equipment[0].Units[0].Status)
	assert.Equal(t, "dropped on set", reloaded.Studio.Equipment[0].Units[0].Remark)
}

func TestGormStore_ReplaceStudiosStampsSyncedAt(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	studios := catalog.Studios()
	require.NoError(t, s.SeedStudios(ctx, studios))

	syncedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.ReplaceStudios(ctx, studios, syncedAt))

	snapshots, err := s.ListStudios(ctx)
	require.NoError(t, err)
	for _, snap := range snapshots {
		require.NotNil(t, snap.SyncedAt)
		assert.Equal(t, syncedAt, snap.SyncedAt.UTC())
	}
}

func TestGormStore_HistoryOrdering(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := model.HistoryRecord{
			ID:             fmt.Sprintf("hist-%d", i),
			EquipmentID:    "s1-cam-1",
			UnitIndex:      1,
			EquipmentName:  "Sony A7S III body",
			StudioName:     "Studio 1",
			FixedAt:        base.Add(time.Duration(i) * time.Hour),
			FixedBy:        "Hana",
			PreviousStatus: model.StatusDamaged,
			Remark:         "fixed",
		}
		require.NoError(t, s.AppendHistory(ctx, rec))
	}

	records, err := s.ListHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "hist-2", records[0].ID)
	assert.Equal(t, "hist-1", records[1].ID)
}

func TestGormStore_PersonnelSetSemantics(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddPersonnel(ctx, "Hana"))
	require.NoError(t, s.AddPersonnel(ctx, "Mori"))
	// Duplicate add is a no-op.
	require.NoError(t, s.AddPersonnel(ctx, "Hana"))

	names, err := s.ListPersonnel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hana", "Mori"}, names)

	require.NoError(t, s.RemovePersonnel(ctx, "Hana"))
	names, err = s.ListPersonnel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mori"}, names)
}
