package repositoryImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"silage/database"
	"silage/entities"
	"silage/pkg/apperr"
)

func f64(v float64) *float64 { return &v }

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file::memory:", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.TrenchControl{}).Error)
	return db
}

func countFoss(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entities.FossSample{}).Count(&n).Error)
	return n
}

func TestCreateFoss_StoresAllRows(t *testing.T) {
	db := newDB(t)
	rows := []entities.FossSample{{ID: 77, DryMatter: f64(32)}, {DryMatter: f64(35)}}

	require.NoError(t, New(db).CreateFoss(context.Background(), 1, rows))
	assert.Equal(t, int64(2), countFoss(t, db))
	assert.Equal(t, uint(1), rows[0].TrenchControlID)
	assert.NotEqual(t, uint(77), rows[0].ID)
	assert.NotZero(t, rows[1].ID)
}

func TestCreateFoss_MissingTrenchControl(t *testing.T) {
	db := newDB(t)

	err := New(db).CreateFoss(context.Background(), 9, []entities.FossSample{{DryMatter: f64(30)}})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
	assert.Equal(t, int64(0), countFoss(t, db))
}

func TestCreateFoss_FailedWriteLeavesNothing(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:fail_foss", func(tx *gorm.DB) {
		if tx.Statement.Table == "foss_data" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	err := New(db).CreateFoss(context.Background(), 1, []entities.FossSample{{DryMatter: f64(30)}, {DryMatter: f64(31)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, int64(0), countFoss(t, db))
}
