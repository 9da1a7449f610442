package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"runji/database"
	"runji/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated SQLite database in a temp dir and closes it when the test ends.
func SetupTestDB(t *testing.T) *database.DbInstance {
	t.Helper()

	path := filepath.Join(t.TempDir(), "runji.db")
	inst, err := database.ConnectDb(database.Options{
		DatabaseURL: path,
		Transport:   database.TransportSQLite,
		LogLevel:    logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(inst.Db))

	t.Cleanup(func() {
		_ = inst.Close()
		_ = os.Remove(path)
	})
	return inst
}

// SeedExam inserts a school and one exam of subject and returns the exam.
func SeedExam(t *testing.T, db *gorm.DB, schoolName, subject string) models.Exam {
	t.Helper()

	school := models.School{Name: schoolName}
	require.NoError(t, db.Create(&school).Error)

	exam := models.Exam{
		SchoolID:   school.ID,
		SchoolName: school.Name,
		Year:       2025,
		Semester:   "2학기 중간",
		Subject:    subject,
	}
	require.NoError(t, db.Create(&exam).Error)
	return exam
}
