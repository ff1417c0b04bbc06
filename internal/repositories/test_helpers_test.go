package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-management-api.com/task-management-api/pkg/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database")
	require.NoError(t, db.AutoMigrate(&model.Task{}), "failed to migrate database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func strPtr(s string) *string {
	return &s
}

func createTask(t *testing.T, repo *TaskRepository, contact, status, taskType string) *model.Task {
	t.Helper()

	task, err := repo.Create(context.Background(), &model.Task{
		EntityName:    "Acme",
		TaskType:      taskType,
		TimeOfTask:    "09:00",
		ContactPerson: contact,
		Status:        status,
	})
	require.NoError(t, err)
	return task
}
