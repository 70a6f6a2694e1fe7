package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, ".", cfg.Data.Dir)
	assert.Equal(t, "students.csv", cfg.Data.StudentsFile)
	assert.Equal(t, "courses.csv", cfg.Data.CoursesFile)
	assert.Equal(t, "enrollments.csv", cfg.Data.EnrollmentsFile)
	assert.Equal(t, "./exports", cfg.Data.ExportDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("DATA_DIR", "/var/lib/registry")
	t.Setenv("STUDENTS_FILE", "people.csv")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "/var/lib/registry", cfg.Data.Dir)
	assert.Equal(t, "people.csv", cfg.Data.StudentsFile)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestDataConfigPaths(t *testing.T) {
	data := DataConfig{
		Dir:             "/tmp/data",
		StudentsFile:    "students.csv",
		CoursesFile:     "courses.csv",
		EnrollmentsFile: "enrollments.csv",
	}
	assert.Equal(t, filepath.Join("/tmp/data", "students.csv"), data.StudentsPath())
	assert.Equal(t, filepath.Join("/tmp/data", "courses.csv"), data.CoursesPath())
	assert.Equal(t, filepath.Join("/tmp/data", "enrollments.csv"), data.EnrollmentsPath())
}
