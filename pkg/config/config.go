package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Data DataConfig
	Log  LogConfig
}

// DataConfig locates the flat-file stores and the export output directory.
// Every path is injected into the owning store at construction so tests can
// point at isolated temporary directories.
type DataConfig struct {
	Dir             string
	StudentsFile    string
	CoursesFile     string
	EnrollmentsFile string
	ExportDir       string
}

type LogConfig struct {
	Level  string
	Format string
}

// StudentsPath returns the resolved students CSV path.
func (d DataConfig) StudentsPath() string {
	return filepath.Join(d.Dir, d.StudentsFile)
}

// CoursesPath returns the resolved courses CSV path.
func (d DataConfig) CoursesPath() string {
	return filepath.Join(d.Dir, d.CoursesFile)
}

// EnrollmentsPath returns the resolved enrollments CSV path.
func (d DataConfig) EnrollmentsPath() string {
	return filepath.Join(d.Dir, d.EnrollmentsFile)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// A missing .env is fine; environment variables and defaults apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Data = DataConfig{
		Dir:             v.GetString("DATA_DIR"),
		StudentsFile:    v.GetString("STUDENTS_FILE"),
		CoursesFile:     v.GetString("COURSES_FILE"),
		EnrollmentsFile: v.GetString("ENROLLMENTS_FILE"),
		ExportDir:       v.GetString("EXPORT_DIR"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("STUDENTS_FILE", "students.csv")
	v.SetDefault("COURSES_FILE", "courses.csv")
	v.SetDefault("ENROLLMENTS_FILE", "enrollments.csv")
	v.SetDefault("EXPORT_DIR", "./exports")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}
