package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/course-registry/internal/menu"
	"github.com/noah-isme/course-registry/internal/repository"
	"github.com/noah-isme/course-registry/internal/service"
	"github.com/noah-isme/course-registry/pkg/config"
	"github.com/noah-isme/course-registry/pkg/export"
	"github.com/noah-isme/course-registry/pkg/logger"
	"github.com/noah-isme/course-registry/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	studentRepo, err := repository.NewStudentRepository(cfg.Data.StudentsPath())
	if err != nil {
		logr.Sugar().Fatalw("failed to load students", "error", err)
	}
	courseRepo, err := repository.NewCourseRepository(cfg.Data.CoursesPath())
	if err != nil {
		logr.Sugar().Fatalw("failed to load courses", "error", err)
	}
	enrollmentRepo, err := repository.NewEnrollmentRepository(cfg.Data.EnrollmentsPath())
	if err != nil {
		logr.Sugar().Fatalw("failed to load enrollments", "error", err)
	}

	exportStore, err := storage.NewLocalStorage(cfg.Data.ExportDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare export storage", "error", err)
	}

	validate := validator.New()
	students := service.NewStudentService(studentRepo, validate, logr)
	courses := service.NewCourseService(courseRepo, validate, logr)
	enrollments := service.NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo, logr)
	reports := service.NewReportService(enrollments, studentRepo, courseRepo, exportStore, logr,
		export.NewCSVExporter(), export.NewPDFExporter())

	logr.Sugar().Infow("registry loaded",
		"students", studentRepo.Count(),
		"courses", courseRepo.Count(),
		"enrollments", enrollmentRepo.Count(),
	)

	menu.New(os.Stdin, os.Stdout, students, courses, enrollments, reports, logr).Run()
}
