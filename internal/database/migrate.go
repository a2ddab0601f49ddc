package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/akholodov/salon-booking-service/internal/config"
)

// Migrate применяет миграции схемы через golang-migrate
// Отсутствие новых миграций ошибкой не считается
func Migrate(cfg config.Database) error {
	path, err := resolveMigrationsPath(cfg.MigrationsPath)
	if err != nil {
		return fmt.Errorf("failed to locate migrations directory: %w", err)
	}

	m, err := migrate.New("file://"+path, cfg.URL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	return nil
}

// resolveMigrationsPath ищет каталог миграций вверх от рабочей директории,
// чтобы запуск из тестов и из корня проекта работал одинаково
func resolveMigrationsPath(configured string) (string, error) {
	if filepath.IsAbs(configured) {
		return configured, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, configured)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory %q not found", configured)
		}
		dir = parent
	}
}
