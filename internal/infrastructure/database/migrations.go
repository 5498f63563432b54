package database

import (
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica as migrações pendentes do diretório migrations
func RunMigrations() error {
	sourceURL := "file://migrations"

	m, err := migrate.New(sourceURL, ConnectionURL())
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	log.Println("Migrações aplicadas com sucesso")
	return nil
}
