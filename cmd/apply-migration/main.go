package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/database"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/logger"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/config"

	"go.uber.org/zap"
)

// Usage: apply-migration [file.sql ...]
// Without arguments every migrations/*.sql file is applied in name order.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "apply-migration")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	files := os.Args[1:]
	if len(files) == 0 {
		files, err = filepath.Glob(filepath.Join("migrations", "*.sql"))
		if err != nil {
			zl.Fatal("failed to list migrations", zap.Error(err))
		}
		sort.Strings(files)
	}
	if len(files) == 0 {
		zl.Fatal("no migration files")
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zl.Fatal("cannot connect to database", zap.Error(err))
	}
	defer database.Close(db)

	zl.Info("connected to database", zap.String("database", cfg.Database.Database))

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			zl.Fatal("failed to read migration file", zap.String("file", file), zap.Error(err))
		}

		statements := splitStatements(string(content))
		for i, stmt := range statements {
			if _, err := db.Exec(stmt); err != nil {
				zl.Fatal("failed to execute statement",
					zap.String("file", file),
					zap.Int("statement", i+1),
					zap.String("sql", preview(stmt)),
					zap.Error(err),
				)
			}
		}
		zl.Info("migration applied", zap.String("file", file), zap.Int("statements", len(statements)))
	}

	fmt.Println("Migration completed successfully")
}

// splitStatements drops "--" comment lines and splits on ";".
// Statements must not contain ";" inside literals.
func splitStatements(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	var out []string
	for _, stmt := range strings.Split(b.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func preview(stmt string) string {
	return stmt[:min(100, len(stmt))]
}
