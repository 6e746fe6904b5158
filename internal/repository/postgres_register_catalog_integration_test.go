//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/config"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/common/database"
	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/google/uuid"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getTestDB(t *testing.T) *sql.DB {
	cfg := &config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "xspoc"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to database: %v", err)
		return nil
	}
	return db
}

// seedTestNode inserts one node with a facility tag, a wildcard parameter and a scan row.
func seedTestNode(t *testing.T, db *sql.DB, nodeID string, assetID uuid.UUID) {
	stmts := []string{
		`INSERT INTO node_master (node_id, asset_guid, poc_type) VALUES ($1, $2, 8)`,
		`INSERT INTO facility_tags (node_id, address, description, eng_units, data_type, value)
		 VALUES ($1, 1001, 'Header Pressure', 'psi', 2, 98.6)`,
		`INSERT INTO current_raw_scan_data (node_id, address, value, date_time_updated)
		 VALUES ($1, 2001, 12.5, NOW())`,
	}
	for i, stmt := range stmts {
		var err error
		if i == 0 {
			_, err = db.Exec(stmt, nodeID, assetID.String())
		} else {
			_, err = db.Exec(stmt, nodeID)
		}
		if err != nil {
			t.Fatalf("seed statement %d failed: %v", i+1, err)
		}
	}
}

func cleanupTestNode(t *testing.T, db *sql.DB, nodeID string) {
	db.Exec(`DELETE FROM current_raw_scan_data WHERE node_id = $1`, nodeID)
	db.Exec(`DELETE FROM facility_tags WHERE node_id = $1`, nodeID)
	db.Exec(`DELETE FROM node_master WHERE node_id = $1`, nodeID)
}

func TestPostgresRepositories_Integration(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	ctx := context.Background()
	nodeID := "it-" + uuid.NewString()[:8]
	assetID := uuid.New()
	cleanupTestNode(t, db, nodeID)
	defer cleanupTestNode(t, db, nodeID)
	seedTestNode(t, db, nodeID, assetID)

	nodes := NewPostgresNodesRepository(db)
	node, err := nodes.GetNodeByAssetID(ctx, assetID)
	if err != nil {
		t.Fatalf("GetNodeByAssetID failed: %v", err)
	}
	if node.NodeID != nodeID || node.PocType != 8 {
		t.Errorf("unexpected node: %+v", node)
	}

	if _, err := nodes.GetNodeByAssetID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown asset, got %v", err)
	}

	catalog := NewPostgresRegisterCatalogRepository(db)
	tags, err := catalog.ListFacilityTags(ctx, nodeID)
	if err != nil {
		t.Fatalf("ListFacilityTags failed: %v", err)
	}
	if len(tags) != 1 || tags[0].Address != 1001 || tags[0].Value == nil || *tags[0].Value != 98.6 {
		t.Errorf("unexpected facility tags: %+v", tags)
	}

	params, err := catalog.ListParameters(ctx, node.PocType)
	if err != nil {
		t.Fatalf("ListParameters failed: %v", err)
	}
	for _, p := range params {
		if p.PocType != node.PocType && p.PocType != domain.PocTypeWildcard {
			t.Errorf("parameter with foreign poc_type returned: %+v", p)
		}
	}

	scan := NewPostgresCurrentScanRepository(db)
	values, err := scan.ListCurrentScanData(ctx, nodeID)
	if err != nil {
		t.Fatalf("ListCurrentScanData failed: %v", err)
	}
	if len(values) != 1 || values[0].Address != 2001 || values[0].UpdatedAt == nil {
		t.Errorf("unexpected scan values: %+v", values)
	}
}
