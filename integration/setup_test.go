package integration_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/auth"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// setupTestDB connects to the database named by TEST_DSN. Integration tests
// are skipped when it is unset or when -short is given.
func setupTestDB(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("TEST_DSN not set, skipping integration test")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	return db
}

func cleanTables(t *testing.T, db *sqlx.DB) {
	tables := []string{
		"check_in_sessions",
		"gym_access_credentials",
		"memberships",
		"order_items",
		"orders",
		"gym_plans",
		"products",
		"plans",
		"gyms",
		"users",
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		require.NoError(t, err, "Failed to clean table "+table)
	}
}

func createTestUser(t *testing.T, db *sqlx.DB, email, name string) int {
	hashedPassword, _ := auth.HashPassword("password123")

	var userID int
	err := db.QueryRow(`
		INSERT INTO users (email, name, password_hash, role)
		VALUES ($1, $2, $3, 'member')
		RETURNING id
	`, email, name, hashedPassword).Scan(&userID)

	require.NoError(t, err)
	return userID
}

func createTestGym(t *testing.T, db *sqlx.DB, name string) int {
	var gymID int
	err := db.QueryRow(`
		INSERT INTO gyms (name, location, is_active)
		VALUES ($1, 'Test Location', true)
		RETURNING id
	`, name).Scan(&gymID)

	require.NoError(t, err)
	return gymID
}

func createTestPlan(t *testing.T, db *sqlx.DB, name, billingCycle string, priceCents int64) int {
	var planID int
	err := db.QueryRow(`
		INSERT INTO plans (name, billing_cycle, price_cents)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, billingCycle, priceCents).Scan(&planID)

	require.NoError(t, err)
	return planID
}

func linkGymPlan(t *testing.T, db *sqlx.DB, gymID, planID int) {
	_, err := db.Exec(`INSERT INTO gym_plans (gym_id, plan_id) VALUES ($1, $2)`, gymID, planID)
	require.NoError(t, err)
}

func createTestProduct(t *testing.T, db *sqlx.DB, name string, priceCents int64) int {
	var productID int
	err := db.QueryRow(`
		INSERT INTO products (name, price_cents, is_sellable)
		VALUES ($1, $2, true)
		RETURNING id
	`, name, priceCents).Scan(&productID)

	require.NoError(t, err)
	return productID
}
