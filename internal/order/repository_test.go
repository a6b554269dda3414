package order

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/membership"
)

func setupOrderMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB, membership.NewRepository(sqlxDB))

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func orderColumns() []string {
	return []string{"id", "user_id", "plan_id", "payment_method", "status", "total_cents", "created_at", "updated_at"}
}

func TestCreateSupplementOrder(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	now := time.Now()
	items := []OrderItem{
		{ProductID: 5, Quantity: 2, UnitPriceCents: 1500},
		{ProductID: 7, Quantity: 1, UnitPriceCents: 3000},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (user_id, payment_method, status, total_cents) VALUES ($1, $2, 'pending', $3) RETURNING id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at")).
		WithArgs(1, "card", int64(6000)).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(42, 1, nil, "card", "pending", 6000, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents) VALUES ($1, $2, $3, $4)")).
		WithArgs(42, 5, 2, int64(1500)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents) VALUES ($1, $2, $3, $4)")).
		WithArgs(42, 7, 1, int64(3000)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	o, err := repo.CreateSupplementOrder(context.Background(), 1, "card", items, 6000)
	require.NoError(t, err)
	require.Equal(t, 42, o.ID)
	require.Equal(t, StatusPending, o.Status)
	require.Nil(t, o.PlanID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubscriptionOrder(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (user_id, plan_id, payment_method, status, total_cents) VALUES ($1, $2, $3, 'pending', $4) RETURNING id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at")).
		WithArgs(1, 3, "card", int64(4900)).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(43, 1, 3, "card", "pending", 4900, now, now))

	o, err := repo.CreateSubscriptionOrder(context.Background(), 1, 3, "card", 4900)
	require.NoError(t, err)
	require.Equal(t, 43, o.ID)
	require.NotNil(t, o.PlanID)
	require.Equal(t, 3, *o.PlanID)
}

func TestGetByID(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at FROM orders WHERE id = $1 AND status != 'deleted'")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(42, 1, nil, "card", "pending", 6000, now, now))

	o, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 42, o.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at FROM orders WHERE id = $1 AND status != 'deleted'")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)
}

func TestListByUser(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at FROM orders WHERE user_id = $1 AND status != 'deleted' ORDER BY created_at DESC")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(orderColumns()).
			AddRow(43, 1, 3, "card", "delivered", 4900, now, now).
			AddRow(42, 1, nil, "card", "pending", 6000, now, now))

	orders, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, 43, orders[0].ID)
}

func TestListItems(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, order_id, product_id, quantity, unit_price_cents FROM order_items WHERE order_id = $1 ORDER BY id ASC")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "unit_price_cents"}).
			AddRow(1, 42, 5, 2, 1500).
			AddRow(2, 42, 7, 1, 3000))

	items, err := repo.ListItems(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(1500), items[0].UnitPriceCents)
}

func TestConfirmSupplementOrder(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'delivered', updated_at = NOW() WHERE id = $1 AND status = 'pending'")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	issued, err := repo.Confirm(context.Background(), &Order{ID: 42, UserID: 1}, nil)
	require.NoError(t, err)
	require.Nil(t, issued)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmSubscriptionOrderIssuesMembership(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	planID := 3
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'delivered', updated_at = NOW() WHERE id = $1 AND status = 'pending'")).
		WithArgs(43).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE memberships SET active = false, ends_at = NOW(), updated_at = NOW() WHERE user_id = $1 AND active = true AND deleted_at IS NULL")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO memberships (user_id, plan_id, starts_at, ends_at, active) VALUES ($1, $2, $3, $4, true) RETURNING id, user_id, plan_id, starts_at, ends_at, active, deleted_at, created_at, updated_at")).
		WithArgs(1, planID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan_id", "starts_at", "ends_at", "active", "deleted_at", "created_at", "updated_at"}).
			AddRow(10, 1, planID, now, now.AddDate(0, 1, 0), true, nil, now, now))
	mock.ExpectCommit()

	plan := &catalog.Plan{ID: planID, BillingCycle: catalog.BillingMonthly}
	issued, err := repo.Confirm(context.Background(), &Order{ID: 43, UserID: 1, PlanID: &planID}, plan)
	require.NoError(t, err)
	require.NotNil(t, issued)
	require.Equal(t, 10, issued.ID)
	require.True(t, issued.Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmAlreadyDelivered(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'delivered', updated_at = NOW() WHERE id = $1 AND status = 'pending'")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Confirm(context.Background(), &Order{ID: 42, UserID: 1}, nil)
	require.ErrorIs(t, err, ErrAlreadyDelivered)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmMembershipConflictRollsBack(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	planID := 3

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'delivered', updated_at = NOW() WHERE id = $1 AND status = 'pending'")).
		WithArgs(43).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE memberships SET active = false, ends_at = NOW(), updated_at = NOW() WHERE user_id = $1 AND active = true AND deleted_at IS NULL")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO memberships (user_id, plan_id, starts_at, ends_at, active) VALUES ($1, $2, $3, $4, true)")).
		WithArgs(1, planID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	plan := &catalog.Plan{ID: planID, BillingCycle: catalog.BillingMonthly}
	_, err := repo.Confirm(context.Background(), &Order{ID: 43, UserID: 1, PlanID: &planID}, plan)
	require.ErrorIs(t, err, ErrMembershipConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'cancelled', updated_at = NOW() WHERE id = $1 AND status = 'pending'")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 42)
	require.NoError(t, err)
}

func TestCancelNotPending(t *testing.T) {
	repo, mock, close := setupOrderMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'cancelled', updated_at = NOW() WHERE id = $1 AND status = 'pending'")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 42)
	require.ErrorIs(t, err, ErrOrderNotPending)
}
