package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"facilio/infras/otel"
	"facilio/infras/postgres"
	"facilio/internal/domains/inventory/model"
	reservationModel "facilio/internal/domains/reservation/model"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/failure"
	"facilio/shared/logger"
	gRepo "facilio/shared/repository"
	"facilio/shared/timezone"
)

type Item interface {
	Insert(ctx context.Context, model model.Item) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Item, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Item, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AdjustQuantity(ctx context.Context, itemID string, delta int) error
	AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, itemID string, delta int) error
	SumActiveClaims(ctx context.Context, itemID string) (int, error)
}

type adjuster interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Item]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Item {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Item](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// AdjustQuantity applies a signed delta to one item's quantity as a single
// conditional update. The non-negative invariant is enforced in the statement
// itself, so concurrent adjustments cannot interleave a load with a save and
// drive the quantity below zero.
func (repo *repositoryImpl) AdjustQuantity(ctx context.Context, itemID string, delta int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory_item.AdjustQuantity")
	defer scope.End()

	return repo.adjustQuantity(ctx, scope, repo.db.Write, itemID, delta)
}

func (repo *repositoryImpl) AdjustQuantityTx(ctx context.Context, tx *sqlx.Tx, itemID string, delta int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory_item.AdjustQuantityTx")
	defer scope.End()

	return repo.adjustQuantity(ctx, scope, tx, itemID, delta)
}

func (repo *repositoryImpl) adjustQuantity(ctx context.Context, scope otel.Scope, exec adjuster, itemID string, delta int) error {
	if delta == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + $1, %s = $2 WHERE %s = $3 AND %s + $1 >= 0",
		model.TableName, model.FieldQuantity, model.FieldQuantity,
		constant.FieldModifiedAt, model.FieldID, model.FieldQuantity,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := exec.ExecContext(ctx, query, delta, timezone.Now(), itemID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to adjust quantity (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if rows > 0 {
		return nil
	}

	// No row changed: either the item is missing or the decrement would have
	// gone negative. Disambiguate for the caller.
	var quantity int

	existsQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", model.FieldQuantity, model.TableName, model.FieldID)

	err = exec.GetContext(ctx, &quantity, existsQuery, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound(fmt.Sprintf("inventory item %s not found", itemID)) //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to check item quantity (%s): %w", model.EntityName, err)
	}

	return failure.Conflict(fmt.Sprintf("insufficient quantity for inventory item %s", itemID)) //nolint:wrapcheck
}

// SumActiveClaims recomputes the quantity of an item committed to active,
// non-deleted reservations. Availability is always derived this way rather
// than read from a cached column.
func (repo *repositoryImpl) SumActiveClaims(ctx context.Context, itemID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory_item.SumActiveClaims")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(claims.%s), 0) FROM %s claims JOIN %s res ON res.%s = claims.%s WHERE claims.%s = ? AND res.%s IN (?) AND res.%s = FALSE",
		reservationModel.FieldQuantity,
		reservationModel.ClaimsTableName,
		reservationModel.TableName,
		reservationModel.FieldID,
		reservationModel.FieldReservationID,
		reservationModel.FieldItemID,
		reservationModel.FieldStatus,
		reservationModel.FieldIsDeleted,
	)

	query, args, err := sqlx.In(query, itemID, reservationModel.ActiveStatuses)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to build claims query (%s): %w", model.EntityName, err)
	}

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	if err := repo.db.Read.GetContext(ctx, &total, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum active claims (%s): %w", model.EntityName, err)
	}

	return total, nil
}
