package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"facilio/infras/otel"
	"facilio/infras/postgres"
	"facilio/internal/domains/reservation/model"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/logger"
	gRepo "facilio/shared/repository"
)

type Reservation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	ActiveWindows(ctx context.Context, facilityID, excludeID string) ([]model.Window, error)
	ActiveWindowsTx(ctx context.Context, tx *sqlx.Tx, facilityID, excludeID string) ([]model.Window, error)
	GetClaims(ctx context.Context, reservationID string) ([]model.Claim, error)
	InsertClaimsTx(ctx context.Context, tx *sqlx.Tx, claims []model.Claim) error
	DeleteClaimsTx(ctx context.Context, tx *sqlx.Tx, reservationID string) error
	WithFacilityLock(ctx context.Context, facilityID string, fn func(ctx context.Context, tx *sqlx.Tx) error) error
}

type selecter interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	claims gRepo.Repository[model.Claim]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otl),
		claims:     gRepo.NewRepository[model.Claim](model.ClaimsEntityName, model.ClaimsTableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

// ActiveWindows fetches the (start_date, end_date) projection of every
// reservation that currently holds the facility: status pending or confirmed
// and not soft-deleted. Conflict detection only ever needs the windows, so the
// full rows are never transferred.
func (repo *repositoryImpl) ActiveWindows(ctx context.Context, facilityID, excludeID string) ([]model.Window, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ActiveWindows")
	defer scope.End()

	return repo.activeWindows(ctx, scope, repo.db.Read, facilityID, excludeID)
}

// ActiveWindowsTx is ActiveWindows on the write connection, for use inside a
// facility-locked transaction so the check and the subsequent insert observe
// the same state.
func (repo *repositoryImpl) ActiveWindowsTx(ctx context.Context, tx *sqlx.Tx, facilityID, excludeID string) ([]model.Window, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ActiveWindowsTx")
	defer scope.End()

	return repo.activeWindows(ctx, scope, tx, facilityID, excludeID)
}

func (repo *repositoryImpl) activeWindows(ctx context.Context, scope otel.Scope, sel selecter, facilityID, excludeID string) ([]model.Window, error) {
	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s = ? AND %s IN (?) AND %s = FALSE",
		model.FieldStartDate, model.FieldEndDate, model.TableName,
		model.FieldFacilityID, model.FieldStatus, model.FieldIsDeleted,
	)
	args := []interface{}{facilityID, model.ActiveStatuses}

	if excludeID != "" {
		query += fmt.Sprintf(" AND %s <> ?", model.FieldID)
		args = append(args, excludeID)
	}

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build active windows query (%s): %w", model.EntityName, err)
	}

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var windows []model.Window

	if err := sel.SelectContext(ctx, &windows, query, inArgs...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active windows (%s): %w", model.EntityName, err)
	}

	return windows, nil
}

func (repo *repositoryImpl) GetClaims(ctx context.Context, reservationID string) ([]model.Claim, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetClaims")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationID,
				Value:    reservationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ClaimsTableName,
			},
		},
	}

	return repo.claims.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertClaimsTx(ctx context.Context, tx *sqlx.Tx, claims []model.Claim) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertClaimsTx")
	defer scope.End()

	return repo.claims.InsertBulkTx(ctx, tx, claims) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteClaimsTx(ctx context.Context, tx *sqlx.Tx, reservationID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.DeleteClaimsTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationID,
				Value:    reservationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ClaimsTableName,
			},
		},
	}

	return repo.claims.DeleteTx(ctx, tx, filter) //nolint:wrapcheck
}

// WithFacilityLock runs fn inside a write transaction holding the facility's
// Postgres advisory lock. All reservation mutations for one facility are
// serialized through this lock, which closes the window between the conflict
// check and the write where two concurrent requests could both pass.
func (repo *repositoryImpl) WithFacilityLock(ctx context.Context, facilityID string, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.WithFacilityLock")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", facilityID); err != nil {
		_ = tx.Rollback()
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire facility lock (%s): %w", model.EntityName, err)
	}

	if err = fn(ctx, tx); err != nil {
		_ = tx.Rollback()

		// Domain failures pass through unmodified for the handler to map.
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
