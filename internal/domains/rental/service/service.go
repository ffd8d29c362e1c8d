package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"facilio/config"
	"facilio/infras/otel"
	inventoryRepo "facilio/internal/domains/inventory/repository"
	"facilio/internal/domains/rental/model"
	"facilio/internal/domains/rental/model/dto"
	"facilio/internal/domains/rental/repository"
	"facilio/shared"
	"facilio/shared/cache"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/failure"
	"facilio/shared/timezone"
)

const (
	cacheGetRental    = "rental:get"
	cacheGetAllRental = "rental:gets"
	cacheCountRental  = "rental:count"
)

type Rental interface {
	CheckOut(ctx context.Context, req dto.CheckOutRequest) (dto.RentalResponse, error)
	Return(ctx context.Context, id string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRentalsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RentalResponse, error)
}

type serviceImpl struct {
	repo     repository.Rental
	itemRepo inventoryRepo.Item
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Rental, itemRepo inventoryRepo.Item, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rental {
	return &serviceImpl{
		repo:     repo,
		itemRepo: itemRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// CheckOut hands out a quantity of an item. The stock decrement is a single
// conditional update, so an oversubscribed request fails with a conflict
// before any rental record exists. If the insert fails afterwards the
// decrement is compensated.
func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	rental := req.ToModel(user)

	if err = s.itemRepo.AdjustQuantity(ctx, rental.ItemID, -rental.Quantity); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, rental); err != nil {
		log.Error().Err(err).Msg("failed to create rental")

		if adjustErr := s.itemRepo.AdjustQuantity(ctx, rental.ItemID, rental.Quantity); adjustErr != nil {
			log.Error().Err(adjustErr).Msg("failed to compensate stock decrement")
		}

		return res, fmt.Errorf("failed to create rental: %w", err)
	}

	s.invalidate(ctx, rental.ID)

	res.FromModel(rental)

	return res, nil
}

// Return closes a rental and puts the quantity back on hand.
func (s *serviceImpl) Return(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Return")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	rental, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return failure.NotFound("rental not found") // nolint:wrapcheck
	}

	if rental.Status == model.StatusReturned {
		return failure.BadRequestFromString("rental has already been returned") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct {
		Status     string `db:"status"`
		ReturnedAt string `db:"returned_at"`
	}{
		Status:     model.StatusReturned,
		ReturnedAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rental")

		return fmt.Errorf("failed to update rental: %w", err)
	}

	if err = s.itemRepo.AdjustQuantity(ctx, rental.ItemID, rental.Quantity); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRentalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRental, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rentals")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rentals")

		return res, fmt.Errorf("failed to get rentals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rentals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRental, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRental, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental")

		return res, nil
	}

	rental, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return res, fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return res, failure.NotFound("rental not found") // nolint:wrapcheck
	}

	res.FromModel(rental)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRental, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete rental from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRental)
		shared.InvalidateCaches(c, s.cache, cacheCountRental)
	}()
}
