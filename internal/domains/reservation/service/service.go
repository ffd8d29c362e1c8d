package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"facilio/config"
	"facilio/infras/kafka"
	"facilio/infras/otel"
	facilityModel "facilio/internal/domains/facility/model"
	facilityRepo "facilio/internal/domains/facility/repository"
	inventoryRepo "facilio/internal/domains/inventory/repository"
	"facilio/internal/domains/reservation/model"
	"facilio/internal/domains/reservation/model/dto"
	"facilio/internal/domains/reservation/repository"
	"facilio/shared"
	"facilio/shared/cache"
	"facilio/shared/constant"
	gDto "facilio/shared/dto"
	"facilio/shared/failure"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
)

// Event is the payload published to the reservation events topic on every
// lifecycle transition.
type Event struct {
	Event         string `json:"event"`
	ReservationID string `json:"reservation_id"`
	FacilityID    string `json:"facility_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Status        string `json:"status"`
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	SuggestDates(ctx context.Context, req dto.AvailabilityRequest) (dto.SuggestedDatesResponse, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	itemRepo     inventoryRepo.Item
	facilityRepo facilityRepo.Facility
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	publisher    kafka.Client
}

func New(
	repo repository.Reservation,
	itemRepo inventoryRepo.Item,
	facilityRepo facilityRepo.Facility,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Client,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		itemRepo:     itemRepo,
		facilityRepo: facilityRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		publisher:    publisher,
	}
}

// Create books a facility for the requested window. The conflict check and
// the insert run inside one facility-locked transaction, so two concurrent
// requests for overlapping windows cannot both pass the check: one commits,
// the other observes it and fails with a conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	window, err := req.Window()
	if err != nil {
		return res, err
	}

	facilityExists, err := s.facilityRepo.Exist(ctx, shared.FilterByID(req.FacilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if facility exists")

		return res, fmt.Errorf("failed to check if facility exists: %w", err)
	}

	if !facilityExists {
		return res, failure.BadRequestFromString("facility does not exist") // nolint:wrapcheck
	}

	reservation := req.ToModel(window, user)
	claims := req.Claims(reservation.ID)

	err = s.repo.WithFacilityLock(ctx, reservation.FacilityID, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.assertWindowFree(ctx, tx, reservation.FacilityID, constant.Empty, window); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to create reservation")

			return fmt.Errorf("failed to create reservation: %w", err)
		}

		if len(claims) > 0 {
			if err := s.commitClaims(ctx, tx, claims); err != nil {
				return err
			}

			if err := s.repo.InsertClaimsTx(ctx, tx, claims); err != nil {
				log.Error().Err(err).Msg("failed to create reservation items")

				return fmt.Errorf("failed to create reservation items: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.afterMutation(ctx, reservation, EventReservationCreated)

	res.FromModel(reservation, claims)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty || reservation.IsDeleted {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	claims, err := s.repo.GetClaims(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation items")

		return res, fmt.Errorf("failed to get reservation items: %w", err)
	}

	res.FromModel(reservation, claims)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update patches a reservation. Window and facility changes re-run the
// conflict check under the facility lock, and inventory is reconciled by the
// net difference between the old and the new committed quantities, so an
// unchanged item is never touched.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty || current.IsDeleted {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	window, err := req.EffectiveWindow(current)
	if err != nil {
		return err
	}

	facilityID := req.EffectiveFacility(current)
	if facilityID != current.FacilityID {
		facilityExists, err := s.facilityRepo.Exist(ctx, shared.FilterByID(facilityID, facilityModel.FieldID, facilityModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if facility exists")

			return fmt.Errorf("failed to check if facility exists: %w", err)
		}

		if !facilityExists {
			return failure.BadRequestFromString("facility does not exist") // nolint:wrapcheck
		}
	}

	next := current
	next.FacilityID = facilityID
	next.StartDate = window.Start
	next.EndDate = window.End
	if req.Status != constant.Empty {
		next.Status = req.Status
	}

	currentClaims, err := s.repo.GetClaims(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation items")

		return fmt.Errorf("failed to get reservation items: %w", err)
	}

	desiredClaims := currentClaims
	if req.Items != nil {
		desiredClaims = req.Claims(id)
	}

	updatedFields := shared.TransformFields(req, user)
	if req.StartDate != constant.Empty {
		updatedFields[model.FieldStartDate] = window.Start
	}
	if req.EndDate != constant.Empty {
		updatedFields[model.FieldEndDate] = window.End
	}

	err = s.repo.WithFacilityLock(ctx, facilityID, func(ctx context.Context, tx *sqlx.Tx) error {
		if next.Active() {
			if err := s.assertWindowFree(ctx, tx, facilityID, id, window); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update reservation")

			return fmt.Errorf("failed to update reservation: %w", err)
		}

		if err := s.reconcileInventory(ctx, tx, current.Active(), next.Active(), currentClaims, desiredClaims); err != nil {
			return err
		}

		if req.Items != nil {
			if err := s.repo.DeleteClaimsTx(ctx, tx, id); err != nil {
				log.Error().Err(err).Msg("failed to delete reservation items")

				return fmt.Errorf("failed to delete reservation items: %w", err)
			}

			if len(desiredClaims) > 0 {
				if err := s.repo.InsertClaimsTx(ctx, tx, desiredClaims); err != nil {
					log.Error().Err(err).Msg("failed to create reservation items")

					return fmt.Errorf("failed to create reservation items: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	event := EventReservationUpdated
	if !next.Active() && current.Active() && next.Status == model.StatusCancelled {
		event = EventReservationCancelled
	}

	s.afterMutation(ctx, next, event)

	return nil
}

// Delete soft-deletes a reservation. An active reservation releases its
// facility window and returns its committed inventory; an already inactive
// one only gets the flag flipped.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty || current.IsDeleted {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	claims, err := s.repo.GetClaims(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation items")

		return fmt.Errorf("failed to get reservation items: %w", err)
	}

	updatedFields := shared.TransformFields(struct {
		IsDeleted bool `db:"is_deleted"`
	}{IsDeleted: true}, user)

	err = s.repo.WithFacilityLock(ctx, current.FacilityID, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation")

			return fmt.Errorf("failed to delete reservation: %w", err)
		}

		if current.Active() {
			if err := s.releaseClaims(ctx, tx, claims); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	deleted := current
	deleted.IsDeleted = true

	s.afterMutation(ctx, deleted, EventReservationCancelled)

	return nil
}

// CheckAvailability reports whether the facility is free for the requested
// window. The answer is advisory: only Create and Update hold the facility
// lock, so a reservation may still land in between.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	window, err := req.Window()
	if err != nil {
		return res, err
	}

	windows, err := s.repo.ActiveWindows(ctx, req.FacilityID, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active windows")

		return res, fmt.Errorf("failed to get active windows: %w", err)
	}

	res = dto.AvailabilityResponse{
		FacilityID: req.FacilityID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Available:  !overlapsAny(window, windows),
	}

	return res, nil
}

// SuggestDates probes windows of the same duration starting one day after the
// requested start, and returns the first free ones. The active windows are
// fetched once; testing a shifted candidate against that set is equivalent to
// re-running the availability check per candidate.
func (s *serviceImpl) SuggestDates(ctx context.Context, req dto.AvailabilityRequest) (res dto.SuggestedDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SuggestDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	window, err := req.Window()
	if err != nil {
		return res, err
	}

	windows, err := s.repo.ActiveWindows(ctx, req.FacilityID, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active windows")

		return res, fmt.Errorf("failed to get active windows: %w", err)
	}

	res.FacilityID = req.FacilityID
	res.Suggestions = []dto.SuggestedWindow{}

	for offset := 1; offset <= s.cfg.Reservation.SuggestionWindowDays; offset++ {
		if len(res.Suggestions) >= s.cfg.Reservation.SuggestionLimit {
			break
		}

		candidate := window.ShiftDays(offset)
		if overlapsAny(candidate, windows) {
			continue
		}

		var suggestion dto.SuggestedWindow
		suggestion.FromWindow(candidate)
		res.Suggestions = append(res.Suggestions, suggestion)
	}

	return res, nil
}

func (s *serviceImpl) assertWindowFree(ctx context.Context, tx *sqlx.Tx, facilityID, excludeID string, window model.Window) error {
	windows, err := s.repo.ActiveWindowsTx(ctx, tx, facilityID, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active windows")

		return fmt.Errorf("failed to get active windows: %w", err)
	}

	if overlapsAny(window, windows) {
		return failure.Conflict("facility is already reserved for the requested dates") // nolint:wrapcheck
	}

	return nil
}

// commitClaims decrements stock for every claim. The repository enforces the
// non-negative invariant, so an oversubscribed item surfaces as a conflict
// and rolls the whole transaction back.
func (s *serviceImpl) commitClaims(ctx context.Context, tx *sqlx.Tx, claims []model.Claim) error {
	for _, claim := range claims {
		if err := s.itemRepo.AdjustQuantityTx(ctx, tx, claim.ItemID, -claim.Quantity); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) releaseClaims(ctx context.Context, tx *sqlx.Tx, claims []model.Claim) error {
	for _, claim := range claims {
		if err := s.itemRepo.AdjustQuantityTx(ctx, tx, claim.ItemID, claim.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// reconcileInventory applies the net change in committed quantity per item in
// one pass. Quantities only count while the reservation is active; an
// inactive side contributes zero.
func (s *serviceImpl) reconcileInventory(ctx context.Context, tx *sqlx.Tx, wasActive, willBeActive bool, oldClaims, newClaims []model.Claim) error {
	deltas := make(map[string]int)

	if wasActive {
		for _, claim := range oldClaims {
			deltas[claim.ItemID] -= claim.Quantity
		}
	}

	if willBeActive {
		for _, claim := range newClaims {
			deltas[claim.ItemID] += claim.Quantity
		}
	}

	itemIDs := make([]string, 0, len(deltas))
	for itemID := range deltas {
		itemIDs = append(itemIDs, itemID)
	}
	slices.Sort(itemIDs)

	for _, itemID := range itemIDs {
		delta := deltas[itemID]
		if delta == 0 {
			continue
		}

		if err := s.itemRepo.AdjustQuantityTx(ctx, tx, itemID, -delta); err != nil {
			return err
		}
	}

	return nil
}

// afterMutation invalidates the read caches and publishes the lifecycle
// event. Both are fire-and-forget: a cache or broker hiccup never fails a
// committed reservation.
func (s *serviceImpl) afterMutation(ctx context.Context, reservation model.Reservation, event string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, reservation.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)

		payload := Event{
			Event:         event,
			ReservationID: reservation.ID,
			FacilityID:    reservation.FacilityID,
			StartDate:     reservation.StartDate.Format(dto.DateLayout),
			EndDate:       reservation.EndDate.Format(dto.DateLayout),
			Status:        reservation.Status,
		}

		message := kafka.Message{Key: reservation.ID, Value: payload}
		if err := s.publisher.SendMessages(c, s.cfg.Kafka.Topics.ReservationEvents, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish reservation event")
		}
	}()
}

func overlapsAny(window model.Window, others []model.Window) bool {
	for _, other := range others {
		if window.Overlaps(other) {
			return true
		}
	}

	return false
}
