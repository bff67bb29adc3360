package handlers

import (
	"bitumen_production/internal/domain/blending"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"bitumen_production/pkg"
	"errors"
	"net/http"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// mapError is the single error table of the API. Status codes follow the
// kettle contract: 409 busy, 422 arithmetic or stock violations, 404 stale
// or unknown ids.
func mapError(err error) *pkg.AppError {
	var stockErr *entities.InsufficientStockError
	switch {
	case errors.Is(err, entities.ErrProcessAlreadyRunning):
		return pkg.NewDomainErrorSimple("PROCESS_ALREADY_RUNNING", "A conversion batch is already boiling", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockInsufficient):
		return pkg.NewDomainErrorSimple("STOCK_INSUFFICIENT", "Raw material stock is insufficient", http.StatusUnprocessableEntity).
			WithDetail("category", string(entities.CategoryBN3))
	case errors.As(err, &stockErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Stock is insufficient", http.StatusUnprocessableEntity).
			WithDetail("category", string(stockErr.Category))
	case errors.Is(err, usecase.ErrInvalidSplit):
		return pkg.NewDomainErrorSimple("INVALID_SPLIT", "Sale plus filler exceeds the actual output", http.StatusUnprocessableEntity)
	case errors.Is(err, blending.ErrBlendExceeded):
		return pkg.NewDomainErrorSimple("BLEND_EXCEEDED", "Packaging entries exceed the blend mass", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNonPositiveOutput):
		return pkg.NewDomainErrorSimple("NON_POSITIVE_OUTPUT", "Projected output must be positive", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNoActiveProcess):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_PROCESS", "No active process", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Conversion batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductionRecordNotFound):
		return pkg.NewDomainErrorSimple("PRODUCTION_RECORD_NOT_FOUND", "Production record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidConversionInput),
		errors.Is(err, usecase.ErrInvalidBatchID),
		errors.Is(err, usecase.ErrInvalidRecordID),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrUtilityNotStocked),
		errors.Is(err, usecase.ErrEmptyBlend),
		errors.Is(err, blending.ErrInvalidComposition),
		errors.Is(err, blending.ErrInvalidUtilityCosts),
		errors.Is(err, blending.ErrInvalidBlendPortion),
		errors.Is(err, blending.ErrUnknownPackagingType),
		errors.Is(err, blending.ErrSecondaryQtyRequired),
		errors.Is(err, blending.ErrInvalidExtraCost):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetail("reason", err.Error())
	case errors.Is(err, usecase.ErrStatusStreamUnavailable):
		return pkg.NewDomainErrorSimple("STREAM_UNAVAILABLE", "Status stream is not configured, poll instead", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// Observer receives production outcomes; a nil Observer is ignored.
type Observer interface {
	SetKettleBoiling(boiling bool)
	ObserveRun(kind, outcome string, unitCost float64)
	ObserveStockRejection(category string)
}

type noopObserver struct{}

func (noopObserver) SetKettleBoiling(bool)              {}
func (noopObserver) ObserveRun(string, string, float64) {}
func (noopObserver) ObserveStockRejection(string)       {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return noopObserver{}
	}
	return o
}

// observeFailure counts rejected runs and names the category a debit failed on.
func observeFailure(o Observer, kind string, err error) {
	var stockErr *entities.InsufficientStockError
	if errors.As(err, &stockErr) {
		o.ObserveStockRejection(string(stockErr.Category))
	} else if errors.Is(err, usecase.ErrStockInsufficient) {
		o.ObserveStockRejection(string(entities.CategoryBN3))
	}
	o.ObserveRun(kind, "rejected", 0)
}
