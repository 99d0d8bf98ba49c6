package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/solo-mizan/goru-club/internal/aggregate"
	"github.com/solo-mizan/goru-club/internal/apperr"
	"github.com/solo-mizan/goru-club/internal/models"
)

type CowPurchaseService struct {
	purchases CowPurchaseStore
	receipts  ReceiptStore
	logger    *slog.Logger
}

func NewCowPurchaseService(purchases CowPurchaseStore, receipts ReceiptStore, logger *slog.Logger) *CowPurchaseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CowPurchaseService{
		purchases: purchases,
		receipts:  receipts,
		logger:    logger,
	}
}

// List returns all cow purchases, most recent first
func (s *CowPurchaseService) List(ctx context.Context) ([]models.CowPurchase, error) {
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}
	return purchases, nil
}

// Get returns a cow purchase by id
func (s *CowPurchaseService) Get(ctx context.Context, id int) (*models.CowPurchase, error) {
	purchase, err := s.purchases.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Cow purchase")
		}
		return nil, apperr.StoreFault(err)
	}
	return purchase, nil
}

// Create validates and persists a new cow purchase. A receipt, when
// supplied, is stored before the record is written; a failed store
// aborts the creation.
func (s *CowPurchaseService) Create(ctx context.Context, req models.CreateCowPurchaseRequest, receipt *ReceiptFile) (*models.CowPurchase, error) {
	var fields []apperr.FieldError
	if req.Amount < 1 {
		fields = append(fields, apperr.FieldError{Field: "amount", Msg: "Amount is required and must be a positive number"})
	}
	if len(req.MemberIDs) == 0 {
		fields = append(fields, apperr.FieldError{Field: "member_ids", Msg: "At least one participating member is required"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	purchase := &models.CowPurchase{
		Amount: req.Amount,
		Date:   time.Now(),
		Notes:  req.Notes,
	}
	if req.Date != nil {
		purchase.Date = *req.Date
	}

	if receipt != nil {
		path, err := s.receipts.Save(*receipt)
		if err != nil {
			return nil, apperr.FileIOFault(err)
		}
		purchase.ReceiptImage = path
	}

	if err := s.purchases.Create(ctx, purchase, req.MemberIDs); err != nil {
		return nil, apperr.StoreFault(err)
	}

	// Reload so the response carries resolved member names
	return s.Get(ctx, purchase.ID)
}

// Update merges the supplied fields into an existing cow purchase.
// When a new receipt arrives, the record update is authoritative and
// the previous stored file is removed best-effort afterwards; a failed
// removal is logged, never surfaced.
func (s *CowPurchaseService) Update(ctx context.Context, id int, req models.UpdateCowPurchaseRequest, receipt *ReceiptFile) (*models.CowPurchase, error) {
	purchase, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil && *req.Amount < 1 {
		return nil, apperr.Validation(apperr.FieldError{Field: "amount", Msg: "Amount is required and must be a positive number"})
	}

	if req.Amount != nil {
		purchase.Amount = *req.Amount
	}
	if req.Date != nil {
		purchase.Date = *req.Date
	}
	if req.Notes != nil {
		purchase.Notes = *req.Notes
	}

	oldReceipt := ""
	if receipt != nil {
		path, err := s.receipts.Save(*receipt)
		if err != nil {
			return nil, apperr.FileIOFault(err)
		}
		oldReceipt = purchase.ReceiptImage
		purchase.ReceiptImage = path
	}

	if err := s.purchases.Update(ctx, purchase, req.MemberIDs); err != nil {
		return nil, apperr.StoreFault(err)
	}

	if oldReceipt != "" {
		if err := s.receipts.Remove(oldReceipt); err != nil {
			s.logger.Warn("could not remove replaced receipt file",
				"purchase_id", id, "path", oldReceipt, "error", err)
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a cow purchase, then best-effort deletes its stored
// receipt. The two steps are not atomic: a failed file removal leaves
// a recoverable orphan and is only logged.
func (s *CowPurchaseService) Delete(ctx context.Context, id int) error {
	purchase, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.purchases.Delete(ctx, id); err != nil {
		return apperr.StoreFault(err)
	}

	if purchase.ReceiptImage != "" {
		if err := s.receipts.Remove(purchase.ReceiptImage); err != nil {
			s.logger.Warn("could not remove receipt file of deleted purchase",
				"purchase_id", id, "path", purchase.ReceiptImage, "error", err)
		}
	}
	return nil
}

// Summary computes the cow-purchase statistics from a fresh snapshot
// of the current records
func (s *CowPurchaseService) Summary(ctx context.Context) (*models.CowPurchaseSummary, error) {
	purchases, err := s.purchases.ListAll(ctx)
	if err != nil {
		return nil, apperr.StoreFault(err)
	}

	summary := aggregate.CowPurchaseSummary(purchases)
	return &summary, nil
}
