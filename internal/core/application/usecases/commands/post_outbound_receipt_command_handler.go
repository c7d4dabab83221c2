package commands

import (
	"context"

	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/core/domain/services"
	"freightline/internal/pkg/lockset"
)

// PostOutboundReceiptCommandHandler posts an outbound receipt against a
// facility's stock. Insufficient remaining quantity on any line rejects the
// whole posting with facility.ErrInsufficientStock.
type PostOutboundReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
	locks      *lockset.LockSet
}

// NewPostOutboundReceiptCommandHandler creates a handler for outbound postings.
func NewPostOutboundReceiptCommandHandler(
	uowFactory ReceiptUoWFactory,
	locks *lockset.LockSet,
) PostOutboundReceiptCommandHandler {
	return PostOutboundReceiptCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the outbound posting.
func (h PostOutboundReceiptCommandHandler) Handle(ctx context.Context, command PostOutboundReceiptCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(command.FacilityID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedFacility, err := uow.FacilityRepository().Get(ctx, command.FacilityID())
	if err != nil {
		return err
	}

	postedReceipt, err := receipt.NewReceipt(
		command.ReceiptID(),
		command.Code(),
		receipt.Outbound,
		command.FacilityID(),
		command.OrderID(),
		command.ActorID(),
		command.PostedAt(),
		command.Notes(),
		command.Lines(),
	)
	if err != nil {
		return err
	}

	records, slots, allRecords, err := loadFacilityStock(ctx, uow, command.FacilityID())
	if err != nil {
		return err
	}

	posting, err := services.NewStockLedger().PostOutbound(postedReceipt, trackedFacility, records, slots, allRecords)
	if err != nil {
		return err
	}

	if err = persistPosting(ctx, uow, postedReceipt, trackedFacility, posting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
