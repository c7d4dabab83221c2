package commands

import (
	"context"

	"freightline/internal/core/domain/model/facility"
)

// CreateStorageSlotCommandHandler adds an empty storage slot to a facility.
type CreateStorageSlotCommandHandler struct {
	uowFactory SlotUoWFactory
}

// NewCreateStorageSlotCommandHandler creates a handler for slot additions.
func NewCreateStorageSlotCommandHandler(uowFactory SlotUoWFactory) CreateStorageSlotCommandHandler {
	return CreateStorageSlotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the slot addition. The owning facility must exist.
func (h CreateStorageSlotCommandHandler) Handle(ctx context.Context, command CreateStorageSlotCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.FacilityRepository().Get(ctx, command.FacilityID()); err != nil {
		return err
	}

	slot, err := facility.NewStorageSlot(command.SlotID(), command.FacilityID(), command.Code())
	if err != nil {
		return err
	}

	if err = uow.StockRepository().AddSlot(ctx, slot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
