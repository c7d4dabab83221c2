// Package receiptrepo persists posted receipts with their lines. Receipts
// are immutable once posted; the repository is append-only and implements
// ports.ReceiptRepository.
package receiptrepo

import (
	"time"

	"freightline/internal/core/domain/model/receipt"

	"github.com/google/uuid"
)

// ReceiptDTO is the database row for a receipt header.
type ReceiptDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"uniqueIndex"`
	Kind       int
	FacilityID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID    *uuid.UUID `gorm:"type:uuid"`
	ActorID    uuid.UUID  `gorm:"type:uuid"`
	PostedAt   time.Time
	Notes      string

	Lines []ReceiptLineDTO `gorm:"foreignKey:ReceiptID;references:ID"`
}

// TableName overrides GORM's default naming to use "receipts".
func (ReceiptDTO) TableName() string {
	return "receipts"
}

// ReceiptLineDTO is the database row for one package movement within a
// receipt.
type ReceiptLineDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReceiptID uuid.UUID  `gorm:"type:uuid;index"`
	PackageID uuid.UUID  `gorm:"type:uuid"`
	Quantity  int
	SlotID    *uuid.UUID `gorm:"type:uuid"`
	Notes     string
}

// TableName overrides GORM's default naming to use "receipt_lines".
func (ReceiptLineDTO) TableName() string {
	return "receipt_lines"
}

func fromDomain(aggregate *receipt.Receipt) ReceiptDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	lines := aggregate.Lines()
	lineDTOs := make([]ReceiptLineDTO, 0, len(lines))
	for _, line := range lines {
		var slotID *uuid.UUID
		if line.SlotID != nil {
			raw := line.SlotID.Bytes()
			slotID = &raw
		}

		lineDTOs = append(lineDTOs, ReceiptLineDTO{
			ID:        uuid.New(),
			ReceiptID: aggregate.ID().Bytes(),
			PackageID: line.PackageID.Bytes(),
			Quantity:  line.Quantity,
			SlotID:    slotID,
			Notes:     line.Notes,
		})
	}

	return ReceiptDTO{
		ID:         aggregate.ID().Bytes(),
		Code:       aggregate.Code(),
		Kind:       int(aggregate.Kind()),
		FacilityID: aggregate.FacilityID().Bytes(),
		OrderID:    orderID,
		ActorID:    aggregate.ActorID().Bytes(),
		PostedAt:   aggregate.PostedAt(),
		Notes:      aggregate.Notes(),
		Lines:      lineDTOs,
	}
}
