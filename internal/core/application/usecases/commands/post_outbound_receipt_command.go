package commands

import (
	"errors"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/pkg/guard"
)

var ErrPostOutboundReceiptCommandIsNotConstructed = errors.New(
	"PostOutboundReceiptCommand must be created via NewPostOutboundReceiptCommand constructor",
)

// PostOutboundReceiptCommand represents a batch of packages leaving a
// facility. Every line must be covered by remaining stock or the whole
// posting rejects.
type PostOutboundReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID  kernel.UUID
	code       string
	facilityID kernel.UUID
	orderID    *kernel.UUID
	actorID    kernel.UUID
	postedAt   time.Time
	notes      string
	lines      []receipt.Line

	guard guard.ConstructorGuard
}

// NewPostOutboundReceiptCommand creates a command to post an outbound receipt.
func NewPostOutboundReceiptCommand(
	receiptID kernel.UUID,
	code string,
	facilityID kernel.UUID,
	orderID *kernel.UUID,
	actorID kernel.UUID,
	postedAt time.Time,
	notes string,
	lines []receipt.Line,
) (PostOutboundReceiptCommand, error) {
	outboundCommand := PostOutboundReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		outboundCommand.setReceiptID(receiptID),
		outboundCommand.setCode(code),
		outboundCommand.setFacilityID(facilityID),
		outboundCommand.setOrderID(orderID),
		outboundCommand.setActorID(actorID),
		outboundCommand.setPostedAt(postedAt),
		outboundCommand.setLines(lines),
	); err != nil {
		return PostOutboundReceiptCommand{}, err
	}

	outboundCommand.notes = notes
	return outboundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PostOutboundReceiptCommand) Validate() error {
	return c.guard.Validate(ErrPostOutboundReceiptCommandIsNotConstructed)
}

// ReceiptID returns the identifier for the receipt being posted.
func (c PostOutboundReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// Code returns the receipt's business code.
func (c PostOutboundReceiptCommand) Code() string {
	return c.code
}

// FacilityID returns the facility issuing the goods.
func (c PostOutboundReceiptCommand) FacilityID() kernel.UUID {
	return c.facilityID
}

// OrderID returns the linked order, nil for unrelated movements.
func (c PostOutboundReceiptCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// ActorID returns the user posting the receipt.
func (c PostOutboundReceiptCommand) ActorID() kernel.UUID {
	return c.actorID
}

// PostedAt returns when the receipt was posted.
func (c PostOutboundReceiptCommand) PostedAt() time.Time {
	return c.postedAt
}

// Notes returns the receipt's free-text notes.
func (c PostOutboundReceiptCommand) Notes() string {
	return c.notes
}

// Lines returns the receipt's lines.
func (c PostOutboundReceiptCommand) Lines() []receipt.Line {
	return c.lines
}

func (c *PostOutboundReceiptCommand) setReceiptID(receiptID kernel.UUID) error {
	if err := receiptID.Validate(); err != nil {
		return err
	}

	c.receiptID = receiptID
	return nil
}

func (c *PostOutboundReceiptCommand) setCode(code string) error {
	if code == "" {
		return receipt.ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *PostOutboundReceiptCommand) setFacilityID(facilityID kernel.UUID) error {
	if err := facilityID.Validate(); err != nil {
		return err
	}

	c.facilityID = facilityID
	return nil
}

func (c *PostOutboundReceiptCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PostOutboundReceiptCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *PostOutboundReceiptCommand) setPostedAt(postedAt time.Time) error {
	if postedAt.IsZero() {
		return ErrPostedAtIsRequired
	}

	c.postedAt = postedAt
	return nil
}

func (c *PostOutboundReceiptCommand) setLines(lines []receipt.Line) error {
	if len(lines) == 0 {
		return receipt.ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
