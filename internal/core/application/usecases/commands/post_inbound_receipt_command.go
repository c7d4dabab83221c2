package commands

import (
	"errors"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	ErrPostInboundReceiptCommandIsNotConstructed = errors.New(
		"PostInboundReceiptCommand must be created via NewPostInboundReceiptCommand constructor",
	)
	// ErrPostedAtIsRequired rejects receipt postings without a posting time.
	ErrPostedAtIsRequired = errs.NewValueIsRequiredError("postedAt")
)

// PostInboundReceiptCommand represents a batch of packages arriving at a
// facility. Posting is all-or-nothing across the lines.
type PostInboundReceiptCommand struct { //nolint:recvcheck //using for validation
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

// NewPostInboundReceiptCommand creates a command to post an inbound receipt.
// Requires at least one valid line; orderID optionally links the movement to
// the order that caused it.
func NewPostInboundReceiptCommand(
	receiptID kernel.UUID,
	code string,
	facilityID kernel.UUID,
	orderID *kernel.UUID,
	actorID kernel.UUID,
	postedAt time.Time,
	notes string,
	lines []receipt.Line,
) (PostInboundReceiptCommand, error) {
	inboundCommand := PostInboundReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inboundCommand.setReceiptID(receiptID),
		inboundCommand.setCode(code),
		inboundCommand.setFacilityID(facilityID),
		inboundCommand.setOrderID(orderID),
		inboundCommand.setActorID(actorID),
		inboundCommand.setPostedAt(postedAt),
		inboundCommand.setLines(lines),
	); err != nil {
		return PostInboundReceiptCommand{}, err
	}

	inboundCommand.notes = notes
	return inboundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PostInboundReceiptCommand) Validate() error {
	return c.guard.Validate(ErrPostInboundReceiptCommandIsNotConstructed)
}

// ReceiptID returns the identifier for the receipt being posted.
func (c PostInboundReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// Code returns the receipt's business code.
func (c PostInboundReceiptCommand) Code() string {
	return c.code
}

// FacilityID returns the facility receiving the goods.
func (c PostInboundReceiptCommand) FacilityID() kernel.UUID {
	return c.facilityID
}

// OrderID returns the linked order, nil for unrelated movements.
func (c PostInboundReceiptCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// ActorID returns the user posting the receipt.
func (c PostInboundReceiptCommand) ActorID() kernel.UUID {
	return c.actorID
}

// PostedAt returns when the receipt was posted.
func (c PostInboundReceiptCommand) PostedAt() time.Time {
	return c.postedAt
}

// Notes returns the receipt's free-text notes.
func (c PostInboundReceiptCommand) Notes() string {
	return c.notes
}

// Lines returns the receipt's lines.
func (c PostInboundReceiptCommand) Lines() []receipt.Line {
	return c.lines
}

func (c *PostInboundReceiptCommand) setReceiptID(receiptID kernel.UUID) error {
	if err := receiptID.Validate(); err != nil {
		return err
	}

	c.receiptID = receiptID
	return nil
}

func (c *PostInboundReceiptCommand) setCode(code string) error {
	if code == "" {
		return receipt.ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *PostInboundReceiptCommand) setFacilityID(facilityID kernel.UUID) error {
	if err := facilityID.Validate(); err != nil {
		return err
	}

	c.facilityID = facilityID
	return nil
}

func (c *PostInboundReceiptCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PostInboundReceiptCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *PostInboundReceiptCommand) setPostedAt(postedAt time.Time) error {
	if postedAt.IsZero() {
		return ErrPostedAtIsRequired
	}

	c.postedAt = postedAt
	return nil
}

func (c *PostInboundReceiptCommand) setLines(lines []receipt.Line) error {
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
