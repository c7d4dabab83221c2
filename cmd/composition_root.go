package cmd

import (
	"log/slog"

	"freightline/internal/adapters/out/notify"
	"freightline/internal/adapters/out/postgres"
	"freightline/internal/adapters/out/pricing"
	"freightline/internal/adapters/out/proof"
	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/application/usecases/queries"
	"freightline/internal/core/ports"
	"freightline/internal/pkg/lockset"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters behind the ports and hands out fully
// assembled handlers. The lock set is shared so every handler serializes on
// the same per-aggregate mutexes.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locks      *lockset.LockSet
	notifier   ports.Notifier
	pricing    ports.PricingResolver
	uploader   ports.ProofUploader
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:      lockset.New(),
		notifier:   notify.NewSlogNotifier(logger),
		pricing:    pricing.NewTariffResolver(),
		uploader:   proof.NewMemoryUploader(config.ProofBaseURL),
	}
}

func (c *CompositionRoot) CreatePlanShipmentCommandHandler() commands.PlanShipmentCommandHandler {
	var f commands.PlanUoWFactory = FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanShipmentCommandHandler(f, c.pricing, c.notifier)
}

func (c *CompositionRoot) CreateStartLegCommandHandler() commands.StartLegCommandHandler {
	return commands.NewStartLegCommandHandler(c.legUoWFactory(), c.notifier, c.locks)
}

func (c *CompositionRoot) CreateCompleteLegCommandHandler() commands.CompleteLegCommandHandler {
	return commands.NewCompleteLegCommandHandler(c.legUoWFactory(), c.notifier, c.uploader, c.locks)
}

func (c *CompositionRoot) CreateFailLegCommandHandler() commands.FailLegCommandHandler {
	return commands.NewFailLegCommandHandler(c.legUoWFactory(), c.notifier, c.locks)
}

func (c *CompositionRoot) CreateReassignLegCommandHandler() commands.ReassignLegCommandHandler {
	return commands.NewReassignLegCommandHandler(c.legUoWFactory(), c.notifier, c.locks)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePostInboundReceiptCommandHandler() commands.PostInboundReceiptCommandHandler {
	return commands.NewPostInboundReceiptCommandHandler(c.receiptUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreatePostOutboundReceiptCommandHandler() commands.PostOutboundReceiptCommandHandler {
	return commands.NewPostOutboundReceiptCommandHandler(c.receiptUoWFactory(), c.locks)
}

func (c *CompositionRoot) CreateCreateFacilityCommandHandler() commands.CreateFacilityCommandHandler {
	var f commands.FacilityUoWFactory = FuncFacilityUoWFactory(func() commands.FacilityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFacilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStorageSlotCommandHandler() commands.CreateStorageSlotCommandHandler {
	var f commands.SlotUoWFactory = FuncSlotUoWFactory(func() commands.SlotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStorageSlotCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRouteEdgeCommandHandler() commands.CreateRouteEdgeCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRouteEdgeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() commands.CreateCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCarrierCommandHandler(f)
}

func (c *CompositionRoot) CreateAuditStockCommandHandler() commands.AuditStockCommandHandler {
	var f commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuditStockCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCurrentLegQueryHandler() queries.GetCurrentLegQueryHandler {
	return queries.NewGetCurrentLegQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockRecordQueryHandler() queries.GetStockRecordQueryHandler {
	return queries.NewGetStockRecordQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockReportQueryHandler() queries.GetStockReportQueryHandler {
	return queries.NewGetStockReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) legUoWFactory() commands.LegUoWFactory {
	return FuncLegUoWFactory(func() commands.LegUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) receiptUoWFactory() commands.ReceiptUoWFactory {
	return FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
}

type FuncPlanUoWFactory func() commands.PlanUoW

func (f FuncPlanUoWFactory) Create() commands.PlanUoW {
	return f()
}

type FuncLegUoWFactory func() commands.LegUoW

func (f FuncLegUoWFactory) Create() commands.LegUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFacilityUoWFactory func() commands.FacilityUoW

func (f FuncFacilityUoWFactory) Create() commands.FacilityUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncSlotUoWFactory func() commands.SlotUoW

func (f FuncSlotUoWFactory) Create() commands.SlotUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}
