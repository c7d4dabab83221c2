// Package postgres provides the GORM-based unit of work tying the freight
// repositories to one database transaction. Command handlers receive a fresh
// unit of work per request; every repository accessor binds to the active
// transaction when one is open and to the plain connection otherwise.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ShipmentRepository().Update(ctx, shipment); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"freightline/internal/adapters/out/postgres/carrierrepo"
	"freightline/internal/adapters/out/postgres/facilityrepo"
	"freightline/internal/adapters/out/postgres/orderrepo"
	"freightline/internal/adapters/out/postgres/receiptrepo"
	"freightline/internal/adapters/out/postgres/routerepo"
	"freightline/internal/adapters/out/postgres/shipmentrepo"
	"freightline/internal/adapters/out/postgres/stockrepo"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh unit of work with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the freight
// repositories and records every aggregate written through them. Tracked
// aggregates survive the commit, so callers can publish notifications about
// them afterwards.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin on an instance with
// an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which lets
// handlers run a deferred rollback unconditionally after commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// FacilityRepository returns a facility repository bound to the current
// transaction.
func (uow *GormUnitOfWork) FacilityRepository() ports.FacilityRepository {
	return facilityrepo.NewGormFacilityRepository(uow.conn(), uow)
}

// RouteRepository returns a route repository bound to the current transaction.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

// CarrierRepository returns a carrier repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CarrierRepository() ports.CarrierRepository {
	return carrierrepo.NewGormCarrierRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// StockRepository returns a stock repository bound to the current
// transaction.
func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return stockrepo.NewGormStockRepository(uow.conn())
}

// ReceiptRepository returns a receipt repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ReceiptRepository() ports.ReceiptRepository {
	return receiptrepo.NewGormReceiptRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repositories call it on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
