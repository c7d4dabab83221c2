package commands_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/ports"
)

// Shared testify mocks for the command handlers. One mock per repository and
// per unit of work composition keeps the individual handler test files small.

type MockFacilityRepository struct{ mock.Mock }

func (m *MockFacilityRepository) Add(ctx context.Context, f *facility.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFacilityRepository) Update(ctx context.Context, f *facility.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFacilityRepository) Get(ctx context.Context, id kernel.UUID) (*facility.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Facility), args.Error(1)
}

func (m *MockFacilityRepository) GetAll(ctx context.Context) ([]*facility.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*facility.Facility), args.Error(1)
}

func (m *MockFacilityRepository) GetHubs(ctx context.Context) ([]*facility.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*facility.Facility), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, e *routing.Edge) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, e *routing.Edge) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*routing.Edge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routing.Edge), args.Error(1)
}

func (m *MockRouteRepository) GetAllActive(ctx context.Context) ([]*routing.Edge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*routing.Edge), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) AddRecord(ctx context.Context, r *facility.StockRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateRecord(ctx context.Context, r *facility.StockRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRepository) GetRecordsByFacility(
	ctx context.Context,
	facilityID kernel.UUID,
) ([]*facility.StockRecord, error) {
	args := m.Called(ctx, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*facility.StockRecord), args.Error(1)
}

func (m *MockStockRepository) AddSlot(ctx context.Context, s *facility.StorageSlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateSlot(ctx context.Context, s *facility.StorageSlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStockRepository) GetSlotsByFacility(
	ctx context.Context,
	facilityID kernel.UUID,
) ([]*facility.StorageSlot, error) {
	args := m.Called(ctx, facilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*facility.StorageSlot), args.Error(1)
}

func (m *MockStockRepository) AddAuditEntry(ctx context.Context, e *facility.AuditEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// txMock embeds the shared transaction lifecycle expectations.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPlanUoW struct{ txMock }

func (m *MockPlanUoW) FacilityRepository() ports.FacilityRepository {
	return m.Called().Get(0).(ports.FacilityRepository)
}

func (m *MockPlanUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

func (m *MockPlanUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockPlanUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

type MockPlanUoWFactory struct{ mock.Mock }

func (m *MockPlanUoWFactory) Create() commands.PlanUoW {
	return m.Called().Get(0).(commands.PlanUoW)
}

type MockLegUoW struct{ txMock }

func (m *MockLegUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockLegUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockLegUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

type MockLegUoWFactory struct{ mock.Mock }

func (m *MockLegUoWFactory) Create() commands.LegUoW {
	return m.Called().Get(0).(commands.LegUoW)
}

type MockReceiptUoW struct{ txMock }

func (m *MockReceiptUoW) FacilityRepository() ports.FacilityRepository {
	return m.Called().Get(0).(ports.FacilityRepository)
}

func (m *MockReceiptUoW) StockRepository() ports.StockRepository {
	return m.Called().Get(0).(ports.StockRepository)
}

func (m *MockReceiptUoW) ReceiptRepository() ports.ReceiptRepository {
	return m.Called().Get(0).(ports.ReceiptRepository)
}

type MockReceiptUoWFactory struct{ mock.Mock }

func (m *MockReceiptUoWFactory) Create() commands.ReceiptUoW {
	return m.Called().Get(0).(commands.ReceiptUoW)
}

type MockOrderUoW struct{ txMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockFacilityUoW struct{ txMock }

func (m *MockFacilityUoW) FacilityRepository() ports.FacilityRepository {
	return m.Called().Get(0).(ports.FacilityRepository)
}

type MockFacilityUoWFactory struct{ mock.Mock }

func (m *MockFacilityUoWFactory) Create() commands.FacilityUoW {
	return m.Called().Get(0).(commands.FacilityUoW)
}

type MockRouteUoW struct{ txMock }

func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

func (m *MockRouteUoW) FacilityRepository() ports.FacilityRepository {
	return m.Called().Get(0).(ports.FacilityRepository)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	return m.Called().Get(0).(commands.RouteUoW)
}

type MockCarrierUoW struct{ txMock }

func (m *MockCarrierUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	return m.Called().Get(0).(commands.CarrierUoW)
}

type MockSlotUoW struct{ txMock }

func (m *MockSlotUoW) FacilityRepository() ports.FacilityRepository {
	return m.Called().Get(0).(ports.FacilityRepository)
}

func (m *MockSlotUoW) StockRepository() ports.StockRepository {
	return m.Called().Get(0).(ports.StockRepository)
}

type MockSlotUoWFactory struct{ mock.Mock }

func (m *MockSlotUoWFactory) Create() commands.SlotUoW {
	return m.Called().Get(0).(commands.SlotUoW)
}

type MockAuditUoW struct{ txMock }

func (m *MockAuditUoW) FacilityRepository() ports.FacilityRepository {
	return m.Called().Get(0).(ports.FacilityRepository)
}

func (m *MockAuditUoW) StockRepository() ports.StockRepository {
	return m.Called().Get(0).(ports.StockRepository)
}

type MockAuditUoWFactory struct{ mock.Mock }

func (m *MockAuditUoWFactory) Create() commands.AuditUoW {
	return m.Called().Get(0).(commands.AuditUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(
	ctx context.Context,
	role ports.Role,
	recipientID kernel.UUID,
	message, eventType string,
	orderID *kernel.UUID,
) error {
	args := m.Called(ctx, role, recipientID, message, eventType, orderID)
	return args.Error(0)
}

type MockPricingResolver struct{ mock.Mock }

func (m *MockPricingResolver) Resolve(
	distanceKm, weightKg float64,
	tier order.Tier,
) (decimal.Decimal, int, error) {
	args := m.Called(distanceKm, weightKg, tier)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}

type MockProofUploader struct{ mock.Mock }

func (m *MockProofUploader) Upload(ctx context.Context, content []byte, referenceCode string) (string, error) {
	args := m.Called(ctx, content, referenceCode)
	return args.String(0), args.Error(1)
}
