package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkTestSuite exercises the memory store through its unit of work.
type UnitOfWorkTestSuite struct {
	suite.Suite
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
}

func (suite *UnitOfWorkTestSuite) begin() ports.UnitOfWork {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(context.Background()))
	return uow
}

func (suite *UnitOfWorkTestSuite) TestCommitKeepsChanges() {
	ctx := context.Background()

	uow := suite.begin()
	_, err := uow.VehicleRegistry().Add(vehicleCandidate("V001", "Truck", "500"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()
	suite.Equal(1, reader.VehicleRegistry().Count())
}

func (suite *UnitOfWorkTestSuite) TestRollbackRestoresRecordLists() {
	ctx := context.Background()

	setup := suite.begin()
	_, err := setup.VehicleRegistry().Add(vehicleCandidate("V001", "Truck", "500"))
	suite.Require().NoError(err)
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.begin()
	_, err = uow.VehicleRegistry().Add(vehicleCandidate("V002", "Van", "20"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.VehicleRegistry().Remove("V001"))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()
	suite.Equal([]string{"V001"}, ids(reader.VehicleRegistry().List()))
}

func (suite *UnitOfWorkTestSuite) TestCommitAndRollbackRequireBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), memory.ErrNoActiveUnitOfWork)
	suite.ErrorIs(uow.Rollback(ctx), memory.ErrNoActiveUnitOfWork)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.ErrorIs(uow.Rollback(ctx), memory.ErrNoActiveUnitOfWork, "Rollback after Commit changes nothing")
}

func (suite *UnitOfWorkTestSuite) TestBeginHonoursCancellation() {
	holder := suite.begin()
	defer func() { _ = holder.Commit(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := suite.factory.Create().Begin(ctx)

	suite.ErrorIs(err, context.DeadlineExceeded)
}

func (suite *UnitOfWorkTestSuite) TestConcurrentAddsAreSerialized() {
	ctx := context.Background()
	const workers = 20

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			id := formats.Vehicle.Suggest(n)
			if _, err := uow.VehicleRegistry().Add(vehicleCandidate(id, "Car", "4")); err != nil {
				return
			}
			_ = uow.Commit(ctx)
		}(i)
	}
	wg.Wait()

	reader := suite.begin()
	defer func() { _ = reader.Rollback(ctx) }()
	suite.Equal(workers, reader.VehicleRegistry().Count())
}

func (suite *UnitOfWorkTestSuite) TestEndToEndScenario() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()

	// Given a vehicle and a customer
	_, err := uow.VehicleRegistry().Add(vehicleCandidate("V001", "Truck", "500"))
	suite.Require().NoError(err)
	_, err = uow.CustomerRegistry().Add(customerCandidate("C001"))
	suite.Require().NoError(err)

	// When a shipment referencing both is created
	s, err := uow.ShipmentRegistry().Add(shipmentCandidate(uow, "S001", "V001", "C001"))
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, s.Status())

	// Then it can be delivered once
	at := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	outcome, err := s.MarkDelivered(at)
	suite.Require().NoError(err)
	suite.Equal(shipment.FirstTimeDelivered, outcome)

	outcome, err = s.MarkDelivered(at.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Equal(shipment.AlreadyDelivered, outcome)

	found, err := uow.ShipmentRegistry().Find("S001")
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, found.Status())
	deliveredAt, ok := found.DeliveredAt()
	suite.True(ok)
	suite.Equal(at, deliveredAt)

	// And the same identifier cannot be registered twice
	_, err = uow.ShipmentRegistry().Add(shipmentCandidate(uow, "S001", "V001", "C001"))
	suite.ErrorIs(err, errs.ErrDuplicateIdentifier)
	suite.Equal(1, uow.ShipmentRegistry().Count())
}

func (suite *UnitOfWorkTestSuite) TestUnresolvedReferenceIsRejected() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.CustomerRegistry().Add(customerCandidate("C001"))
	suite.Require().NoError(err)

	_, err = uow.ShipmentRegistry().Add(shipmentCandidate(uow, "S001", "V001", "C001"))

	var unresolved *errs.UnresolvedReferenceError
	suite.Require().ErrorAs(err, &unresolved)
	suite.Equal(shipment.FieldVehicleID, unresolved.ParamName)
	suite.Zero(uow.ShipmentRegistry().Count())
}

func (suite *UnitOfWorkTestSuite) TestRemovingVehicleLeavesDanglingReference() {
	ctx := context.Background()
	uow := suite.begin()
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.VehicleRegistry().Add(vehicleCandidate("V001", "Truck", "500"))
	suite.Require().NoError(err)
	_, err = uow.CustomerRegistry().Add(customerCandidate("C001"))
	suite.Require().NoError(err)
	_, err = uow.ShipmentRegistry().Add(shipmentCandidate(uow, "S001", "V001", "C001"))
	suite.Require().NoError(err)

	suite.Require().NoError(uow.VehicleRegistry().Remove("V001"))

	s, err := uow.ShipmentRegistry().Find("S001")
	suite.Require().NoError(err)
	suite.Equal("V001", s.VehicleID())

	dangling := services.FindDanglingReferences(
		uow.ShipmentRegistry().List(),
		uow.VehicleRegistry().List(),
		uow.CustomerRegistry().List(),
	)
	suite.Equal([]services.DanglingReference{
		{ShipmentID: "S001", Field: shipment.FieldVehicleID, TargetID: "V001"},
	}, dangling)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
