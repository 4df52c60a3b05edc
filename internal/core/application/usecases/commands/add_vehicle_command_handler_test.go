package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func vehicleCandidateWithID(id string) any {
	return mock.MatchedBy(func(c kernel.Candidate[*vehicle.Vehicle]) bool {
		return c.ID() == id
	})
}

func TestAddVehicleCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	m := metrics.New(prometheus.NewRegistry())
	cmd := commands.NewAddVehicleCommand("V001", "Truck", "500")

	registry := new(MockRegistry[*vehicle.Vehicle])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRegistry").Return(registry).Once(),
		registry.On("Add", vehicleCandidateWithID("V001")).Return(admittedVehicle("V001"), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddVehicleCommandHandler(factory, formats.Vehicle, nil, m)

	// Act
	v, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "V001", v.ID())
	assert.InDelta(t, 1, testutil.ToFloat64(m.RecordsAdmitted.WithLabelValues(vehicle.Kind)), 0)
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddVehicleCommandHandler_Handle_Rejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	m := metrics.New(prometheus.NewRegistry())
	cmd := commands.NewAddVehicleCommand("V001", "Truck", "500")
	duplicate := errs.NewDuplicateIdentifierError(vehicle.Kind, "V001")

	registry := new(MockRegistry[*vehicle.Vehicle])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRegistry").Return(registry).Once(),
		registry.On("Add", mock.Anything).Return(nil, duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddVehicleCommandHandler(factory, formats.Vehicle, nil, m)

	// Act
	v, err := h.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrDuplicateIdentifier)
	assert.Nil(t, v)
	assert.InDelta(t, 1, testutil.ToFloat64(
		m.RecordsRejected.WithLabelValues(vehicle.Kind, string(errs.RuleDuplicateIdentifier)),
	), 0)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddVehicleCommand{} // not constructed properly
	factory := new(MockVehicleUoWFactory)
	h := commands.NewAddVehicleCommandHandler(factory, formats.Vehicle, nil, nil)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddVehicleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAddVehicleCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAddVehicleCommand("V001", "Truck", "500")

	uow := new(MockUoW)
	factory := new(MockVehicleUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddVehicleCommandHandler(factory, formats.Vehicle, nil, nil)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestAddVehicleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	m := metrics.New(prometheus.NewRegistry())
	cmd := commands.NewAddVehicleCommand("V001", "Truck", "500")

	registry := new(MockRegistry[*vehicle.Vehicle])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRegistry").Return(registry).Once(),
		registry.On("Add", mock.Anything).Return(admittedVehicle("V001"), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddVehicleCommandHandler(factory, formats.Vehicle, nil, m)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.InDelta(t, 0, testutil.ToFloat64(m.RecordsAdmitted.WithLabelValues(vehicle.Kind)), 0)
	uow.AssertExpectations(t)
}
