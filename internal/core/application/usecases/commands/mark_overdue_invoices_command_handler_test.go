package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/invoice"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOverdueInvoicesCommandHandler_Handle_MarksEachInvoice(t *testing.T) {
	ctx := t.Context()
	first := newTestInvoice(t)
	second := newTestInvoice(t)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllIssuedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*invoice.Invoice{first, second}, nil).Once(),
		invoiceRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		invoiceRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueInvoicesCommandHandler(factory)
	cmd := commands.NewMarkOverdueInvoicesCommand()
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, invoice.StatusOverdue, first.Status())
	require.Equal(t, invoice.StatusOverdue, second.Status())
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOverdueInvoicesCommandHandler_Handle_NothingToMark(t *testing.T) {
	ctx := t.Context()

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockInvoiceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetAllIssuedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*invoice.Invoice{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueInvoicesCommandHandler(factory)
	cmd := commands.NewMarkOverdueInvoicesCommand()
	require.NoError(t, h.Handle(ctx, cmd))
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
