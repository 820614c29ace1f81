package services_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"makhana/internal/events"
	"makhana/internal/models"
	"makhana/internal/repositories"
	"makhana/internal/services"
	"makhana/pkg/sheets"
)

func checkoutRequest(cartID string) models.CheckoutRequest {
	return models.CheckoutRequest{
		CartID: cartID,
		Customer: models.CustomerInfo{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			Phone:     "9876543210",
			Address:   "12 Lake Road",
			Landmark:  "Near Post Office",
			City:      "Darbhanga",
			State:     "Bihar",
			Pincode:   "846004",
		},
		PaymentMethod: "upi",
		AgreeToTerms:  true,
	}
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	submitter := new(MockSubmitter)
	publisher := new(MockPublisher)
	svc := services.NewCheckoutService(carts, orders, submitter, publisher, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, err = carts.AddItem(c.ID, "premium-roasted-makhana", 1)
	require.NoError(t, err)

	var sent models.CheckoutSubmission
	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.AnythingOfType("models.CheckoutSubmission")).
		Run(func(args mock.Arguments) { sent = args.Get(2).(models.CheckoutSubmission) }).
		Return(okResult(sheets.TypeCheckout), nil).Once()
	orders.On("GetByID", mock.Anything).Return(nil, repositories.ErrOrderNotFound).Once()
	orders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	publisher.On("Publish", events.OrderPlaced, mock.AnythingOfType("models.CheckoutSubmission")).Return(nil).Once()

	order, err := svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "user-123")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^KFP\d{9}$`), order.ID)
	assert.Equal(t, order.ID, sent.OrderID)
	assert.Equal(t, "Asha Rao", sent.FullName)
	assert.Equal(t, "12 Lake Road, Near Post Office", sent.Address)
	assert.Equal(t, "846004", sent.ZipCode)
	assert.Equal(t, "India", sent.Country)
	assert.Equal(t, "UPI Payment", sent.PaymentMethod)
	assert.Equal(t, models.OrderStatusPending, sent.OrderStatus)
	assert.Equal(t, 299.0, sent.Subtotal)
	assert.Equal(t, 50.0, sent.Shipping)
	assert.Equal(t, 349.0, sent.Total)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, "Premium Roasted Makhana", sent.Items[0].ProductName)

	assert.Equal(t, "user-123", order.UserID)
	assert.Equal(t, 349.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	after, err := carts.GetCart(c.ID)
	require.NoError(t, err)
	assert.Empty(t, after.Items)

	submitter.AssertExpectations(t)
	orders.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutService_SubmissionFailureKeepsCart(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	submitter := new(MockSubmitter)
	svc := services.NewCheckoutService(carts, orders, submitter, nil, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, err = carts.AddItem(c.ID, "peri-peri-makhana", 2)
	require.NoError(t, err)

	orders.On("GetByID", mock.Anything).Return(nil, repositories.ErrOrderNotFound)
	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.Anything).
		Return(&sheets.Result{Status: sheets.StatusError, Message: "sheet locked"}, fmt.Errorf("%w: sheet locked", sheets.ErrRemote)).Once()

	_, err = svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	assert.ErrorIs(t, err, services.ErrSubmissionFailed)
	assert.ErrorIs(t, err, sheets.ErrRemote)

	after, err := carts.GetCart(c.ID)
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	assert.Equal(t, 2, after.Items[0].Quantity)
	orders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCheckoutService_StoreFailureStillSucceeds(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	submitter := new(MockSubmitter)
	svc := services.NewCheckoutService(carts, orders, submitter, nil, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, err = carts.AddItem(c.ID, "makhana-trail-mix", 2)
	require.NoError(t, err)

	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.Anything).Return(okResult(sheets.TypeCheckout), nil).Once()
	orders.On("GetByID", mock.Anything).Return(nil, fmt.Errorf("database error")).Once()
	orders.On("Create", mock.Anything).Return(fmt.Errorf("database error")).Once()

	order, err := svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	require.NoError(t, err)
	assert.Equal(t, 898.0, order.TotalAmount)
	assert.Zero(t, order.Shipping)
}

func TestCheckoutService_KeepsItemsAddedDuringSubmission(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	submitter := new(MockSubmitter)
	svc := services.NewCheckoutService(carts, orders, submitter, nil, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, err = carts.AddItem(c.ID, "premium-roasted-makhana", 1)
	require.NoError(t, err)

	var sent models.CheckoutSubmission
	orders.On("GetByID", mock.Anything).Return(nil, repositories.ErrOrderNotFound)
	orders.On("Create", mock.Anything).Return(nil).Once()
	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).(models.CheckoutSubmission)
			// the shopper keeps adding while the order is in flight
			_, err := carts.AddItem(c.ID, "tangy-masala-makhana", 2)
			require.NoError(t, err)
			_, err = carts.AddItem(c.ID, "premium-roasted-makhana", 1)
			require.NoError(t, err)
		}).
		Return(okResult(sheets.TypeCheckout), nil).Once()

	_, err = svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	require.NoError(t, err)

	require.Len(t, sent.Items, 1)
	assert.Equal(t, 1, sent.Items[0].Quantity)

	after, err := carts.GetCart(c.ID)
	require.NoError(t, err)
	require.Len(t, after.Items, 2)
	assert.Equal(t, "premium-roasted-makhana", after.Items[0].ProductID)
	assert.Equal(t, 1, after.Items[0].Quantity)
	assert.Equal(t, "tangy-masala-makhana", after.Items[1].ProductID)
	assert.Equal(t, 2, after.Items[1].Quantity)
}

func TestCheckoutService_RejectsConcurrentCheckoutOfSameCart(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	submitter := new(MockSubmitter)
	svc := services.NewCheckoutService(carts, orders, submitter, nil, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, err = carts.AddItem(c.ID, "peri-peri-makhana", 2)
	require.NoError(t, err)

	var secondErr error
	orders.On("GetByID", mock.Anything).Return(nil, repositories.ErrOrderNotFound)
	orders.On("Create", mock.Anything).Return(nil).Once()
	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.Anything).
		Run(func(mock.Arguments) {
			_, secondErr = svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
		}).
		Return(okResult(sheets.TypeCheckout), nil).Once()

	_, err = svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	require.NoError(t, err)
	assert.ErrorIs(t, secondErr, services.ErrCheckoutInProgress)

	submitter.AssertNumberOfCalls(t, "Submit", 1)
	orders.AssertNumberOfCalls(t, "Create", 1)

	// the guard is released once the first checkout settles
	_, err = carts.AddItem(c.ID, "peri-peri-makhana", 1)
	require.NoError(t, err)
	orders.On("Create", mock.Anything).Return(nil).Once()
	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.Anything).
		Return(okResult(sheets.TypeCheckout), nil).Once()
	_, err = svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	assert.NoError(t, err)
}

func TestCheckoutService_RedrawsTakenOrderID(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	submitter := new(MockSubmitter)
	svc := services.NewCheckoutService(carts, orders, submitter, nil, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)
	_, err = carts.AddItem(c.ID, "makhana-trail-mix", 1)
	require.NoError(t, err)

	var sent models.CheckoutSubmission
	orders.On("GetByID", mock.Anything).Return(&models.Order{ID: "KFP000000000"}, nil).Once()
	orders.On("GetByID", mock.Anything).Return(nil, repositories.ErrOrderNotFound).Once()
	orders.On("Create", mock.Anything).Return(nil).Once()
	submitter.On("Submit", mock.Anything, sheets.TypeCheckout, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(2).(models.CheckoutSubmission) }).
		Return(okResult(sheets.TypeCheckout), nil).Once()

	order, err := svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	require.NoError(t, err)
	assert.Equal(t, order.ID, sent.OrderID)

	orders.AssertNumberOfCalls(t, "GetByID", 2)
	stored := orders.Calls[len(orders.Calls)-1].Arguments.Get(0).(*models.Order)
	assert.Equal(t, sent.OrderID, stored.ID)
}

func TestCheckoutService_EmptyOrMissingCart(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	submitter := new(MockSubmitter)
	svc := services.NewCheckoutService(carts, new(MockOrderRepository), submitter, nil, nil)

	c, err := carts.CreateCart()
	require.NoError(t, err)

	_, err = svc.PlaceOrder(context.Background(), checkoutRequest(c.ID), "")
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	_, err = svc.PlaceOrder(context.Background(), checkoutRequest("missing"), "")
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)

	submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Orders(t *testing.T) {
	carts, _ := newCartService(t, time.Hour)
	orders := new(MockOrderRepository)
	svc := services.NewCheckoutService(carts, orders, new(MockSubmitter), nil, nil)

	mine := &models.Order{ID: "KFP123456789", UserID: "user-123"}
	orders.On("GetByID", mine.ID).Return(mine, nil)
	orders.On("GetByUserID", "user-123").Return([]models.Order{*mine}, nil).Once()

	list, err := svc.GetOrdersForUser("user-123")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := svc.GetOrderForUser("user-123", mine.ID)
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	_, err = svc.GetOrderForUser("someone-else", mine.ID)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestPaymentLabel(t *testing.T) {
	assert.Equal(t, "Cash on Delivery", services.PaymentLabel("cod"))
	assert.Equal(t, "Net Banking", services.PaymentLabel("netbanking"))
	assert.Equal(t, "crypto", services.PaymentLabel("crypto"))
}
