package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"makhana/internal/events"
	"makhana/internal/models"
	"makhana/internal/repositories"
	"makhana/pkg/sheets"
)

var ErrEmptyCart = errors.New("cart is empty")

const (
	defaultCountry = "India"
	// attempts at drawing an order ID that is not already stored
	orderIDAttempts = 3
)

var paymentLabels = map[string]string{
	"cod":        "Cash on Delivery",
	"upi":        "UPI Payment",
	"card":       "Card Payment",
	"netbanking": "Net Banking",
}

// PaymentLabel returns the display name of a payment method code.
func PaymentLabel(method string) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return method
}

// CheckoutService turns a cart into a placed order.
type CheckoutService struct {
	carts     *CartService
	orderRepo repositories.OrderRepository
	submitter Submitter
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewCheckoutService creates a new CheckoutService. publisher may be nil.
func NewCheckoutService(carts *CartService, orderRepo repositories.OrderRepository, submitter Submitter, publisher events.Publisher, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		carts:     carts,
		orderRepo: orderRepo,
		submitter: submitter,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// PlaceOrder submits the cart's contents as an order. userID is empty for
// guest checkouts. Only one checkout per cart runs at a time. The ordered
// quantities leave the cart after the spreadsheet accepts the order; on
// failure the cart is left as it was.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req models.CheckoutRequest, userID string) (*models.Order, error) {
	details, release, err := s.carts.BeginCheckout(req.CartID)
	if err != nil {
		return nil, err
	}
	defer release()
	if len(details.Items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	orderID, err := s.newOrderID(now)
	if err != nil {
		return nil, err
	}
	customer := req.Customer
	if customer.Country == "" {
		customer.Country = defaultCountry
	}
	address := customer.Address
	if customer.Landmark != "" {
		address += ", " + customer.Landmark
	}

	submission := models.CheckoutSubmission{
		OrderID:             orderID,
		FullName:            strings.TrimSpace(customer.FirstName + " " + customer.LastName),
		Email:               customer.Email,
		Phone:               customer.Phone,
		Address:             address,
		City:                customer.City,
		State:               customer.State,
		ZipCode:             customer.Pincode,
		Country:             customer.Country,
		Subtotal:            details.Summary.Subtotal,
		Shipping:            details.Summary.Shipping,
		Total:               details.Summary.Total,
		PaymentMethod:       PaymentLabel(req.PaymentMethod),
		OrderStatus:         models.OrderStatusPending,
		SpecialInstructions: req.SpecialInstructions,
		Timestamp:           now.UTC().Format(time.RFC3339),
	}
	orderItems := make([]models.OrderItem, 0, len(details.Items))
	for _, it := range details.Items {
		submission.Items = append(submission.Items, models.SubmissionItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	if _, err := s.submitter.Submit(ctx, sheets.TypeCheckout, submission); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	order := &models.Order{
		ID:           submission.OrderID,
		UserID:       userID,
		CustomerName: submission.FullName,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Address: strings.Join([]string{
			address, customer.City, customer.State, customer.Pincode, customer.Country,
		}, ", "),
		Items:               orderItems,
		Subtotal:            submission.Subtotal,
		Shipping:            submission.Shipping,
		TotalAmount:         submission.Total,
		PaymentMethod:       submission.PaymentMethod,
		Status:              models.OrderStatusPending,
		SpecialInstructions: req.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	// The sheet already holds the order, so a local write failure is not
	// reported to the customer.
	if err := s.orderRepo.Create(order); err != nil {
		s.logger.Error("failed to store order", zap.String("order_id", order.ID), zap.Error(err))
	}
	if _, err := s.carts.SettleCheckout(req.CartID, details.Items); err != nil {
		s.logger.Warn("failed to settle cart after checkout", zap.String("cart_id", req.CartID), zap.Error(err))
	}

	events.Emit(s.publisher, s.logger, events.OrderPlaced, submission)
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.TotalAmount),
		zap.Bool("guest", userID == ""),
	)
	return order, nil
}

// newOrderID draws order IDs until one is not already stored. When the store
// cannot be read the drawn ID is used as is.
func (s *CheckoutService) newOrderID(now time.Time) (string, error) {
	for range orderIDAttempts {
		id := sheets.GenerateOrderID(now)
		_, err := s.orderRepo.GetByID(id)
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return id, nil
		}
		if err != nil {
			s.logger.Warn("failed to check order ID", zap.String("order_id", id), zap.Error(err))
			return id, nil
		}
		s.logger.Warn("order ID already taken, drawing another", zap.String("order_id", id))
	}
	return "", fmt.Errorf("no free order ID after %d attempts", orderIDAttempts)
}

// GetOrdersForUser lists the user's orders, newest first.
func (s *CheckoutService) GetOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderForUser returns one of the user's orders. Orders belonging to
// someone else are reported as not found.
func (s *CheckoutService) GetOrderForUser(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: %s", repositories.ErrOrderNotFound, orderID)
	}
	return order, nil
}
