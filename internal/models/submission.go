package models

// The payloads below are forwarded to the spreadsheet endpoint as the "data"
// member of a submission. JSON names match the columns the remote script reads.

// ContactSubmission is a message from the contact page.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=10,max=15"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// NewsletterSubscription is a newsletter sign-up.
type NewsletterSubscription struct {
	Email string `json:"email" validate:"required,email"`
}

// BulkOrderInquiry is a wholesale quote request.
type BulkOrderInquiry struct {
	CompanyName string `json:"companyName" validate:"required,min=2,max=200"`
	ContactName string `json:"contactName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10,max=15"`
	Product     string `json:"product" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
	Message     string `json:"message" validate:"omitempty,max=5000"`
}

// SubmissionItem is an order line as recorded in the orders sheet.
type SubmissionItem struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gt=0"`
}

// CheckoutSubmission is a placed order.
type CheckoutSubmission struct {
	OrderID             string           `json:"orderId" validate:"required"`
	FullName            string           `json:"fullName" validate:"required"`
	Email               string           `json:"email" validate:"required,email"`
	Phone               string           `json:"phone" validate:"required,min=10"`
	Address             string           `json:"address" validate:"required"`
	City                string           `json:"city" validate:"required"`
	State               string           `json:"state" validate:"required"`
	ZipCode             string           `json:"zipCode" validate:"required"`
	Country             string           `json:"country" validate:"required"`
	Items               []SubmissionItem `json:"items" validate:"required,min=1,dive"`
	Subtotal            float64          `json:"subtotal" validate:"gte=0"`
	Shipping            float64          `json:"shipping" validate:"gte=0"`
	Total               float64          `json:"total" validate:"gt=0"`
	PaymentMethod       string           `json:"paymentMethod" validate:"required"`
	OrderStatus         string           `json:"orderStatus" validate:"required"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Timestamp           string           `json:"timestamp" validate:"required"`
}

// UserRegistrationSubmission records a new account. It never carries the password.
type UserRegistrationSubmission struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}
