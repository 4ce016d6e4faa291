package domain

type BookingPaymentStatus string

const (
	BookingPaymentStatusPending   BookingPaymentStatus = "pending"
	BookingPaymentStatusCompleted BookingPaymentStatus = "completed"
	BookingPaymentStatusFailed    BookingPaymentStatus = "failed"
)

// BookingPayment is a tenant payment against a room booking. The levy workflow never
// mutates these; they only feed the combined payment listing and stats.
type BookingPayment struct {
	ID            int32                `json:"id"`
	BookingID     int32                `json:"booking_id"`
	TenantID      int32                `json:"tenant_id"`
	AmountCents   int32                `json:"amount_cents"`
	PaymentMethod string               `json:"payment_method"`
	TransactionID string               `json:"transaction_id"`
	Status        BookingPaymentStatus `json:"status"`
	PaymentDate   string               `json:"payment_date"`
	CreatedOn     string               `json:"created_on"`
}

type PaymentKind string

const (
	PaymentKindBooking PaymentKind = "booking"
	PaymentKindLevy    PaymentKind = "levy"
)

// PaymentRecord is one row of the combined booking+levy payment listing.
type PaymentRecord struct {
	ID            int32       `json:"id"`
	Kind          PaymentKind `json:"kind"`
	PayerID       int32       `json:"payer_id"`
	PayerName     string      `json:"payer_name"`
	AmountCents   int32       `json:"amount_cents"`
	PaymentMethod string      `json:"payment_method"`
	TransactionID string      `json:"transaction_id"`
	Status        string      `json:"status"`
	PaymentDate   string      `json:"payment_date"`
}

// PaymentFilter narrows the combined listing and stats. Zero values mean "no filter".
type PaymentFilter struct {
	Status   string `json:"status"`
	Method   string `json:"method"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// PaymentStats aggregates payments under a filter. Revenue sums completed payments
// only, for both booking and levy rows.
type PaymentStats struct {
	TotalCount     int32 `json:"total_count"`
	CompletedCount int32 `json:"completed_count"`
	PendingCount   int32 `json:"pending_count"`
	FailedCount    int32 `json:"failed_count"`
	RevenueCents   int64 `json:"revenue_cents"`
}
