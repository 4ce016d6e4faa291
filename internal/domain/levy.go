package domain

type LevyPaymentStatus string

const (
	LevyPaymentStatusPending   LevyPaymentStatus = "pending"
	LevyPaymentStatusCompleted LevyPaymentStatus = "completed"
	LevyPaymentStatusFailed    LevyPaymentStatus = "failed"
)

type RejectionReason string

const (
	RejectionReasonInvalidPayment   RejectionReason = "invalid_payment"
	RejectionReasonUnverifiedSource RejectionReason = "unverified_source"
	RejectionReasonIncorrectAmount  RejectionReason = "incorrect_amount"
	RejectionReasonOther            RejectionReason = "other"
)

// ValidRejectionReason reports whether r is one of the accepted rejection reasons.
func ValidRejectionReason(r RejectionReason) bool {
	switch r {
	case RejectionReasonInvalidPayment, RejectionReasonUnverifiedSource,
		RejectionReasonIncorrectAmount, RejectionReasonOther:
		return true
	}
	return false
}

// LevyPayment is a per-room recurring fee paid by a property owner. Approval by an
// admin grants each covered room one year of booking eligibility. Rows are never
// deleted; pending is the only non-terminal status.
type LevyPayment struct {
	ID               int32             `json:"id"`
	OwnerID          int32             `json:"owner_id"`
	AmountCents      int32             `json:"amount_cents"`
	PaymentMethod    string            `json:"payment_method"`
	TransactionID    string            `json:"transaction_id"`
	PaymentReference string            `json:"payment_reference"`
	Status           LevyPaymentStatus `json:"status"`
	PaymentDate      string            `json:"payment_date"`
	ApprovedBy       *int32            `json:"approved_by,omitempty"`
	ApprovalDate     *string           `json:"approval_date,omitempty"`
	Notes            string            `json:"notes"`
	CreatedOn        string            `json:"created_on"`
}

// LevyPaymentHistory is an append-only ledger entry recording one successful
// renewal for one room. Rejections never produce history rows.
type LevyPaymentHistory struct {
	ID          int32  `json:"id"`
	RoomID      int32  `json:"room_id"`
	PaymentID   int32  `json:"payment_id"`
	PaymentDate string `json:"payment_date"`
	ExpiryDate  string `json:"expiry_date"`
	AmountCents int32  `json:"amount_cents"`
	Status      string `json:"status"`
	CreatedOn   string `json:"created_on"`
}

const LevyHistoryStatusActive = "active"

// PendingLevyApproval is the admin review projection: one pending payment with its
// covered rooms aggregated per property.
type PendingLevyApproval struct {
	Payment      LevyPayment `json:"payment"`
	OwnerName    string      `json:"owner_name"`
	PropertyName string      `json:"property_name"`
	RoomIDs      []int32     `json:"room_ids"`
	RoomNumbers  []string    `json:"room_numbers"`
}
