package domain

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type RoomLevyStatus string

const (
	RoomLevyStatusPending  RoomLevyStatus = "pending"
	RoomLevyStatusApproved RoomLevyStatus = "approved"
)

type RoomGender string

const (
	RoomGenderMale   RoomGender = "male"
	RoomGenderFemale RoomGender = "female"
	RoomGenderMixed  RoomGender = "mixed"
)

// Room belongs to exactly one property and, when linked to a levy payment, to
// exactly one payment at a time. LevyPaymentStatus is approved only while the
// linked payment is completed and LevyExpiryDate has not passed.
type Room struct {
	ID                int32          `json:"id"`
	PropertyID        int32          `json:"property_id"`
	RoomNumber        string         `json:"room_number"`
	Capacity          int32          `json:"capacity"`
	CurrentOccupancy  int32          `json:"current_occupancy"`
	Gender            RoomGender     `json:"gender"`
	Status            RoomStatus     `json:"status"`
	LevyPaymentStatus RoomLevyStatus `json:"levy_payment_status"`
	LevyPaymentID     *int32         `json:"levy_payment_id,omitempty"`
	LevyExpiryDate    *string        `json:"levy_expiry_date,omitempty"`
	LastRenewalDate   *string        `json:"last_renewal_date,omitempty"`
	RenewalCount      int32          `json:"renewal_count"`
	CreatedOn         string         `json:"created_on"`
}

// ExpiringLevy is the reminder projection: an approved room whose levy validity
// ends soon, joined with owner and property details.
type ExpiringLevy struct {
	RoomID       int32  `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	PropertyName string `json:"property_name"`
	OwnerID      int32  `json:"owner_id"`
	OwnerName    string `json:"owner_name"`
	OwnerEmail   string `json:"owner_email"`
	ExpiryDate   string `json:"expiry_date"`
}
