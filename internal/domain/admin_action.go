package domain

type AdminActionType string

const (
	AdminActionLevyApproval  AdminActionType = "levy_approval"
	AdminActionLevyRejection AdminActionType = "levy_rejection"
)

// AdminAction is one append-only audit row per privileged admin decision.
type AdminAction struct {
	ID         int32           `json:"id"`
	AdminID    int32           `json:"admin_id"`
	ActionType AdminActionType `json:"action_type"`
	TargetID   int32           `json:"target_id"`
	TargetType string          `json:"target_type"`
	Details    string          `json:"details"`
	CreatedOn  string          `json:"created_on"`
}
