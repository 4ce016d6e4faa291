package domain

type NotificationType string

const (
	NotificationTypeLevyApproval  NotificationType = "levy_approval"
	NotificationTypeLevyRejection NotificationType = "levy_rejection"
	NotificationTypeLevyReminder  NotificationType = "levy_reminder"
)

type Notification struct {
	ID        int32            `json:"id"`
	UserID    int32            `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedOn string           `json:"created_on"`
}
