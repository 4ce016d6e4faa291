package jobs

import (
	"context"
	"fmt"
	"time"

	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/logger"
)

// ExpireRoomLevies reverts rooms whose paid-up year has lapsed back to pending so
// they stop counting as levy-approved for bookings.
func (jr *JobRunner) ExpireRoomLevies() {
	jr.runWithRecovery("ExpireRoomLevies", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		reverted, err := jr.store.RoomRepository.ExpireLevies(ctx, today)
		if err != nil {
			logger.Error("Failed to expire room levies", "error", err)
			return
		}
		logger.Info("Expired room levies", "rooms_reverted", reverted, "as_of", today)
	})
}

// SendExpiryReminders notifies owners whose rooms lose levy validity within the
// configured reminder window. One in-app notification and one email per room.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runWithRecovery("SendExpiryReminders", func() {
		ctx := context.Background()
		windowDays := jr.config.Scheduler.ReminderWindowDays
		from := time.Now().Format("2006-01-02")
		to := time.Now().AddDate(0, 0, windowDays).Format("2006-01-02")

		expiring, err := jr.store.RoomRepository.ListExpiringLevies(ctx, from, to)
		if err != nil {
			logger.Error("Failed to list expiring levies", "error", err)
			return
		}

		sent := 0
		for _, e := range expiring {
			note := &domain.Notification{
				UserID: e.OwnerID,
				Title:  "Levy Expiring Soon",
				Message: fmt.Sprintf("The levy for room %s at %s expires on %s. Renew to keep the room bookable.",
					e.RoomNumber, e.PropertyName, e.ExpiryDate),
				Type: domain.NotificationTypeLevyReminder,
			}
			if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
				logger.Error("Failed to create expiry reminder notification",
					"room_id", e.RoomID, "owner_id", e.OwnerID, "error", err)
				continue
			}

			if err := jr.emailSvc.SendLevyExpiryReminder(ctx, e.OwnerEmail, e.OwnerName, e.PropertyName, e.RoomNumber, e.ExpiryDate); err != nil {
				logger.Warn("Failed to send expiry reminder email",
					"room_id", e.RoomID, "owner_email", e.OwnerEmail, "error", err)
			}
			sent++
		}
		logger.Info("Sent levy expiry reminders", "reminders", sent, "window_days", windowDays)
	})
}
