package jobs

import (
	"context"
	"time"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/logger"
)

const jobTimeLayout = "2006-01-02T15:04:05Z07:00"

// ExpirePendingRegistrations rejects registrations that were never decided
// before their event took place.
func (jr *JobRunner) ExpirePendingRegistrations() {
	jr.runWithRecovery("ExpirePendingRegistrations", func() {
		ctx := context.Background()

		now := time.Now().UTC().Format(jobTimeLayout)
		regs, err := jr.store.RegistrationRepository.ListPendingForPastEvents(ctx, now)
		if err != nil {
			logger.Error("Failed to list stale pending registrations", "error", err)
			return
		}

		expired := 0
		for _, reg := range regs {
			if _, err := jr.store.RegistrationRepository.UpdateStatus(ctx, reg.ID, domain.RegistrationStatusRejected); err != nil {
				logger.Error("Failed to expire pending registration",
					"registration_id", reg.ID,
					"event_id", reg.EventID,
					"error", err)
				continue
			}
			expired++
		}

		logger.Info("Expired stale pending registrations", "count", expired)
	})
}

// SendEventReminders emails every approved volunteer for events starting
// within the next 24 hours.
func (jr *JobRunner) SendEventReminders() {
	jr.runWithRecovery("SendEventReminders", func() {
		ctx := context.Background()

		from := time.Now().UTC()
		to := from.Add(24 * time.Hour)
		events, err := jr.store.EventRepository.ListByDateRange(ctx, from.Format(jobTimeLayout), to.Format(jobTimeLayout))
		if err != nil {
			logger.Error("Failed to list upcoming events", "error", err)
			return
		}

		sent := 0
		for _, event := range events {
			regs, err := jr.store.RegistrationRepository.ListByEvent(ctx, event.ID)
			if err != nil {
				logger.Error("Failed to list registrations for event",
					"event_id", event.ID,
					"error", err)
				continue
			}

			for _, reg := range regs {
				if reg.Status != domain.RegistrationStatusApproved || reg.User == nil {
					continue
				}
				err := jr.services.Email.SendEventReminder(ctx,
					reg.User.Email, reg.User.Name, event.Title, event.Location, event.Date)
				if err != nil {
					logger.Error("Failed to send event reminder",
						"event_id", event.ID,
						"user_id", reg.UserID,
						"error", err)
					continue
				}
				sent++
			}
		}

		logger.Info("Sent event reminders", "count", sent)
	})
}
