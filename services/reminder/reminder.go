package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tablebot/config"
	"tablebot/models"
	"tablebot/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReservationReminder = "reminder:reservation"

// Payload is the task body queued for a pre-visit reminder.
type Payload struct {
	ReservationID string `json:"reservationId"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	People        int    `json:"people"`
	Language      string `json:"language"`
}

// Scheduler enqueues reminder tasks to fire ahead of the reserved slot.
type Scheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewScheduler builds a Scheduler on the reminder queue Redis DB.
func NewScheduler(lead time.Duration) *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &Scheduler{client: client, lead: lead}
}

// ScheduleReminder queues a reminder for lead-time before the slot. Slots
// already inside the lead window are skipped.
func (s *Scheduler) ScheduleReminder(ctx context.Context, res models.Reservation) error {
	slotAt, err := parseSlot(res.Date, res.Time)
	if err != nil {
		return fmt.Errorf("parsing slot for reminder: %w", err)
	}

	fireAt := slotAt.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Debug("slot too soon for a reminder, skipping",
			zap.String("reservationId", res.ReservationID))
		return nil
	}

	payload, err := json.Marshal(Payload{
		ReservationID: res.ReservationID,
		UserID:        res.UserID,
		Name:          res.Name,
		Date:          res.Date,
		Time:          res.Time,
		People:        res.People,
		Language:      res.Language,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReservationReminder, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

// Close releases the underlying queue client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}

// parseSlot combines the stored DD-MM-YYYY date and H:MM AM/PM time.
func parseSlot(date, slotTime string) (time.Time, error) {
	return time.ParseInLocation("02-01-2006 3:04 PM", date+" "+slotTime, time.Local)
}
