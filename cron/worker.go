package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rent2reuse/config"
	billingRepoPkg "rent2reuse/database/repository/billing"
	"rent2reuse/services/mailer"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeExpiryReminder = "subscription:expiry_reminder"

// ExpiryReminderPayload is the task payload for one expiry reminder email.
type ExpiryReminderPayload struct {
	SubscriptionID string    `json:"subscriptionId"`
	UserID         string    `json:"userId"`
	Email          string    `json:"email"`
	PlanName       string    `json:"planName"`
	EndDate        time.Time `json:"endDate"`
}

// UserEmailFunc resolves a user's email address for reminder delivery.
type UserEmailFunc func(ctx context.Context, userID string) (string, error)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker runs the async worker in the background, with retries
// on startup failure.
func InitReminderWorker(mail mailer.Mailer) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExpiryReminder, handleExpiryReminder(mail))

	go func() {
		logger := zap.L().Sugar()
		logger.Info("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Errorf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					logger.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleExpiryReminder(mail mailer.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := zap.L()

		var p ExpiryReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		msg := mailer.Message{
			ToEmail: p.Email,
			Subject: "Your Rent2Reuse subscription is expiring soon",
			Body: fmt.Sprintf("Your %s plan expires on %s. Renew to keep your listings active.",
				p.PlanName, p.EndDate.Format("January 2, 2006")),
		}
		if _, err := mail.Send(ctx, msg); err != nil {
			logger.Error("Failed to send expiry reminder",
				zap.String("subscriptionId", p.SubscriptionID),
				zap.String("userId", p.UserID),
				zap.Error(err))
			return err
		}

		logger.Info("Expiry reminder sent",
			zap.String("subscriptionId", p.SubscriptionID),
			zap.String("userId", p.UserID))
		return nil
	}
}

// StartReminderScheduler periodically scans for subscriptions expiring within
// the configured horizon and enqueues one reminder task each. Enqueueing is
// deduplicated per subscription per day via the task ID.
func StartReminderScheduler(ctx context.Context, repo billingRepoPkg.BillingRepository, lookupEmail UserEmailFunc) {
	client := asynq.NewClient(redisOpts())

	go func() {
		defer client.Close()
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()

		scan := func() {
			logger := zap.L()
			now := time.Now()
			horizon := time.Duration(config.AppConfig.ReminderHorizonDays) * 24 * time.Hour

			subs, err := repo.ExpiringSubscriptions(ctx, now, horizon)
			if err != nil {
				logger.Error("Expiry scan failed", zap.Error(err))
				return
			}

			for _, sub := range subs {
				email, err := lookupEmail(ctx, sub.UserID)
				if err != nil || email == "" {
					logger.Warn("No email for expiring subscription",
						zap.String("subscriptionId", sub.SubscriptionID),
						zap.String("userId", sub.UserID),
						zap.Error(err))
					continue
				}

				payload, err := json.Marshal(ExpiryReminderPayload{
					SubscriptionID: sub.SubscriptionID,
					UserID:         sub.UserID,
					Email:          email,
					PlanName:       sub.PlanName,
					EndDate:        sub.EndDate,
				})
				if err != nil {
					continue
				}

				taskID := fmt.Sprintf("%s:%s:%s", TypeExpiryReminder, sub.SubscriptionID, now.Format("2006-01-02"))
				_, err = client.Enqueue(
					asynq.NewTask(TypeExpiryReminder, payload),
					asynq.TaskID(taskID),
					asynq.MaxRetry(3),
				)
				if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
					logger.Error("Failed to enqueue expiry reminder",
						zap.String("subscriptionId", sub.SubscriptionID), zap.Error(err))
				}
			}
		}

		scan()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				scan()
			}
		}
	}()
}
