package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"confcentral/internal/domain"
)

// Worker consumes tasks from the Redis list and executes them. It is the
// counterpart of the enqueue-only TaskQueue; request handlers never wait on
// it.
type Worker struct {
	client  *redis.Client
	list    string
	mailer  domain.Mailer
	signals domain.SignalService
	logger  *slog.Logger
}

func NewWorker(client *redis.Client, list string, mailer domain.Mailer, signals domain.SignalService, logger *slog.Logger) *Worker {
	if list == "" {
		list = DefaultTaskList
	}
	return &Worker{
		client:  client,
		list:    list,
		mailer:  mailer,
		signals: signals,
		logger:  logger,
	}
}

// Run blocks consuming tasks until the context is canceled. Task failures are
// logged and dropped; there is no retry at this layer.
func (w *Worker) Run(ctx context.Context) {
	for {
		result, err := w.client.BRPop(ctx, 5*time.Second, w.list).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			w.logger.ErrorContext(ctx, "task pop failed", "err", err)
			time.Sleep(time.Second)
			continue
		}
		// BRPop returns [list, value].
		if len(result) != 2 {
			continue
		}
		var task domain.Task
		if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
			w.logger.ErrorContext(ctx, "bad task payload", "err", err)
			continue
		}
		if err := w.handle(ctx, &task); err != nil {
			w.logger.ErrorContext(ctx, "task failed", "task_id", task.ID, "type", task.Type, "err", err)
		}
	}
}

func (w *Worker) handle(ctx context.Context, task *domain.Task) error {
	switch task.Type {
	case domain.TaskTypeConfirmationEmail:
		var payload domain.ConfirmationEmailPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal payload: %w", err)
		}
		return w.sendConfirmationEmail(payload)
	case domain.TaskTypeFeaturedSpeaker:
		var payload domain.FeaturedSpeakerPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return fmt.Errorf("unmarshal payload: %w", err)
		}
		_, err := w.signals.SetFeaturedSpeaker(ctx, payload.SpeakerKey, payload.ConferenceKey)
		return err
	default:
		return fmt.Errorf("unknown task type %q", task.Type)
	}
}

func (w *Worker) sendConfirmationEmail(payload domain.ConfirmationEmailPayload) error {
	if payload.Email == "" {
		return nil
	}
	subject := "You created a new conference!"
	text := fmt.Sprintf("Hi, you have created the following conference:\n\n%s", payload.ConferenceInfo)
	html := fmt.Sprintf("<p>Hi, you have created the following conference:</p><p><strong>%s</strong></p>", payload.ConferenceName)
	if err := w.mailer.Send(payload.Email, subject, html, text); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
