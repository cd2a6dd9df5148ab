package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaskType names an asynchronous side task.
type TaskType string

const (
	TaskTypeConfirmationEmail TaskType = "send_confirmation_email"
	TaskTypeFeaturedSpeaker   TaskType = "set_featured_speaker"
)

// Task is one unit of asynchronous work. Execution belongs to the queue
// worker; request handlers only enqueue.
type Task struct {
	ID         string          `json:"id"`
	Type       TaskType        `json:"type"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	Payload    json.RawMessage `json:"payload"`
}

// ConfirmationEmailPayload is the payload for TaskTypeConfirmationEmail.
type ConfirmationEmailPayload struct {
	Email          string `json:"email"`
	ConferenceName string `json:"conference_name"`
	ConferenceInfo string `json:"conference_info"`
}

// FeaturedSpeakerPayload is the payload for TaskTypeFeaturedSpeaker.
type FeaturedSpeakerPayload struct {
	SpeakerKey    string `json:"speaker_key"`
	ConferenceKey string `json:"conference_key"`
}

// NewTask builds a Task with a fresh id and the payload marshaled to JSON.
func NewTask(taskType TaskType, payload any) (*Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Task{
		ID:         uuid.NewString(),
		Type:       taskType,
		EnqueuedAt: time.Now(),
		Payload:    raw,
	}, nil
}

// TaskQueue enqueues asynchronous tasks for an external worker.
type TaskQueue interface {
	Enqueue(ctx context.Context, task *Task) error
}
