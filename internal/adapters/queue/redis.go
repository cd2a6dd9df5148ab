package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"confcentral/internal/domain"
	"confcentral/internal/monitoring"
)

// DefaultTaskList is the Redis list tasks are pushed to.
const DefaultTaskList = "tasks:pending"

type redisTaskQueue struct {
	client *redis.Client
	list   string
}

// NewTaskQueue returns a TaskQueue on a Redis list. Handlers only push;
// consumption belongs to the Worker.
func NewTaskQueue(client *redis.Client, list string) domain.TaskQueue {
	if list == "" {
		list = DefaultTaskList
	}
	return &redisTaskQueue{
		client: client,
		list:   list,
	}
}

func (q *redisTaskQueue) Enqueue(ctx context.Context, task *domain.Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	if err := q.client.LPush(ctx, q.list, data).Err(); err != nil {
		return fmt.Errorf("enqueue task %s: %w", task.Type, err)
	}
	monitoring.RecordTaskEnqueued(string(task.Type))
	return nil
}
