package queue

import (
	"encoding/json"
	"log"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/hibiken/asynq"
)

// Enqueuer wraps the asynq client behind the interface the services
// schedule through.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueuePublish(post *models.ScheduledPost, delay time.Duration) error {
	if delay < 0 {
		delay = 0
	}

	taskPayload, err := json.Marshal(PublishPostPayload{PostID: post.ID, ScheduledAt: post.ScheduledAt})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = e.client.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	log.Printf("Publish task scheduled: post %s in %s", post.ID, delay)
	return nil
}
