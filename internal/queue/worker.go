package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/anotoria/Zenith-AI/internal/models"
	"github.com/hibiken/asynq"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.PublishPost(ctx, payload.PostID, payload.ScheduledAt)
}

// PublishPost pushes a due scheduled post to its platform and flips the
// status to Published. A post that was edited, rescheduled or already
// published since enqueue time is skipped; a reschedule enqueues its own
// task carrying the new send time.
func (q *Queue) PublishPost(ctx context.Context, postID string, scheduledAt time.Time) error {
	post, ok, err := q.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("Post %s no longer exists, skipping publish", postID)
		return nil
	}
	if post.Status != models.PostStatusScheduled {
		log.Printf("Post %s is %s, skipping publish", postID, post.Status)
		return nil
	}
	if !scheduledAt.IsZero() && !post.ScheduledAt.Equal(scheduledAt) {
		log.Printf("Post %s was rescheduled to %s, skipping stale publish task", postID, post.ScheduledAt)
		return nil
	}

	profile, ok, err := q.sp.GetByPlatform(ctx, post.Platform)
	if err != nil {
		return err
	}
	if !ok || !profile.IsConnected || profile.Facebook == nil {
		err := fmt.Errorf("no connected %s profile for post %s", post.Platform, postID)
		q.n.Error("Scheduled post could not be published: platform not connected.")
		return err
	}

	if _, err := q.fb.PublishToPage(ctx, profile.Facebook, post.Content, post.ImageURL); err != nil {
		log.Printf("Error publishing post %s to %s: %v", postID, post.Platform, err)
		q.n.Error("Scheduled post could not be published.")
		return err
	}

	if err := q.pr.UpdateStatus(ctx, postID, models.PostStatusPublished); err != nil {
		return err
	}

	q.n.Success("Scheduled post published!")
	return nil
}
