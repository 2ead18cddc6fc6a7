package queue

import (
	"time"

	"github.com/anotoria/Zenith-AI/internal/notify"
	"github.com/anotoria/Zenith-AI/internal/repository"
	"github.com/anotoria/Zenith-AI/internal/service"
)

type Queue struct {
	pr repository.PostRepository
	sp repository.SocialProfileRepository
	fb service.FacebookService
	n  *notify.Notifier
}

func NewQueue(
	pr repository.PostRepository,
	sp repository.SocialProfileRepository,
	fb service.FacebookService,
	n *notify.Notifier) *Queue {
	return &Queue{
		pr: pr,
		sp: sp,
		fb: fb,
		n:  n,
	}
}

const TaskTypePublishPost = "publish:post"

// PublishPostPayload carries the send time the task was enqueued for, so
// a task left behind by a reschedule can be told apart from the live one.
type PublishPostPayload struct {
	PostID      string    `json:"post_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}
