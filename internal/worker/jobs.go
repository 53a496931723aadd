package worker

import (
	"context"

	"github.com/arnav/studyflow/internal/jobs"
	"github.com/arnav/studyflow/internal/services"
)

// InsightRefreshJob regenerates the AI insight for one owner.
type InsightRefreshJob struct {
	Insights services.InsightService
	OwnerID  int64
}

func (j *InsightRefreshJob) Name() string { return "insight_refresh" }

func (j *InsightRefreshJob) Run(ctx context.Context) error {
	return j.Insights.Refresh(ctx, j.OwnerID)
}

// Queue adapts a Pool to the jobs.JobQueue abstraction.
type Queue struct {
	Pool     *Pool
	Insights services.InsightService
}

var _ jobs.JobQueue = (*Queue)(nil)

func (q *Queue) EnqueueInsightRefresh(ownerID int64) error {
	q.Pool.Submit(&InsightRefreshJob{Insights: q.Insights, OwnerID: ownerID})
	return nil
}
