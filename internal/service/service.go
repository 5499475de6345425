// Package service runs analysis jobs: it owns the job map, executes
// registered tools, and publishes lifecycle events for SSE consumers.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zester4/RaidenAlpha/internal/models"
	"github.com/zester4/RaidenAlpha/internal/tools"
)

type Service struct {
	registry *tools.Registry

	mu   sync.RWMutex
	jobs map[string]*models.Job

	hub *Hub
}

func New(registry *tools.Registry) *Service {
	return &Service{
		registry: registry,
		jobs:     map[string]*models.Job{},
		hub:      NewHub(),
	}
}

// CreateJob registers a pending job for a named tool and returns it.
func (s *Service) CreateJob(tool string, inputs map[string]any) (*models.Job, error) {
	if _, ok := s.registry.Get(tool); !ok {
		return nil, fmt.Errorf("unknown tool %q (registered: %v)", tool, s.registry.Names())
	}
	job := &models.Job{
		ID:        uuid.NewString(),
		Tool:      tool,
		Inputs:    inputs,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
	s.hub.Publish(job.ID, Event{Event: "job_status", JobID: job.ID, Payload: map[string]any{"status": job.Status}})
	return job, nil
}

func (s *Service) GetJob(id string) (*models.Job, bool) {
	s.mu.RLock()
	job, ok := s.jobs[id]
	s.mu.RUnlock()
	return job, ok
}

func (s *Service) ListJobs() []*models.Job {
	s.mu.RLock()
	out := make([]*models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job)
	}
	s.mu.RUnlock()
	return out
}

// Run executes a job's tool with a streaming callback wired into the event
// hub. Tool errors land in the job result, not in Run's error, which is
// reserved for unknown job IDs.
func (s *Service) Run(ctx context.Context, id string) error {
	job, ok := s.GetJob(id)
	if !ok {
		return errors.New("job not found")
	}
	s.setStatus(job, models.StatusRunning)

	tool, ok := s.registry.Get(job.Tool)
	if !ok {
		job.Result = &models.Result{Error: "unknown tool: " + job.Tool}
		s.finish(job, models.StatusFailed)
		return nil
	}

	appender := s.hub.ChunkAppender(id)
	runCtx := context.WithValue(ctx, tools.CtxTokenCallbackKey, tools.TokenCallback(appender))

	output, logs, err := tool.Execute(runCtx, job.Inputs)
	s.hub.StopChunkAppender(id)

	job.Result = &models.Result{Output: output, Logs: logs}
	if err != nil {
		job.Result.Error = err.Error()
		s.finish(job, models.StatusFailed)
		return nil
	}
	s.finish(job, models.StatusSuccess)
	return nil
}

// Subscribe returns JSON-encoded events for one job; the cancel func must be
// called when the consumer disconnects.
func (s *Service) Subscribe(jobID string) (<-chan []byte, func()) {
	return s.hub.Subscribe(jobID)
}

func (s *Service) setStatus(job *models.Job, status models.Status) {
	s.mu.Lock()
	job.Status = status
	job.UpdatedAt = time.Now()
	s.mu.Unlock()
	s.hub.Publish(job.ID, Event{Event: "job_status", JobID: job.ID, Payload: map[string]any{"status": status}})
}

func (s *Service) finish(job *models.Job, status models.Status) {
	s.mu.Lock()
	job.Status = status
	job.UpdatedAt = time.Now()
	result := job.Result
	s.mu.Unlock()
	s.hub.Publish(job.ID, Event{Event: "result", JobID: job.ID, Payload: result})
	s.hub.Publish(job.ID, Event{Event: "job_status", JobID: job.ID, Payload: map[string]any{"status": status}})
}
