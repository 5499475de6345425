package service

import (
	"encoding/json"
	"sync"
	"time"
)

// Event is the SSE payload wrapper published per job.
type Event struct {
	Event   string `json:"event"`
	JobID   string `json:"job_id"`
	Payload any    `json:"payload,omitempty"`
}

type subscriber chan []byte

// Hub fans out job events to SSE subscribers and coalesces streamed text
// chunks on a 100ms cadence so a chatty tool cannot flood the wire.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[subscriber]struct{} // jobID -> subscribers

	chunkMu   sync.Mutex
	chunkBuf  map[string]string        // jobID -> buffered text
	chunkStop map[string]chan struct{} // jobID -> flush loop stop
}

func NewHub() *Hub {
	return &Hub{
		subs:      map[string]map[subscriber]struct{}{},
		chunkBuf:  map[string]string{},
		chunkStop: map[string]chan struct{}{},
	}
}

// Subscribe registers a listener for one job. The returned cancel func must
// be called when the client goes away.
func (h *Hub) Subscribe(jobID string) (<-chan []byte, func()) {
	ch := make(subscriber, 16)
	h.mu.Lock()
	set := h.subs[jobID]
	if set == nil {
		set = map[subscriber]struct{}{}
		h.subs[jobID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[jobID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, jobID)
			}
		}
		close(ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish sends an event to every subscriber of the job, non-blocking; slow
// consumers miss events rather than stall the pipeline.
func (h *Hub) Publish(jobID string, ev Event) {
	b, _ := json.Marshal(ev)
	h.mu.RLock()
	for ch := range h.subs[jobID] {
		select {
		case ch <- b:
		default:
		}
	}
	h.mu.RUnlock()
}

// ChunkAppender returns a func buffering streamed text for the job; buffered
// text is flushed as coalesced "chunk" events by a per-job loop.
func (h *Hub) ChunkAppender(jobID string) func(chunk string) {
	h.chunkMu.Lock()
	if _, ok := h.chunkStop[jobID]; !ok {
		stop := make(chan struct{})
		h.chunkStop[jobID] = stop
		go h.flushLoop(jobID, stop)
	}
	h.chunkMu.Unlock()

	return func(chunk string) {
		if chunk == "" {
			return
		}
		h.chunkMu.Lock()
		h.chunkBuf[jobID] += chunk
		h.chunkMu.Unlock()
	}
}

func (h *Hub) flushLoop(jobID string, stop <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.chunkMu.Lock()
			buf := h.chunkBuf[jobID]
			delete(h.chunkBuf, jobID)
			h.chunkMu.Unlock()
			if buf != "" {
				h.Publish(jobID, Event{Event: "chunk", JobID: jobID, Payload: map[string]any{"text": buf}})
			}
		}
	}
}

// StopChunkAppender halts the flush loop and flushes any remainder.
func (h *Hub) StopChunkAppender(jobID string) {
	h.chunkMu.Lock()
	if stop, ok := h.chunkStop[jobID]; ok {
		close(stop)
		delete(h.chunkStop, jobID)
	}
	buf := h.chunkBuf[jobID]
	delete(h.chunkBuf, jobID)
	h.chunkMu.Unlock()
	if buf != "" {
		h.Publish(jobID, Event{Event: "chunk", JobID: jobID, Payload: map[string]any{"text": buf}})
	}
}
