// Package offline fetches the media of saved reels to local disk so they can
// play without a connection. Fetches run a bounded number at a time; progress
// and status changes reach the UI through an update callback.
package offline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reelbite/reelbite/internal/model"
)

// Fetch tuning
const (
	retryBackoff   = 2 * time.Second
	progressWindow = 64 * 1024 // bytes between progress callbacks
)

// Service handles offline save operations
type Service struct {
	tasks       map[string]*model.OfflineTask
	tasksMutex  sync.RWMutex
	cancels     map[string]context.CancelFunc
	maxParallel int
	activeCount int
	offlineDir  string
	http        *http.Client
	onUpdate    func(*model.OfflineTask) // callback for UI updates
}

// NewService creates a new offline save service writing into offlineDir.
func NewService(offlineDir string, maxParallel int) *Service {
	return &Service{
		tasks:       make(map[string]*model.OfflineTask),
		cancels:     make(map[string]context.CancelFunc),
		maxParallel: maxParallel,
		offlineDir:  offlineDir,
		http:        &http.Client{},
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.OfflineTask)) {
	s.onUpdate = callback
}

// AddTask queues an offline fetch for one reel. A reel with an unfinished
// task is not queued twice.
func (s *Service) AddTask(item *model.ReelItem) (*model.OfflineTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.ReelID == item.ID && !task.Status.IsFinished() {
			return nil, fmt.Errorf("offline fetch already queued for reel %s", item.ID)
		}
	}

	task := &model.OfflineTask{
		ID:        uuid.New().String(),
		ReelID:    item.ID,
		MediaURL:  item.MediaURL,
		Title:     item.DisplayTitle(),
		Status:    model.OfflineStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task

	// Capacity is claimed under the lock so a burst of adds cannot
	// oversubscribe the fetch slots.
	if s.activeCount < s.maxParallel {
		s.activeCount++
		task.Status = model.OfflineStatusFetching
		go s.runTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.OfflineTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.OfflineTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.OfflineTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// LocalPath returns the stored media path for a reel when a completed fetch
// exists.
func (s *Service) LocalPath(reelID string) (string, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	for _, task := range s.tasks {
		if task.ReelID == reelID && task.Status == model.OfflineStatusCompleted {
			return task.LocalPath, true
		}
	}
	return "", false
}

// StopTask stops a running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	if cancel, ok := s.cancels[id]; ok {
		s.tasksMutex.Unlock()
		cancel()
		return nil
	}

	// Never reached the fetch goroutine. Finish it directly; a claimed but
	// unregistered task sees the status change and aborts.
	task.Status = model.OfflineStatusStopped
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
	return nil
}

// runTask runs one claimed fetch to completion
func (s *Service) runTask(task *model.OfflineTask) {
	ctx, cancel := context.WithCancel(context.Background())

	defer func() {
		cancel()
		s.tasksMutex.Lock()
		s.activeCount--
		delete(s.cancels, task.ID)
		s.tasksMutex.Unlock()

		s.startNextPendingTask()
	}()

	s.tasksMutex.Lock()
	if task.Status != model.OfflineStatusFetching {
		// Stopped between claim and start.
		s.tasksMutex.Unlock()
		return
	}
	s.cancels[task.ID] = cancel
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	localPath, err := s.fetchWithRetry(ctx, task)

	s.tasksMutex.Lock()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			task.Status = model.OfflineStatusStopped
		} else {
			task.Status = model.OfflineStatusError
			task.LastError = err.Error()
		}
	} else {
		task.Status = model.OfflineStatusCompleted
		task.Progress = 1.0
		task.LocalPath = localPath
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// fetchWithRetry attempts the fetch with one retry after a backoff
func (s *Service) fetchWithRetry(ctx context.Context, task *model.OfflineTask) (string, error) {
	maxRetries := 1
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			log.Printf("Retrying offline fetch for task %s, attempt %d", task.ID, attempt+1)
		}

		path, err := s.fetchOnce(ctx, task)
		if err == nil {
			return path, nil
		}

		lastErr = err
		log.Printf("Offline fetch attempt %d failed for task %s: %v", attempt+1, task.ID, err)

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", lastErr
}

// fetchOnce streams the media to a temp file and renames it into place
func (s *Service) fetchOnce(ctx context.Context, task *model.OfflineTask) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.MediaURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, task.MediaURL)
	}

	if err := os.MkdirAll(s.offlineDir, 0o755); err != nil {
		return "", err
	}

	final := filepath.Join(s.offlineDir, task.ReelID+mediaExt(task.MediaURL))
	tmp := final + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return "", err
	}

	err = s.copyWithProgress(ctx, out, resp.Body, resp.ContentLength, task)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return "", err
	}

	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return final, nil
}

// copyWithProgress copies the body, pushing progress roughly every
// progressWindow bytes. An unknown content length reports -1.
func (s *Service) copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total int64, task *model.OfflineTask) error {
	buf := make([]byte, 32*1024)
	var done, sinceReport int64

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return err
			}
			done += int64(n)
			sinceReport += int64(n)
			if sinceReport >= progressWindow {
				sinceReport = 0
				s.updateTaskProgress(task, done, total)
			}
		}
		if readErr == io.EOF {
			s.updateTaskProgress(task, done, total)
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

// updateTaskProgress records fetch progress on the task
func (s *Service) updateTaskProgress(task *model.OfflineTask, done, total int64) {
	s.tasksMutex.Lock()
	if total > 0 {
		task.Progress = float64(done) / float64(total)
	} else {
		task.Progress = -1
	}
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}

	for _, task := range s.tasks {
		if task.Status == model.OfflineStatusPending {
			s.activeCount++
			task.Status = model.OfflineStatusFetching
			go s.runTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.OfflineTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// mediaExt derives a file extension from the media URL, defaulting to .mp4.
func mediaExt(mediaURL string) string {
	ext := path.Ext(path.Base(mediaURL))
	if ext == "" || len(ext) > 5 {
		return ".mp4"
	}
	return ext
}
