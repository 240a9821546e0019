package janitor

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Task purges one cached resource kind: every generation older than TTL goes.
type Task struct {
	Kind  string
	TTL   time.Duration
	Purge func(ctx context.Context, cutoff time.Time) (int64, error)
}

// Janitor periodically sweeps expired cache generations out of the store.
// Request handling never depends on it; stale generations are also replaced
// lazily on lookup.
type Janitor struct {
	scheduler *gocron.Scheduler
	tasks     []Task
	interval  time.Duration
}

// New creates a new Janitor.
func New(tasks []Task, interval time.Duration) *Janitor {
	s := gocron.NewScheduler(time.UTC)
	return &Janitor{
		scheduler: s,
		tasks:     tasks,
		interval:  interval,
	}
}

// Start schedules the periodic sweep and starts the underlying scheduler.
func (j *Janitor) Start() error {
	if len(j.tasks) == 0 {
		log.Println("janitor: no purge tasks configured; nothing to schedule")
		return nil
	}

	interval := j.interval
	if interval <= 0 {
		interval = time.Hour
	}

	_, err := j.scheduler.Every(interval).Do(func() {
		for _, task := range j.tasks {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

			cutoff := time.Now().UTC().Add(-task.TTL)
			n, err := task.Purge(ctx, cutoff)
			cancel()
			if err != nil {
				log.Printf("janitor: purge %s failed: %v", task.Kind, err)
				continue
			}
			if n > 0 {
				log.Printf("janitor: purged %d expired %s rows", n, task.Kind)
			}
		}
	})
	if err != nil {
		return err
	}

	j.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future sweeps.
func (j *Janitor) Stop() {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
}
