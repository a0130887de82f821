// Package taskstore owns the task collection and keeps it in sync with a durable slot.
//
// A Store is meant for a single logical actor: it performs no locking, and every
// operation completes synchronously before returning.
package taskstore

import (
	"fmt"
	"slices"

	"github.com/runoshun/tasklist/internal/domain"
)

const logCategory = "store"

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store holds the task collection in insertion order.
// Every successful mutation writes the full collection to the slot before
// the in-memory state changes, so the two never diverge.
type Store struct {
	slot   domain.Slot
	logger domain.Logger
	tasks  []domain.Task
	nextID int
}

// New creates a Store backed by slot. Call Load before use.
// A nil logger disables logging.
func New(slot domain.Slot, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		slot:   slot,
		logger: logger,
		tasks:  []domain.Task{},
		nextID: 1,
	}
}

// Load replaces the in-memory collection with the slot contents.
// An absent, unreadable, or corrupt snapshot yields an empty collection;
// the failure is logged and never returned.
func (s *Store) Load() {
	s.tasks = []domain.Task{}
	s.nextID = 1

	data, err := s.slot.Read()
	if err != nil {
		s.logger.Warn(0, logCategory, fmt.Sprintf("read slot: %v (starting empty)", err))
		return
	}

	tasks, err := decode(data)
	if err != nil {
		s.logger.Warn(0, logCategory, fmt.Sprintf("%v (starting empty)", err))
		return
	}

	s.tasks = s.ensureUniqueIDs(tasks)
	s.logger.Debug(0, logCategory, fmt.Sprintf("loaded %d tasks", len(s.tasks)))
}

// ensureUniqueIDs gives a fresh id to every task whose id is not positive or
// was already seen, and advances nextID past the highest id.
func (s *Store) ensureUniqueIDs(tasks []domain.Task) []domain.Task {
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}

	seen := make(map[int]bool, len(tasks))
	for i := range tasks {
		if tasks[i].ID <= 0 || seen[tasks[i].ID] {
			old := tasks[i].ID
			tasks[i].ID = s.nextID
			s.nextID++
			s.logger.Warn(tasks[i].ID, logCategory, fmt.Sprintf("reassigned duplicate or missing id %d", old))
		}
		seen[tasks[i].ID] = true
	}
	return tasks
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []domain.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (domain.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return s.tasks[idx], true
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range s.tasks {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Create validates the draft and appends a new Pending task.
// On a validation failure it returns a *domain.ValidationError and changes nothing.
func (s *Store) Create(d domain.Draft) (*domain.Task, error) {
	if err := domain.ValidateDraft(d); err != nil {
		return nil, err
	}

	task := d.Task()
	task.ID = s.nextID

	next := append(slices.Clone(s.tasks), task)
	if err := s.commit(next); err != nil {
		return nil, err
	}
	s.nextID++

	s.logger.Info(task.ID, logCategory, fmt.Sprintf("created: %q", task.Title))
	return &task, nil
}

// Update merges patch onto the task and validates the merged record.
// It returns domain.ErrTaskNotFound for an unknown id and a
// *domain.ValidationError for invalid data; neither changes anything.
func (s *Store) Update(id int, patch domain.Patch) (*domain.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	merged := patch.Normalize().Apply(s.tasks[idx])

	if err := domain.Validate(merged); err != nil {
		return nil, err
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, &domain.ValidationError{Field: "status", Err: domain.ErrInvalidStatus}
	}

	next := slices.Clone(s.tasks)
	next[idx] = merged
	if err := s.commit(next); err != nil {
		return nil, err
	}

	s.logger.Info(id, logCategory, "updated")
	return &merged, nil
}

// Remove deletes the task with the given id.
// An unknown id is a no-op: it returns false and writes nothing.
func (s *Store) Remove(id int) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.tasks), idx, idx+1)
	if err := s.commit(next); err != nil {
		return false, err
	}

	s.logger.Info(id, logCategory, "removed")
	return true, nil
}

// ToggleStatus advances the task status Pending → InProgress → Completed → Pending.
// An unknown id is a no-op and returns (nil, nil).
func (s *Store) ToggleStatus(id int) (*domain.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	next := slices.Clone(s.tasks)
	from := next[idx].Status
	next[idx].Status = from.Next()
	if err := s.commit(next); err != nil {
		return nil, err
	}

	task := next[idx]
	s.logger.Info(id, logCategory, fmt.Sprintf("status: %s -> %s", from, task.Status))
	return &task, nil
}

// ClearAll removes every task and persists the empty collection.
func (s *Store) ClearAll() error {
	if err := s.commit([]domain.Task{}); err != nil {
		return err
	}
	s.logger.Info(0, logCategory, "cleared all tasks")
	return nil
}

// commit persists next and, only if that succeeds, makes it the current collection.
func (s *Store) commit(next []domain.Task) error {
	data, err := encode(next)
	if err != nil {
		return err
	}
	if err := s.slot.Write(data); err != nil {
		s.logger.Error(0, logCategory, fmt.Sprintf("write slot: %v", err))
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.tasks = next
	return nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
