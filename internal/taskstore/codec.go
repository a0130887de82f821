package taskstore

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// record is the on-disk shape of a task.
// It reads both the current field names and the Portuguese names written
// by the legacy browser app (titulo, descricao, prioridade, dataLimite, categoria).
type record struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Category    string `json:"category"`
	Status      string `json:"status"`

	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	Prioridade string `json:"prioridade"`
	DataLimite string `json:"dataLimite"`
	Categoria  string `json:"categoria"`

	ID int `json:"id"`
}

// task converts a record into a domain task, normalizing legacy values.
// Unknown priority or status values are kept verbatim.
func (r record) task() domain.Task {
	t := domain.Task{
		ID:          r.ID,
		Title:       firstNonEmpty(r.Title, r.Titulo),
		Description: firstNonEmpty(r.Description, r.Descricao),
		DueDate:     firstNonEmpty(r.DueDate, r.DataLimite),
		Category:    firstNonEmpty(r.Category, r.Categoria),
	}

	rawPriority := firstNonEmpty(r.Priority, r.Prioridade)
	if p, ok := domain.ParsePriority(rawPriority); ok {
		t.Priority = p
	} else {
		t.Priority = domain.Priority(rawPriority)
	}

	if s, ok := domain.ParseStatus(r.Status); ok {
		t.Status = s
	} else {
		t.Status = domain.Status(r.Status)
	}
	return t
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// encode serializes the collection as a JSON array.
func encode(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// decode parses a snapshot written by encode or by the legacy browser app.
// Empty input and JSON null decode to an empty collection.
func decode(data []byte) ([]domain.Task, error) {
	if len(data) == 0 {
		return []domain.Task{}, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.task())
	}
	return tasks, nil
}
