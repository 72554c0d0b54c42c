package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/kanbanpro/internal/models"
)

// columnRecord is the stored form of a column: {name, tasks}
type columnRecord struct {
	Name  string        `json:"name"`
	Tasks []models.Task `json:"tasks"`
}

// Encode serializes the full board keyed by column key.
// Empty columns are written as [] rather than null.
func Encode(b models.Board) ([]byte, error) {
	records := make(map[models.ColumnKey]columnRecord, len(b))
	for _, col := range b.Columns() {
		tasks := col.Tasks
		if tasks == nil {
			tasks = []models.Task{}
		}
		records[col.Key] = columnRecord{Name: col.Name, Tasks: tasks}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses a stored snapshot into a board.
//
// Absent columns, names and task lists fall back to their defaults and keys
// outside the fixed column set are ignored. Anything else that does not
// describe a valid board is an error.
func Decode(data []byte) (models.Board, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	b := models.DefaultBoard()
	for _, key := range models.ColumnKeys() {
		msg, ok := raw[string(key)]
		if !ok {
			continue
		}
		var rec columnRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSnapshot, key, err)
		}
		col := models.NewColumn(key)
		if rec.Name != "" {
			col.Name = rec.Name
		}
		if rec.Tasks != nil {
			col.Tasks = rec.Tasks
		}
		b[key] = col
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return b, nil
}
