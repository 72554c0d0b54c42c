//go:build ignore
// +build ignore

// Helper script to add test tasks to the configured board
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"

	"github.com/thenoetrevino/kanbanpro/internal/app"
	"github.com/thenoetrevino/kanbanpro/internal/config"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer application.Close()

	testTasks := []struct {
		column  models.ColumnKey
		content string
	}{
		{models.ColumnTodo, "Write spec"},
		{models.ColumnTodo, "Sketch the board layout"},
		{models.ColumnTodo, "Pick column colors"},
		{models.ColumnInProgress, "Implement drag and drop"},
		{models.ColumnInProgress, "Persist the board after every change"},
		{models.ColumnComplete, "Set up the repository"},
	}

	for _, tt := range testTasks {
		task, err := application.BoardService.AddTask(ctx, boardservice.AddTaskRequest{
			Column:  tt.column,
			Content: tt.content,
		})
		if err != nil {
			log.Printf("Failed to add %q: %v", tt.content, err)
			continue
		}
		log.Printf("Added %s to %s", task.ID, tt.column.Display().Name)
	}

	log.Printf("Board now holds %d tasks", application.BoardService.Board().TaskCount())
}
