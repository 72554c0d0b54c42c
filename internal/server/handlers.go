package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/kanbanpro/internal/models"
	"github.com/thenoetrevino/kanbanpro/internal/persistence"
	boardservice "github.com/thenoetrevino/kanbanpro/internal/services/board"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, svc boardservice.Service) {
	e.GET("/api/board", getBoard(svc))
	e.POST("/api/columns/:key/tasks", postTask(svc))
	e.POST("/api/moves", postMove(svc))
	e.GET("/api/metrics", getMetrics(svc))
	e.GET("/healthz", healthz())
}

type addTaskRequest struct {
	Content string `json:"content"`
}

type addTaskResponse struct {
	Task  models.Task     `json:"task"`
	Board json.RawMessage `json:"board"`
}

// moveRequest is a completed drop: the drag payload plus the drop target.
// A missing destIndex drops at the end of the destination column.
type moveRequest struct {
	TaskID       string           `json:"taskId"`
	SourceColumn models.ColumnKey `json:"sourceColumnKey"`
	SourceIndex  int              `json:"sourceIndex"`
	DestColumn   models.ColumnKey `json:"destColumnKey"`
	DestIndex    *int             `json:"destIndex"`
}

type moveResponse struct {
	Moved  bool            `json:"moved"`
	Reason string          `json:"reason,omitempty"`
	Board  json.RawMessage `json:"board"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func getBoard(svc boardservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := persistence.Encode(svc.Board())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return c.JSONBlob(http.StatusOK, data)
	}
}

func postTask(svc boardservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}

		task, err := svc.AddTask(c.Request().Context(), boardservice.AddTaskRequest{
			Column:  models.ColumnKey(c.Param("key")),
			Content: req.Content,
		})
		if err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, boardservice.ErrIDExhausted) {
				status = http.StatusInternalServerError
			}
			return c.JSON(status, errorResponse{Error: err.Error()})
		}

		data, err := persistence.Encode(svc.Board())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusCreated, addTaskResponse{Task: *task, Board: data})
	}
}

func postMove(svc boardservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req moveRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}

		destIndex := boardservice.EndOfColumn
		if req.DestIndex != nil {
			destIndex = *req.DestIndex
		}

		resp := moveResponse{}
		moved, err := svc.MoveTask(c.Request().Context(), boardservice.MoveTaskRequest{
			TaskID:    req.TaskID,
			Source:    req.SourceColumn,
			Dest:      req.DestColumn,
			DestIndex: destIndex,
		})
		resp.Moved = moved
		if err != nil {
			resp.Reason = err.Error()
		}

		data, err := persistence.Encode(svc.Board())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		resp.Board = data
		return c.JSON(http.StatusOK, resp)
	}
}

func getMetrics(svc boardservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Metrics())
	}
}
