package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/tally/internal/validation"
)

// ============================================================================
// TASKS
// ============================================================================

func (s *Server) handleCreateTask(c *gin.Context) {
	payload, err := validation.DecodeCreateTask(c.Request.Body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), payload)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := s.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	payload, err := validation.DecodeUpdateTask(c.Request.Body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	task, err := s.tasks.UpdateTask(c.Request.Context(), id, payload)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ============================================================================
// LABELS
// ============================================================================

func (s *Server) handleCreateLabel(c *gin.Context) {
	payload, err := validation.DecodeCreateLabel(c.Request.Body)
	if err != nil {
		s.writeError(c, err)
		return
	}

	label, err := s.labels.CreateLabel(c.Request.Context(), payload)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, label)
}

func (s *Server) handleListLabels(c *gin.Context) {
	labels, err := s.labels.ListLabels(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

func (s *Server) handleDeleteLabel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.labels.DeleteLabel(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}

// pathID parses the :id segment, answering 400 when it is not an integer
func pathID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id " + strconv.Quote(raw)})
		return 0, false
	}
	return id, true
}
