package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTaskRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateStatusRequest struct {
	Done *bool `json:"done" binding:"required"`
}

// taskResponse is the wire form of a task. The owner field stays internal;
// a client only ever sees its own tasks.
type taskResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Done:        task.Done,
		CreatedAt:   task.CreatedAt,
	}
}

func (s *Server) registerAccount(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	account, err := s.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "account_id", account.ID)
	c.JSON(http.StatusOK, gin.H{"message": "registration successful"})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Bad login input gets the same generic 401 as bad credentials.
		c.JSON(http.StatusUnauthorized, gin.H{"error": messageUnauthorized})
		return
	}

	token, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) listTasks(c *gin.Context) {
	identity := identityFromContext(c)

	result, err := s.tasks.List(c.Request.Context(), identity)
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp := make([]taskResponse, 0, len(result))
	for _, task := range result {
		resp = append(resp, toTaskResponse(task))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) createTask(c *gin.Context) {
	identity := identityFromContext(c)

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), identity, req.Name, req.Description)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (s *Server) getTask(c *gin.Context) {
	identity := identityFromContext(c)

	task, err := s.tasks.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (s *Server) updateTaskStatus(c *gin.Context) {
	identity := identityFromContext(c)

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	task, err := s.tasks.UpdateDone(c.Request.Context(), identity, c.Param("id"), *req.Done)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (s *Server) deleteTask(c *gin.Context) {
	identity := identityFromContext(c)

	if err := s.tasks.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
