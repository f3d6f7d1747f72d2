package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javiermolinar/pagetable/internal/store"
)

const (
	rootGreeting     = "Hello from paginated user API!"
	errInvalidPaging = "Invalid page or limit query parameters"
	errSourceFailure = "failed to read users"
)

type usersResponse struct {
	Data  []json.RawMessage `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, rootGreeting)
}

func (s *Server) health(c *gin.Context) {
	total, err := s.src.Total(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusServiceUnavailable, errSourceFailure, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "total": total})
}

func (s *Server) users(c *gin.Context) {
	page, okPage := parsePositive(c.Query("page"))
	limit, okLimit := parsePositive(c.Query("limit"))
	if !okPage || !okLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      errInvalidPaging,
			"request_id": GetRequestID(c),
		})
		return
	}

	ctx := c.Request.Context()
	total, err := s.src.Total(ctx)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, errSourceFailure, err)
		return
	}

	data, err := s.src.Slice(ctx, store.Offset(page, limit, total), limit)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, errSourceFailure, err)
		return
	}
	if data == nil {
		data = []json.RawMessage{}
	}

	c.JSON(http.StatusOK, usersResponse{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

func (s *Server) fail(c *gin.Context, status int, msg string, err error) {
	_ = c.Error(err)
	s.logf("[HTTP] request_id=%s error=%q", GetRequestID(c), err.Error())
	c.JSON(status, gin.H{"error": msg, "request_id": GetRequestID(c)})
}

// parsePositive accepts a plain decimal integer greater than zero.
func parsePositive(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
