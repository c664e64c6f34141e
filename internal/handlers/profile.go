package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizforge/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, user"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
// @Security     BearerAuth
func (h *Handler) profile(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": statusFail, "msg": "missing identity"})
		return
	}

	user, err := h.services.Progress.Profile(c.Request.Context(), ident.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"status": statusFail, "msg": "User not found"})
		return
	}
	if err != nil {
		h.serverError(c, "profile_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "user": user})
}

// @Summary      Leaderboard
// @Description  All users sorted descending by XP with 1-based ranks.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, leaderboard"
// @Failure      500  {object}  map[string]string
// @Router       /leaderboard [get]
func (h *Handler) leaderboard(c *gin.Context) {
	entries, err := h.services.Leaderboard.Standings(c.Request.Context())
	if err != nil {
		h.serverError(c, "leaderboard_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "leaderboard": entries})
}

// isDateOnly reports whether the query string has no time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      Quiz attempt history
// @Description  The caller's attempts, newest first. Optional from/to filters (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'; date-only 'to' is end-of-day inclusive).
// @Tags         quiz
// @Produce      json
// @Param        from  query  string  false  "Start of range"  example(2025-08-01)
// @Param        to    query  string  false  "End of range"    example(2025-08-31)
// @Success      200  {object}  map[string]interface{}  "status, count, attempts"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /history [get]
// @Security     BearerAuth
func (h *Handler) history(c *gin.Context) {
	ident, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": statusFail, "msg": "missing identity"})
		return
	}

	var (
		from time.Time
		to   time.Time
		err  error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "msg": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "msg": errToInvalid})
			return
		}
		// A date-only "to" means the whole of that day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "msg": "'from' must be <= 'to'"})
		return
	}

	attempts, err := h.services.Progress.History(c.Request.Context(), ident.Email, service.AttemptFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		h.serverError(c, "history_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   statusSuccess,
		"count":    len(attempts),
		"attempts": attempts,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
