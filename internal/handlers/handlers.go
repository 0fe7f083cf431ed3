// Package handlers exposes the HTTP surface of the API. Handlers only
// parse transport payloads and delegate to the services; all business
// rules live there.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/response"
)

const dateLayout = "2006-01-02"

// parseUUIDParam parses a path parameter as a UUID, replying 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD date string
func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

// parseOptionalDate parses a date string when present, replying 400 on a
// malformed value
func parseOptionalDate(c *gin.Context, raw *string, field string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}

	parsed, err := parseDate(*raw)
	if err != nil {
		response.BadRequest(c, "invalid "+field+" format, expected YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}
