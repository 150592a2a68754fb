package web

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/writertools/internal/db"
	"github.com/inkwise/writertools/internal/parser"
)

// parseLogWorkForm validates the log-work form and converts it into a service
// request. All parsing and bounds checks happen here; the duration resolver
// downstream only ever sees valid values.
func parseLogWorkForm(c *gin.Context, userID uint) (db.LogWorkRequest, error) {
	req := db.LogWorkRequest{UserID: userID}

	startDate, err := parser.ParseDate(c.PostForm("startdate"))
	if err != nil {
		return req, err
	}
	req.StartDate = startDate

	if req.EndDate, err = parser.ParseOptionalDate(c.PostForm("enddate")); err != nil {
		return req, err
	}
	if req.StartTime, err = parser.ParseOptionalClock(c.PostForm("starttime")); err != nil {
		return req, err
	}
	if req.EndTime, err = parser.ParseOptionalClock(c.PostForm("endtime")); err != nil {
		return req, err
	}
	if req.DurationMinutes, err = parser.ParseDurationMinutes(c.PostForm("duration")); err != nil {
		return req, err
	}
	if req.WordCount, err = parser.ParseWordCount(c.PostForm("wordcount")); err != nil {
		return req, err
	}

	// The activity select offers the standard choices, but any value is
	// accepted: the field is free text on the model.
	req.Activity = c.PostForm("activity")

	if projectStr := c.PostForm("project"); projectStr != "" {
		projectID, err := strconv.ParseUint(projectStr, 10, 32)
		if err != nil {
			return req, err
		}
		// Reject projects that are not the user's; the selector only offers
		// their own, so anything else is a forged form.
		project, err := db.GetProject(userID, uint(projectID))
		if err != nil {
			return req, err
		}
		req.ProjectID = &project.ID
	}

	return req, nil
}
