package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
)

// submissionRouter serves two submissions and records grading calls.
func submissionRouter(scoreCalls *atomic.Int32) *gin.Engine {
	router := gin.New()

	router.GET("/tasks/:id/submissions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"submissions": []gin.H{
				{"id": "s1", "task_id": "task-1", "student_id": "u1", "is_late": false},
				{"id": "s2", "task_id": "task-1", "student_id": "u2", "is_late": true,
					"answers": gin.H{"What is a goroutine?": "A lightweight thread"}},
			},
			"pagination": gin.H{"currentPage": 1, "pageSize": 10, "totalItems": 2},
		})
	})

	router.PUT("/submissions/:id/score", func(c *gin.Context) {
		scoreCalls.Add(1)
		var req dto.SetScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id": c.Param("id"), "task_id": "task-1", "student_id": "u1", "score": req.Score,
		})
	})

	router.PUT("/submissions/:id/feedback", func(c *gin.Context) {
		var req dto.SetFeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id": c.Param("id"), "task_id": "task-1", "student_id": "u1", "feedback": req.Feedback,
		})
	})

	return router
}

func chatRouter() *gin.Engine {
	router := gin.New()
	router.POST("/custom_inference", func(c *gin.Context) {
		var req dto.InferenceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": "Good grasp of concurrency; explain scheduling next time."})
	})
	return router
}

func loadedSubmissionScreen(t *testing.T, scoreCalls *atomic.Int32) *SubmissionService {
	app := newTestApp(t, backends{
		course:  submissionRouter(scoreCalls),
		profile: profileRouter(),
		chat:    chatRouter(),
	})
	screen := app.OpenSubmissions("task-1")
	require.NoError(t, screen.Load(context.Background()))
	return screen
}

func TestSubmissionsEnrichedWithStudents(t *testing.T) {
	var scoreCalls atomic.Int32
	screen := loadedSubmissionScreen(t, &scoreCalls)

	views := screen.Submissions(context.Background())
	require.Len(t, views, 2)
	assert.Equal(t, "name of u1", views[0].StudentName)
	assert.True(t, views[1].IsLate)
	assert.False(t, views[0].Graded())
}

func TestGradeRejectsOutOfRangeScoresBeforeNetwork(t *testing.T) {
	var scoreCalls atomic.Int32
	screen := loadedSubmissionScreen(t, &scoreCalls)
	ctx := context.Background()

	for _, raw := range []string{"101", "-1", "12a", ""} {
		_, err := screen.Grade(ctx, "s1", raw)
		require.Error(t, err, "raw score %q", raw)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
	assert.Equal(t, int32(0), scoreCalls.Load(), "rejected scores never reach the server")
}

func TestGradeAcceptsBoundaryScores(t *testing.T) {
	var scoreCalls atomic.Int32
	screen := loadedSubmissionScreen(t, &scoreCalls)
	ctx := context.Background()

	updated, err := screen.Grade(ctx, "s1", "0")
	require.NoError(t, err)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 0, *updated.Score)

	updated, err = screen.Grade(ctx, "s1", "100")
	require.NoError(t, err)
	assert.Equal(t, 100, *updated.Score)

	assert.Equal(t, int32(2), scoreCalls.Load())

	// The graded submission is patched into the visible list.
	views := screen.Submissions(ctx)
	require.NotNil(t, views[0].Score)
	assert.Equal(t, 100, *views[0].Score)
	assert.True(t, screen.Stale())
}

func TestGiveFeedbackValidatesLength(t *testing.T) {
	var scoreCalls atomic.Int32
	screen := loadedSubmissionScreen(t, &scoreCalls)
	ctx := context.Background()

	_, result, err := screen.GiveFeedback(ctx, "s1", "too short")
	require.Error(t, err)
	assert.Equal(t, "must be at least 10 characters", result.ErrorFor("feedback"))

	updated, result, err := screen.GiveFeedback(ctx, "s1", "Solid work overall, revise the error handling section.")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "Solid work overall, revise the error handling section.", updated.Feedback)
}

func TestSuggestFeedbackDraftsFromAnswers(t *testing.T) {
	var scoreCalls atomic.Int32
	screen := loadedSubmissionScreen(t, &scoreCalls)

	draft, err := screen.SuggestFeedback(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, "Good grasp of concurrency; explain scheduling next time.", draft)

	_, err = screen.SuggestFeedback(context.Background(), "missing")
	require.Error(t, err)
}
