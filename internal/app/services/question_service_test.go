package services

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
)

// voteState is the forum service's authoritative vote record for one
// question.
type voteState struct {
	mu   sync.Mutex
	up   map[string]bool
	down map[string]bool
}

func newVoteState(up, down []string) *voteState {
	s := &voteState{up: map[string]bool{}, down: map[string]bool{}}
	for _, id := range up {
		s.up[id] = true
	}
	for _, id := range down {
		s.down[id] = true
	}
	return s
}

func (s *voteState) lists() (up, down []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.up {
		up = append(up, id)
	}
	for id := range s.down {
		down = append(down, id)
	}
	return up, down
}

// questionRouter serves one question's listing plus stateful vote add and
// remove endpoints.
func questionRouter(votes *voteState) *gin.Engine {
	router := gin.New()

	router.GET("/questions", func(c *gin.Context) {
		up, down := votes.lists()
		c.JSON(http.StatusOK, gin.H{
			"questions": []gin.H{{
				"id":       "q1",
				"forum_id": "forum-1",
				"user_id":  "u9",
				"title":    "How does grading work?",
				"votes":    gin.H{"up": up, "down": down},
			}},
			"pagination": gin.H{"currentPage": 1, "pageSize": 10, "totalItems": 1},
		})
	})

	router.POST("/questions/:id/votes", func(c *gin.Context) {
		var req dto.VoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid vote"})
			return
		}
		votes.mu.Lock()
		if req.Type == models.VoteUp {
			votes.up[req.UserID] = true
		} else {
			votes.down[req.UserID] = true
		}
		votes.mu.Unlock()
		c.Status(http.StatusCreated)
	})

	router.DELETE("/questions/:id/votes", func(c *gin.Context) {
		userID := c.Query("user_id")
		voteType := c.Query("type")
		votes.mu.Lock()
		if voteType == "up" {
			delete(votes.up, userID)
		} else {
			delete(votes.down, userID)
		}
		votes.mu.Unlock()
		c.Status(http.StatusNoContent)
	})

	return router
}

func loadedQuestionScreen(t *testing.T, votes *voteState) *QuestionService {
	app := newTestApp(t, backends{
		forum:   questionRouter(votes),
		profile: profileRouter(),
	})
	screen := app.OpenQuestions("forum-1")
	require.NoError(t, screen.Load(context.Background()))
	return screen
}

func currentVotes(t *testing.T, screen *QuestionService) models.Votes {
	t.Helper()
	views := screen.Questions(context.Background())
	require.Len(t, views, 1)
	return views[0].Votes
}

func TestToggleVoteAddsVote(t *testing.T) {
	votes := newVoteState(nil, nil)
	screen := loadedQuestionScreen(t, votes)
	ctx := context.Background()

	require.NoError(t, screen.ToggleVote(ctx, "q1", models.VoteUp))

	local := currentVotes(t, screen)
	assert.True(t, local.Has("user-1", models.VoteUp))
	up, down := votes.lists()
	assert.Contains(t, up, "user-1")
	assert.Empty(t, down)
}

func TestToggleVoteTwiceIsIdempotent(t *testing.T) {
	votes := newVoteState([]string{"other"}, nil)
	screen := loadedQuestionScreen(t, votes)
	ctx := context.Background()

	require.NoError(t, screen.ToggleVote(ctx, "q1", models.VoteUp))
	require.NoError(t, screen.ToggleVote(ctx, "q1", models.VoteUp))

	// Back to the pre-vote state, locally and on the server.
	local := currentVotes(t, screen)
	assert.False(t, local.Has("user-1", models.VoteUp))
	assert.False(t, local.Has("user-1", models.VoteDown))
	assert.True(t, local.Has("other", models.VoteUp))

	up, down := votes.lists()
	assert.ElementsMatch(t, []string{"other"}, up)
	assert.Empty(t, down)
}

func TestToggleVoteSwapsDirection(t *testing.T) {
	// The user starts with an upvote; casting a downvote must remove the
	// upvote, leaving the user in exactly one list.
	votes := newVoteState([]string{"user-1"}, nil)
	screen := loadedQuestionScreen(t, votes)
	ctx := context.Background()

	require.NoError(t, screen.ToggleVote(ctx, "q1", models.VoteDown))

	local := currentVotes(t, screen)
	assert.False(t, local.Has("user-1", models.VoteUp))
	assert.True(t, local.Has("user-1", models.VoteDown))

	up, down := votes.lists()
	assert.NotContains(t, up, "user-1")
	assert.Contains(t, down, "user-1")
}

func TestToggleVoteWithoutSessionFails(t *testing.T) {
	votes := newVoteState(nil, nil)
	screen := loadedQuestionScreen(t, votes)
	ctx := context.Background()

	app := newTestApp(t, backends{forum: questionRouter(votes), profile: profileRouter()})
	app.Sessions.Clear()
	loggedOut := app.OpenQuestions("forum-1")
	require.NoError(t, loggedOut.Load(ctx))
	require.Error(t, loggedOut.ToggleVote(ctx, "q1", models.VoteUp))

	// The signed-in screen is unaffected.
	require.NoError(t, screen.ToggleVote(ctx, "q1", models.VoteUp))
}
