package services

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/classconnect/classconnect-go/internal/config"
	"github.com/classconnect/classconnect-go/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// backends bundles one httptest server per microservice; unset handlers get
// a default 404 router.
type backends struct {
	profile *gin.Engine
	course  *gin.Engine
	forum   *gin.Engine
	chat    *gin.Engine
}

// newTestApp starts mock microservices and wires an App against them with
// an authenticated teacher session.
func newTestApp(t *testing.T, b backends) *App {
	t.Helper()

	start := func(router *gin.Engine) string {
		if router == nil {
			router = gin.New()
		}
		server := httptest.NewServer(router)
		t.Cleanup(server.Close)
		return server.URL
	}

	cfg := &config.Config{}
	cfg.Services.ProfileURL = start(b.profile)
	cfg.Services.CourseURL = start(b.course)
	cfg.Services.ForumURL = start(b.forum)
	cfg.Services.ChatURL = start(b.chat)
	cfg.HTTP.Timeout = "5s"
	cfg.Listing.PageSize = 10

	app := NewApp(cfg)
	app.Sessions.Set(&auth.Session{
		Token:    "test-token",
		UserID:   "user-1",
		Email:    "teacher@example.com",
		UserType: auth.UserTypeTeacher,
	})
	return app
}

// profileRouter serves GET /profile/:id with "name of <id>" style names.
// IDs listed in failing return a 500 so enrichment degradation can be
// exercised.
func profileRouter(failing ...string) *gin.Engine {
	failures := map[string]bool{}
	for _, id := range failing {
		failures[id] = true
	}

	router := gin.New()
	router.GET("/profile/:id", func(c *gin.Context) {
		id := c.Param("id")
		if failures[id] {
			c.JSON(500, gin.H{"message": "profile store down"})
			return
		}
		c.JSON(200, gin.H{
			"user_id":   id,
			"name":      "name of " + id,
			"email":     id + "@example.com",
			"user_type": "student",
		})
	})
	return router
}
