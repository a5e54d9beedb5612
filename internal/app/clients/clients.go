// Package clients holds one typed API client per backend microservice. Each
// client owns the paths and wire shapes of its service and nothing else;
// screen-level logic lives in the services package.
package clients

import (
	"github.com/classconnect/classconnect-go/internal/config"
	"github.com/classconnect/classconnect-go/internal/pkg/httpclient"
)

// Set bundles the four service clients the app talks to.
type Set struct {
	Profile *ProfileClient
	Course  *CourseClient
	Forum   *ForumClient
	Chat    *ChatClient
}

// NewSet wires a client per configured service, all sharing the session
// provider. The course service additionally gets the identity headers its
// upload endpoints require.
func NewSet(cfg *config.Config, session httpclient.SessionProvider) *Set {
	timeout := cfg.HTTPTimeout()
	return &Set{
		Profile: NewProfileClient(httpclient.New(
			cfg.Services.ProfileURL,
			httpclient.WithSession(session),
			httpclient.WithTimeout(timeout),
		)),
		Course: NewCourseClient(httpclient.New(
			cfg.Services.CourseURL,
			httpclient.WithSession(session),
			httpclient.WithTimeout(timeout),
			httpclient.WithIdentityHeaders(),
		)),
		Forum: NewForumClient(httpclient.New(
			cfg.Services.ForumURL,
			httpclient.WithSession(session),
			httpclient.WithTimeout(timeout),
		)),
		Chat: NewChatClient(httpclient.New(
			cfg.Services.ChatURL,
			httpclient.WithSession(session),
			httpclient.WithTimeout(timeout),
		)),
	}
}
