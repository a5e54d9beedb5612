// Package services implements the screen-level controllers of the app. Each
// service is scoped to one open screen: it owns that screen's paginated
// listing, its enrichment cache and its locally patched list, and is
// discarded when the screen closes. The recurring shape is always the same:
// fetch, enrich, paginate, mutate, refresh.
package services

import (
	"github.com/classconnect/classconnect-go/internal/app/clients"
	"github.com/classconnect/classconnect-go/internal/config"
	"github.com/classconnect/classconnect-go/internal/pkg/auth"
)

// App wires the per-screen services over the shared client set and session.
// Screens are opened through the Open* constructors and closed by letting
// the returned service go out of scope.
type App struct {
	Clients  *clients.Set
	Sessions *auth.SessionManager
	PageSize int
}

// NewApp builds the application container.
func NewApp(cfg *config.Config) *App {
	sessions := auth.NewSessionManager()
	return &App{
		Clients:  clients.NewSet(cfg, sessions.Current),
		Sessions: sessions,
		PageSize: cfg.Listing.PageSize,
	}
}

// Auth returns the authentication service; it lives for the whole app run.
func (a *App) Auth() *AuthService {
	return NewAuthService(a.Clients.Profile, a.Sessions)
}

// OpenForums opens the forum listing screen for a course.
func (a *App) OpenForums(courseID string) *ForumService {
	return NewForumService(a.Clients.Forum, a.Clients.Profile, a.Sessions, courseID, a.PageSize)
}

// OpenQuestions opens the question listing screen for a forum.
func (a *App) OpenQuestions(forumID string) *QuestionService {
	return NewQuestionService(a.Clients.Forum, a.Clients.Profile, a.Sessions, forumID, a.PageSize)
}

// OpenModules opens the module management screen for a course.
func (a *App) OpenModules(courseID string) *ModuleService {
	return NewModuleService(a.Clients.Course, courseID)
}

// OpenSubmissions opens the grading screen for a task or exam.
func (a *App) OpenSubmissions(taskID string) *SubmissionService {
	return NewSubmissionService(a.Clients.Course, a.Clients.Profile, a.Clients.Chat, taskID, a.PageSize)
}

// OpenAuxiliars opens the auxiliary-teacher management screen for a course.
func (a *App) OpenAuxiliars(courseID string) *AuxiliarService {
	return NewAuxiliarService(a.Clients.Course, courseID)
}

// OpenProfile opens the profile screen.
func (a *App) OpenProfile() *ProfileService {
	return NewProfileService(a.Clients.Profile)
}
