package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/classconnect/classconnect-go/internal/app/models"
	"github.com/classconnect/classconnect-go/internal/app/models/dto"
	"github.com/classconnect/classconnect-go/internal/app/services"
	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/auth"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	app *services.App
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL                                - authenticate and print the token")
	fmt.Println("  courses [-page N]                                 - list visible courses")
	fmt.Println("  forums -course ID [-page N]                       - list a course's forums")
	fmt.Println("  forum-create -course ID -title T -description D   - create a forum")
	fmt.Println("  questions -forum ID [-page N]                     - list a forum's questions")
	fmt.Println("  vote -question ID -type up|down                   - toggle a vote on a question")
	fmt.Println("  modules -course ID                                - list a course's modules")
	fmt.Println("  grade -submission ID -score N                     - grade a submission")
	fmt.Println("  suggest-feedback -submission ID -task ID          - draft AI feedback for a submission")
	fmt.Println("  profile                                           - show the authenticated profile")
	fmt.Println("Commands other than login read the access token from CC_TOKEN.")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		cmd := flag.NewFlagSet("login", flag.ExitOnError)
		email := cmd.String("email", "", "The account email. The password will be prompted next.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *email == "" {
			cmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}
		return cli.login(ctx, *email, string(pwd))

	case "courses":
		cmd := flag.NewFlagSet("courses", flag.ExitOnError)
		page := cmd.Int("page", 1, "The 1-based page to show.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.withSession(func() error { return cli.listCourses(ctx, *page) })

	case "forums":
		cmd := flag.NewFlagSet("forums", flag.ExitOnError)
		course := cmd.String("course", "", "The course ID.")
		page := cmd.Int("page", 1, "The 1-based page to show.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *course == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error { return cli.listForums(ctx, *course, *page) })

	case "forum-create":
		cmd := flag.NewFlagSet("forum-create", flag.ExitOnError)
		course := cmd.String("course", "", "The course ID.")
		title := cmd.String("title", "", "The forum title.")
		description := cmd.String("description", "", "The forum description.")
		tags := cmd.String("tags", "", "Comma-separated tags.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *course == "" || *title == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error {
			return cli.createForum(ctx, *course, *title, *description, splitTags(*tags))
		})

	case "questions":
		cmd := flag.NewFlagSet("questions", flag.ExitOnError)
		forum := cmd.String("forum", "", "The forum ID.")
		page := cmd.Int("page", 1, "The 1-based page to show.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *forum == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error { return cli.listQuestions(ctx, *forum, *page) })

	case "vote":
		cmd := flag.NewFlagSet("vote", flag.ExitOnError)
		question := cmd.String("question", "", "The question ID.")
		forum := cmd.String("forum", "", "The forum ID the question belongs to.")
		voteType := cmd.String("type", "up", "The vote direction: up or down.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *question == "" || *forum == "" || (*voteType != "up" && *voteType != "down") {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error {
			return cli.vote(ctx, *forum, *question, models.VoteType(*voteType))
		})

	case "modules":
		cmd := flag.NewFlagSet("modules", flag.ExitOnError)
		course := cmd.String("course", "", "The course ID.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *course == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error { return cli.listModules(ctx, *course) })

	case "grade":
		cmd := flag.NewFlagSet("grade", flag.ExitOnError)
		submission := cmd.String("submission", "", "The submission ID.")
		task := cmd.String("task", "", "The task or exam ID.")
		score := cmd.String("score", "", "The score, 0 to 100.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *submission == "" || *task == "" || *score == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error { return cli.grade(ctx, *task, *submission, *score) })

	case "suggest-feedback":
		cmd := flag.NewFlagSet("suggest-feedback", flag.ExitOnError)
		submission := cmd.String("submission", "", "The submission ID.")
		task := cmd.String("task", "", "The task or exam ID.")
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
		if *submission == "" || *task == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.withSession(func() error { return cli.suggestFeedback(ctx, *task, *submission) })

	case "profile":
		return cli.withSession(func() error { return cli.showProfile(ctx) })

	default:
		cli.printUsage()
		return errHelp
	}
}

// withSession installs the CC_TOKEN session before running fn. Every
// command except login needs one.
func (cli *commandLine) withSession(fn func() error) error {
	token := os.Getenv("CC_TOKEN")
	session, err := auth.NewSession(token)
	if err != nil {
		return fmt.Errorf("no valid session, run login first: %w", err)
	}
	cli.app.Sessions.Set(session)
	defer cli.app.Sessions.Clear()

	if err := fn(); err != nil {
		// The alert a screen would show.
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		return err
	}
	return nil
}

func (cli *commandLine) login(ctx context.Context, email, password string) error {
	session, err := cli.app.Auth().Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", session.Email, session.UserType)
	fmt.Printf("export CC_TOKEN=%s\n", session.Token)
	return nil
}

func (cli *commandLine) listCourses(ctx context.Context, page int) error {
	screen := cli.app.OpenCourses()
	if err := screen.Load(ctx); err != nil {
		return err
	}
	if err := screen.Pager().RequestPage(ctx, page); err != nil {
		return err
	}
	for _, course := range screen.Courses() {
		fmt.Printf("%s  %-30s  %s to %s\n", course.ID, course.Title,
			course.StartDate.Format("2006-01-02"), course.EndDate.Format("2006-01-02"))
	}
	fmt.Printf("page %d/%d\n", screen.Pager().CurrentPage(), screen.Pager().TotalPages())
	return nil
}

func (cli *commandLine) listForums(ctx context.Context, courseID string, page int) error {
	screen := cli.app.OpenForums(courseID)
	if err := screen.Load(ctx); err != nil {
		return err
	}
	if err := screen.Pager().RequestPage(ctx, page); err != nil {
		return err
	}
	for _, forum := range screen.Forums(ctx) {
		author := forum.AuthorName
		if author == "" {
			author = forum.UserID
		}
		fmt.Printf("%s  %-30s  by %s  [%s]\n", forum.ID, forum.Title, author, strings.Join(forum.Tags, ","))
	}
	fmt.Printf("page %d/%d\n", screen.Pager().CurrentPage(), screen.Pager().TotalPages())
	return nil
}

func (cli *commandLine) createForum(ctx context.Context, courseID, title, description string, tags []string) error {
	screen := cli.app.OpenForums(courseID)
	created, result, err := screen.Create(ctx, dto.CreateForumRequest{
		Title:       title,
		Description: description,
		Tags:        tags,
	})
	if err != nil {
		for field, message := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, message)
		}
		return err
	}
	fmt.Printf("Created forum %s\n", created.ID)
	return nil
}

func (cli *commandLine) listQuestions(ctx context.Context, forumID string, page int) error {
	screen := cli.app.OpenQuestions(forumID)
	if err := screen.Load(ctx); err != nil {
		return err
	}
	if err := screen.Pager().RequestPage(ctx, page); err != nil {
		return err
	}
	for _, question := range screen.Questions(ctx) {
		fmt.Printf("%s  %-40s  +%d/-%d  %d answers\n",
			question.ID, question.Title, len(question.Votes.Up), len(question.Votes.Down), question.AnswerCount)
	}
	fmt.Printf("page %d/%d\n", screen.Pager().CurrentPage(), screen.Pager().TotalPages())
	return nil
}

func (cli *commandLine) vote(ctx context.Context, forumID, questionID string, direction models.VoteType) error {
	screen := cli.app.OpenQuestions(forumID)
	if err := screen.Load(ctx); err != nil {
		return err
	}
	if err := screen.ToggleVote(ctx, questionID, direction); err != nil {
		return err
	}
	fmt.Println("Vote registered")
	return nil
}

func (cli *commandLine) listModules(ctx context.Context, courseID string) error {
	screen := cli.app.OpenModules(courseID)
	if err := screen.Load(ctx); err != nil {
		return err
	}
	for _, module := range screen.Modules() {
		fmt.Printf("%2d  %s  %s (%d resources)\n", module.OrderIdx, module.ID, module.Title, len(module.Resources))
	}
	return nil
}

func (cli *commandLine) grade(ctx context.Context, taskID, submissionID, rawScore string) error {
	screen := cli.app.OpenSubmissions(taskID)
	if err := screen.Load(ctx); err != nil {
		return err
	}
	updated, err := screen.Grade(ctx, submissionID, rawScore)
	if err != nil {
		return err
	}
	fmt.Printf("Submission %s scored %d\n", updated.ID, *updated.Score)
	return nil
}

func (cli *commandLine) suggestFeedback(ctx context.Context, taskID, submissionID string) error {
	screen := cli.app.OpenSubmissions(taskID)
	if err := screen.Load(ctx); err != nil {
		return err
	}
	draft, err := screen.SuggestFeedback(ctx, submissionID)
	if err != nil {
		return err
	}
	fmt.Println(draft)
	return nil
}

func (cli *commandLine) showProfile(ctx context.Context) error {
	screen := cli.app.OpenProfile()
	if err := screen.Load(ctx); err != nil {
		return err
	}
	profile := screen.Profile()
	fmt.Printf("%s <%s> (%s)\n", profile.Name, profile.Email, profile.UserType)
	if profile.Bio != "" {
		fmt.Println(profile.Bio)
	}
	return nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
