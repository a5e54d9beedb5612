package models

// VoteType is the direction of a vote on a question or answer.
type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// Votes holds the user IDs that voted each way. A user ID appears in at
// most one of the two lists at a time.
type Votes struct {
	Up   []string `json:"up"`
	Down []string `json:"down"`
}

// Has reports whether userID has an active vote in the given direction.
func (v Votes) Has(userID string, direction VoteType) bool {
	list := v.Up
	if direction == VoteDown {
		list = v.Down
	}
	for _, id := range list {
		if id == userID {
			return true
		}
	}
	return false
}

// Add returns a copy of v with userID voting in the given direction. The
// opposite-direction vote, if any, is removed so the mutual-exclusion
// invariant holds.
func (v Votes) Add(userID string, direction VoteType) Votes {
	out := v.Remove(userID, VoteUp)
	out = out.Remove(userID, VoteDown)
	if direction == VoteUp {
		out.Up = append(out.Up, userID)
	} else {
		out.Down = append(out.Down, userID)
	}
	return out
}

// Remove returns a copy of v without userID's vote in the given direction.
func (v Votes) Remove(userID string, direction VoteType) Votes {
	out := Votes{
		Up:   make([]string, 0, len(v.Up)),
		Down: make([]string, 0, len(v.Down)),
	}
	for _, id := range v.Up {
		if direction == VoteUp && id == userID {
			continue
		}
		out.Up = append(out.Up, id)
	}
	for _, id := range v.Down {
		if direction == VoteDown && id == userID {
			continue
		}
		out.Down = append(out.Down, id)
	}
	return out
}

// Question belongs to a forum.
type Question struct {
	ID          string   `json:"id"`
	ForumID     string   `json:"forum_id"`
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Votes       Votes    `json:"votes"`
	Answers     []Answer `json:"answers"`
	AnswerCount int      `json:"answerCount"`
}

// Key implements liststore.Keyed.
func (q Question) Key() string { return q.ID }

// Answer belongs to a question.
type Answer struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	UserID     string `json:"user_id"`
	Content    string `json:"content"`
	Votes      Votes  `json:"votes"`
	IsAccepted bool   `json:"is_accepted"`
}

// Key implements liststore.Keyed.
func (a Answer) Key() string { return a.ID }
