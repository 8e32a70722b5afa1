package lookup

import (
	"errors"

	"ghprofile/internal/github"
	"ghprofile/internal/models"
)

// Kind is the classified result of a submitted lookup.
type Kind int

const (
	KindSuccess Kind = iota
	KindNotFound
	KindFailure
	KindEmptyInput // rejected locally, no request sent
)

// String returns the metrics/log label of the kind.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNotFound:
		return "not_found"
	case KindFailure:
		return "failure"
	case KindEmptyInput:
		return "empty_input"
	default:
		return "unknown"
	}
}

// Outcome is the result of one SubmitLookup call.
type Outcome struct {
	Kind    Kind
	Profile *models.Profile // set for KindSuccess only
	Err     error           // set for KindFailure only
	Stale   bool            // superseded by a later lookup and not applied
}

var errEmptyResponse = errors.New("empty response")

// Classify maps a transport result onto exactly one outcome kind.
func Classify(user *github.User, err error) Outcome {
	switch {
	case err == nil && user != nil:
		return Outcome{Kind: KindSuccess, Profile: ProfileFromUser(user)}
	case err == nil:
		return Outcome{Kind: KindFailure, Err: errEmptyResponse}
	case errors.Is(err, github.ErrUserNotFound):
		return Outcome{Kind: KindNotFound}
	default:
		return Outcome{Kind: KindFailure, Err: err}
	}
}

// ProfileFromUser builds a fresh Profile; nothing is shared with user.
func ProfileFromUser(user *github.User) *models.Profile {
	var name *string
	if user.Name != nil {
		n := *user.Name
		name = &n
	}
	return &models.Profile{
		DisplayName:     name,
		AvatarURI:       user.AvatarURL,
		PublicRepoCount: user.PublicRepos,
		FollowerCount:   user.Followers,
		FollowingCount:  user.Following,
	}
}
