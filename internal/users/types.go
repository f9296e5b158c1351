// Package users exposes Jianshu accounts, profiles and follow relations
// through the generated GraphQL bindings.
package users

import (
	"context"

	"github.com/jamesprial/jianshu-mcp/internal/jianshu"
)

// Profile is the public profile of a Jianshu user.
type Profile = jianshu.UserInfo

// ProfileUpdate lists the profile fields to change. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Username  *string
	Avatar    *string
	Email     *string
	Gender    *jianshu.Gender
	Introduce *string
	Password  *string
}

// Empty reports whether u changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Avatar == nil && u.Email == nil &&
		u.Gender == nil && u.Introduce == nil && u.Password == nil
}

// UserManager manages Jianshu accounts and follow relations.
type UserManager interface {
	// ValidUsername reports whether username can be registered.
	ValidUsername(ctx context.Context, username string) (bool, error)
	// ValidEmail reports whether email can be registered.
	ValidEmail(ctx context.Context, email string) (bool, error)
	// SignUp registers an account and returns its id.
	SignUp(ctx context.Context, email, password, username string) (int, error)
	// SignIn starts a session and returns the user id.
	SignIn(ctx context.Context, username, password string, remember bool) (int, error)
	Logout(ctx context.Context) error

	// Current returns the signed-in user's profile.
	Current(ctx context.Context) (*Profile, error)
	Get(ctx context.Context, id int) (*Profile, error)
	UpdateInfo(ctx context.Context, u ProfileUpdate) error

	// Following returns the users that user id follows.
	Following(ctx context.Context, id int) ([]Profile, error)
	// IsFollowing reports whether the signed-in user follows id.
	IsFollowing(ctx context.Context, id int) (bool, error)
	Follow(ctx context.Context, id int) error
	Unfollow(ctx context.Context, id int) error
}
