package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jamesprial/jianshu-mcp/internal/graphql"
	"github.com/jamesprial/jianshu-mcp/internal/jianshu"
)

// ErrRejected is returned when a mutation answers false.
var ErrRejected = errors.New("users: server rejected the request")

// Compile-time interface check.
var _ UserManager = (*GraphQLUserManager)(nil)

// GraphQLUserManager implements UserManager over the generated bindings.
type GraphQLUserManager struct {
	client graphql.Client
}

// NewGraphQLUserManager returns a manager sending operations through
// client. It panics if client is nil.
func NewGraphQLUserManager(client graphql.Client) *GraphQLUserManager {
	if client == nil {
		panic("users: nil graphql client")
	}
	return &GraphQLUserManager{client: client}
}

// ValidUsername runs the ValidUsername query.
func (m *GraphQLUserManager) ValidUsername(ctx context.Context, username string) (bool, error) {
	res, err := jianshu.ValidUsernameDocument.Execute(ctx, m.client, jianshu.ValidUsernameQueryVariables{Username: username})
	if err != nil {
		return false, fmt.Errorf("users valid username: %w", err)
	}
	return res.ValidUsername, nil
}

// ValidEmail runs the ValidEmail query.
func (m *GraphQLUserManager) ValidEmail(ctx context.Context, email string) (bool, error) {
	res, err := jianshu.ValidEmailDocument.Execute(ctx, m.client, jianshu.ValidEmailQueryVariables{Email: email})
	if err != nil {
		return false, fmt.Errorf("users valid email: %w", err)
	}
	return res.ValidEmail, nil
}

// SignUp runs the SignUp mutation.
func (m *GraphQLUserManager) SignUp(ctx context.Context, email, password, username string) (int, error) {
	res, err := jianshu.SignUpDocument.Execute(ctx, m.client, jianshu.SignUpMutationVariables{
		Email:    email,
		Password: password,
		Username: username,
	})
	if err != nil {
		return 0, fmt.Errorf("users sign up: %w", err)
	}
	return res.SignUp.ID, nil
}

// SignIn runs the SignIn mutation.
func (m *GraphQLUserManager) SignIn(ctx context.Context, username, password string, remember bool) (int, error) {
	res, err := jianshu.SignInDocument.Execute(ctx, m.client, jianshu.SignInMutationVariables{
		Username:   username,
		Password:   password,
		Rememberme: remember,
	})
	if err != nil {
		return 0, fmt.Errorf("users sign in: %w", err)
	}
	return res.SignIn.ID, nil
}

// Logout runs the Logout mutation.
func (m *GraphQLUserManager) Logout(ctx context.Context) error {
	res, err := jianshu.LogoutDocument.Execute(ctx, m.client, jianshu.LogoutMutationVariables{})
	if err != nil {
		return fmt.Errorf("users logout: %w", err)
	}
	return accepted("users logout", res.Logout)
}

// Current runs the CurrentUser query.
func (m *GraphQLUserManager) Current(ctx context.Context) (*Profile, error) {
	res, err := jianshu.CurrentUserDocument.Execute(ctx, m.client, jianshu.CurrentUserQueryVariables{})
	if err != nil {
		return nil, fmt.Errorf("users current: %w", err)
	}
	return &res.CurrentUser.UserInfo, nil
}

// Get runs the User query.
func (m *GraphQLUserManager) Get(ctx context.Context, id int) (*Profile, error) {
	res, err := jianshu.UserDocument.Execute(ctx, m.client, jianshu.UserQueryVariables{ID: id})
	if err != nil {
		return nil, fmt.Errorf("users get %d: %w", id, err)
	}
	return &res.User.UserInfo, nil
}

// UpdateInfo runs the UpdateUserInfo mutation with the fields of u that are
// set.
func (m *GraphQLUserManager) UpdateInfo(ctx context.Context, u ProfileUpdate) error {
	if u.Gender != nil && !u.Gender.IsValid() {
		return fmt.Errorf("users update info: invalid gender %q", *u.Gender)
	}
	res, err := jianshu.UpdateUserInfoDocument.Execute(ctx, m.client, jianshu.UpdateUserInfoMutationVariables{
		Username:  u.Username,
		Avatar:    u.Avatar,
		Email:     u.Email,
		Gender:    u.Gender,
		Introduce: u.Introduce,
		Password:  u.Password,
	})
	if err != nil {
		return fmt.Errorf("users update info: %w", err)
	}
	return accepted("users update info", res.UpdateUserInfo)
}

// Following runs the FollowList query.
func (m *GraphQLUserManager) Following(ctx context.Context, id int) ([]Profile, error) {
	res, err := jianshu.FollowListDocument.Execute(ctx, m.client, jianshu.FollowListQueryVariables{ID: id})
	if err != nil {
		return nil, fmt.Errorf("users following %d: %w", id, err)
	}
	out := make([]Profile, 0, len(res.Followed))
	for _, f := range res.Followed {
		out = append(out, f.UserInfo)
	}
	return out, nil
}

// IsFollowing runs the IsFollow query.
func (m *GraphQLUserManager) IsFollowing(ctx context.Context, id int) (bool, error) {
	res, err := jianshu.IsFollowDocument.Execute(ctx, m.client, jianshu.IsFollowQueryVariables{ID: id})
	if err != nil {
		return false, fmt.Errorf("users is following %d: %w", id, err)
	}
	return res.IsFollow, nil
}

// Follow runs the Follow mutation.
func (m *GraphQLUserManager) Follow(ctx context.Context, id int) error {
	res, err := jianshu.FollowDocument.Execute(ctx, m.client, jianshu.FollowMutationVariables{ID: id})
	if err != nil {
		return fmt.Errorf("users follow %d: %w", id, err)
	}
	return accepted(fmt.Sprintf("users follow %d", id), res.Follow)
}

// Unfollow runs the UnFollow mutation.
func (m *GraphQLUserManager) Unfollow(ctx context.Context, id int) error {
	res, err := jianshu.UnFollowDocument.Execute(ctx, m.client, jianshu.UnFollowMutationVariables{ID: id})
	if err != nil {
		return fmt.Errorf("users unfollow %d: %w", id, err)
	}
	return accepted(fmt.Sprintf("users unfollow %d", id), res.UnFollow)
}

func accepted(op string, ok bool) error {
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrRejected)
	}
	return nil
}
