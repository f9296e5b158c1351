package users

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesprial/jianshu-mcp/internal/jianshu"
	"github.com/jamesprial/jianshu-mcp/internal/safety"
	"github.com/jamesprial/jianshu-mcp/internal/tools"
)

const (
	toolNameCheck       = "user_check_availability"
	toolNameCurrent     = "user_current"
	toolNameGet         = "user_get"
	toolNameUpdateInfo  = "user_update_info"
	toolNameFollowing   = "user_following"
	toolNameIsFollowing = "user_is_following"
	toolNameFollow      = "user_follow"
	toolNameUnfollow    = "user_unfollow"
)

// DestructiveTools lists user tool names that require confirmation before
// execution.
var DestructiveTools = []string{toolNameUnfollow}

// UserTools returns the registrations for every user tool. Sign-up, sign-in
// and logout are deliberately not exposed.
func UserTools(mgr UserManager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolCheckAvailability(mgr, audit),
		toolUserCurrent(mgr, audit),
		toolUserGet(mgr, audit),
		toolUserUpdateInfo(mgr, audit),
		toolUserFollowing(mgr, audit),
		toolUserIsFollowing(mgr, audit),
		toolUserFollow(mgr, audit),
		toolUserUnfollow(mgr, confirm, audit),
	}
}

// Availability is the result of user_check_availability for one value.
type Availability struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

func genderNames() []string {
	out := make([]string, len(jianshu.AllGender))
	for i, g := range jianshu.AllGender {
		out[i] = g.String()
	}
	return out
}

// requireID reads the mandatory integer "id" argument.
func requireID(req mcp.CallToolRequest) (int, error) {
	id := tools.OptionalInt(req, "id")
	if id == nil {
		return 0, fmt.Errorf("id is required")
	}
	if *id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", *id)
	}
	return *id, nil
}

// idTool builds a tool taking a single user id whose handler is run.
func idTool(name, description string, audit *safety.AuditLogger, run func(ctx context.Context, id int) (any, error)) tools.Registration {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("User id"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		id, err := requireID(req)
		params := map[string]any{"id": id}
		if err != nil {
			tools.LogAudit(audit, name, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		out, err := run(ctx, id)
		if err != nil {
			tools.LogAudit(audit, name, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, name, params, "ok", start)
		if s, ok := out.(string); ok {
			return mcp.NewToolResultText(s), nil
		}
		return tools.JSONResult(out), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolCheckAvailability(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameCheck,
		mcp.WithDescription("Check whether a username and/or email address is still available for registration."),
		mcp.WithString("username", mcp.Description("Username to check")),
		mcp.WithString("email", mcp.Description("Email address to check")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		username := req.GetString("username", "")
		email := req.GetString("email", "")
		params := map[string]any{"username": username, "email": email}

		if username == "" && email == "" {
			tools.LogAudit(audit, toolNameCheck, params, "error: username or email is required", start)
			return tools.ErrorResult("username or email is required"), nil
		}

		out := make(map[string]Availability, 2)
		if username != "" {
			ok, err := mgr.ValidUsername(ctx, username)
			if err != nil {
				tools.LogAudit(audit, toolNameCheck, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err.Error()), nil
			}
			out["username"] = Availability{Value: username, Available: ok}
		}
		if email != "" {
			ok, err := mgr.ValidEmail(ctx, email)
			if err != nil {
				tools.LogAudit(audit, toolNameCheck, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err.Error()), nil
			}
			out["email"] = Availability{Value: email, Available: ok}
		}

		tools.LogAudit(audit, toolNameCheck, params, "ok", start)
		return tools.JSONResult(out), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolUserCurrent(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameCurrent,
		mcp.WithDescription("Show the profile of the signed-in Jianshu user."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		profile, err := mgr.Current(ctx)
		if err != nil {
			tools.LogAudit(audit, toolNameCurrent, nil, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameCurrent, nil, "ok: id="+strconv.Itoa(profile.ID), start)
		return tools.JSONResult(profile), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolUserGet(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	return idTool(toolNameGet, "Show the public profile of a Jianshu user by id.", audit,
		func(ctx context.Context, id int) (any, error) {
			return mgr.Get(ctx, id)
		})
}

func toolUserUpdateInfo(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameUpdateInfo,
		mcp.WithDescription("Update the signed-in user's profile. Only the supplied fields change."),
		mcp.WithString("username", mcp.Description("New username")),
		mcp.WithString("avatar", mcp.Description("New avatar image URL")),
		mcp.WithString("email", mcp.Description("New email address")),
		mcp.WithString("gender",
			mcp.Description("New gender"),
			mcp.Enum(genderNames()...),
		),
		mcp.WithString("introduce", mcp.Description("New self-introduction")),
		mcp.WithString("password", mcp.Description("New password")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		u := ProfileUpdate{
			Username:  tools.OptionalString(req, "username"),
			Avatar:    tools.OptionalString(req, "avatar"),
			Email:     tools.OptionalString(req, "email"),
			Introduce: tools.OptionalString(req, "introduce"),
			Password:  tools.OptionalString(req, "password"),
		}
		params := map[string]any{}
		for key, v := range map[string]*string{
			"username":  u.Username,
			"avatar":    u.Avatar,
			"email":     u.Email,
			"introduce": u.Introduce,
			"password":  u.Password,
		} {
			if v != nil {
				params[key] = *v
			}
		}

		if g := tools.OptionalString(req, "gender"); g != nil {
			params["gender"] = *g
			gender := jianshu.Gender(*g)
			if !gender.IsValid() {
				msg := fmt.Sprintf("invalid gender %q: valid values are %s", *g, strings.Join(genderNames(), ", "))
				tools.LogAudit(audit, toolNameUpdateInfo, params, "error: "+msg, start)
				return tools.ErrorResult(msg), nil
			}
			u.Gender = &gender
		}

		if u.Empty() {
			msg := "at least one profile field is required"
			tools.LogAudit(audit, toolNameUpdateInfo, params, "error: "+msg, start)
			return tools.ErrorResult(msg), nil
		}

		if err := mgr.UpdateInfo(ctx, u); err != nil {
			tools.LogAudit(audit, toolNameUpdateInfo, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameUpdateInfo, params, "ok", start)
		return mcp.NewToolResultText("profile updated"), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolUserFollowing(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	return idTool(toolNameFollowing, "List the users that a Jianshu user follows.", audit,
		func(ctx context.Context, id int) (any, error) {
			list, err := mgr.Following(ctx, id)
			if err != nil {
				return nil, err
			}
			if len(list) == 0 {
				return fmt.Sprintf("user %d follows nobody", id), nil
			}
			return list, nil
		})
}

func toolUserIsFollowing(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	return idTool(toolNameIsFollowing, "Report whether the signed-in user follows the given user.", audit,
		func(ctx context.Context, id int) (any, error) {
			ok, err := mgr.IsFollowing(ctx, id)
			if err != nil {
				return nil, err
			}
			if ok {
				return fmt.Sprintf("you follow user %d", id), nil
			}
			return fmt.Sprintf("you do not follow user %d", id), nil
		})
}

func toolUserFollow(mgr UserManager, audit *safety.AuditLogger) tools.Registration {
	return idTool(toolNameFollow, "Follow a Jianshu user as the signed-in user.", audit,
		func(ctx context.Context, id int) (any, error) {
			if err := mgr.Follow(ctx, id); err != nil {
				return nil, err
			}
			return fmt.Sprintf("now following user %d", id), nil
		})
}

func toolUserUnfollow(mgr UserManager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameUnfollow,
		mcp.WithDescription("Stop following a Jianshu user. Requires a confirmation token from a prior call."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("User id"),
		),
		mcp.WithString("confirmation_token",
			mcp.Description("Confirmation token returned by a prior call"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		id, err := requireID(req)
		token := req.GetString("confirmation_token", "")
		params := map[string]any{"id": id, "confirmation_token": token}
		if err != nil {
			tools.LogAudit(audit, toolNameUnfollow, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		resource := "user " + strconv.Itoa(id)
		if !confirm.Approved(token, toolNameUnfollow, resource) {
			tools.LogAudit(audit, toolNameUnfollow, params, "confirmation requested", start)
			return tools.ConfirmPrompt(confirm, toolNameUnfollow, resource,
				"This will stop following the user."), nil
		}

		if err := mgr.Unfollow(ctx, id); err != nil {
			tools.LogAudit(audit, toolNameUnfollow, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameUnfollow, params, "ok", start)
		return mcp.NewToolResultText(fmt.Sprintf("no longer following user %d", id)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
