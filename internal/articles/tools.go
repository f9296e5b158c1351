package articles

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesprial/jianshu-mcp/internal/safety"
	"github.com/jamesprial/jianshu-mcp/internal/tools"
)

const (
	toolNameHot     = "articles_hot"
	toolNameList    = "articles_list"
	toolNameMine    = "articles_mine"
	toolNameGet     = "article_get"
	toolNameDraft   = "article_draft"
	toolNameUpdate  = "article_update"
	toolNamePublish = "article_publish"
	toolNameDelete  = "article_delete"
)

// DestructiveTools lists article tool names that require confirmation
// before execution.
var DestructiveTools = []string{toolNameDelete}

// ArticleTools returns the registrations for every article tool.
func ArticleTools(mgr ArticleManager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) []tools.Registration {
	return []tools.Registration{
		toolArticlesHot(mgr, audit),
		toolArticlesList(mgr, audit),
		toolArticlesMine(mgr, audit),
		toolArticleGet(mgr, audit),
		toolArticleDraft(mgr, audit),
		toolArticleUpdate(mgr, audit),
		toolArticlePublish(mgr, audit),
		toolArticleDelete(mgr, confirm, audit),
	}
}

// pageCount reads the "pages" argument clamped to [1, MaxPages].
func pageCount(req mcp.CallToolRequest) int {
	n := req.GetInt("pages", 1)
	if n < 1 {
		return 1
	}
	if n > MaxPages {
		return MaxPages
	}
	return n
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

func toolArticlesHot(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameHot,
		mcp.WithDescription("List the Jianshu hot-articles feed, ten articles per page. Pass the returned endCursor as cursor to continue."),
		mcp.WithString("cursor",
			mcp.Description("Cursor returned by a previous call; omit for the first page"),
		),
		mcp.WithNumber("pages",
			mcp.Description(fmt.Sprintf("Number of pages to fetch (default 1, max %d)", MaxPages)),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		cursor := req.GetString("cursor", "")
		pages := pageCount(req)
		params := map[string]any{"cursor": cursor, "pages": pages}

		page, err := CollectPages(ctx, mgr.Hot, cursor, pages)
		if err != nil {
			tools.LogAudit(audit, toolNameHot, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameHot, params, fmt.Sprintf("ok: %d articles", len(page.Articles)), start)
		return tools.JSONResult(page), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticlesList(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameList,
		mcp.WithDescription("List Jianshu articles newest first, optionally for a single author."),
		mcp.WithNumber("uid",
			mcp.Description("Only list articles written by this user id"),
		),
		mcp.WithString("cursor",
			mcp.Description("Cursor returned by a previous call; omit for the first page"),
		),
		mcp.WithNumber("pages",
			mcp.Description(fmt.Sprintf("Number of pages to fetch (default 1, max %d)", MaxPages)),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		uid := tools.OptionalInt(req, "uid")
		cursor := req.GetString("cursor", "")
		pages := pageCount(req)
		params := map[string]any{"cursor": cursor, "pages": pages}
		if uid != nil {
			params["uid"] = *uid
		}

		fetch := func(ctx context.Context, cursor string) (*Page, error) {
			return mgr.List(ctx, cursor, uid)
		}
		page, err := CollectPages(ctx, fetch, cursor, pages)
		if err != nil {
			tools.LogAudit(audit, toolNameList, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameList, params, fmt.Sprintf("ok: %d articles", len(page.Articles)), start)
		return tools.JSONResult(page), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticlesMine(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameMine,
		mcp.WithDescription("List the signed-in user's articles with their publication state."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		list, err := mgr.Mine(ctx)
		if err != nil {
			tools.LogAudit(audit, toolNameMine, nil, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		if len(list) == 0 {
			tools.LogAudit(audit, toolNameMine, nil, "ok: empty", start)
			return mcp.NewToolResultText("No articles found."), nil
		}

		tools.LogAudit(audit, toolNameMine, nil, fmt.Sprintf("ok: %d articles", len(list)), start)
		return tools.JSONResult(list), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticleGet(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameGet,
		mcp.WithDescription("Get a Jianshu article's title, content and state by id."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Article id"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		id, err := requireID(req)
		params := map[string]any{"id": id}
		if err != nil {
			tools.LogAudit(audit, toolNameGet, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		article, err := mgr.Get(ctx, id)
		if err != nil {
			tools.LogAudit(audit, toolNameGet, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameGet, params, "ok", start)
		return tools.JSONResult(article), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticleDraft(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameDraft,
		mcp.WithDescription("Create a new draft article with the given title. Use article_update to add content."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the draft"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		title := req.GetString("title", "")
		params := map[string]any{"title": title}
		if title == "" {
			tools.LogAudit(audit, toolNameDraft, params, "error: title is required", start)
			return tools.ErrorResult("title is required"), nil
		}

		article, err := mgr.Draft(ctx, title)
		if err != nil {
			tools.LogAudit(audit, toolNameDraft, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameDraft, params, "ok: id="+strconv.Itoa(article.ID), start)
		return tools.JSONResult(article), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticleUpdate(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameUpdate,
		mcp.WithDescription("Update an article's title, subtitle, content or cover. Only the supplied fields change."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Article id"),
		),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("sub_title", mcp.Description("New subtitle")),
		mcp.WithString("content", mcp.Description("New content")),
		mcp.WithString("cover", mcp.Description("New cover image URL")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		id, err := requireID(req)
		u := Update{
			Title:    tools.OptionalString(req, "title"),
			SubTitle: tools.OptionalString(req, "sub_title"),
			Content:  tools.OptionalString(req, "content"),
			Cover:    tools.OptionalString(req, "cover"),
		}
		params := map[string]any{"id": id}
		for key, v := range map[string]*string{"title": u.Title, "sub_title": u.SubTitle, "cover": u.Cover} {
			if v != nil {
				params[key] = *v
			}
		}
		if u.Content != nil {
			params["content_length"] = len(*u.Content)
		}

		if err == nil && u.Empty() {
			err = fmt.Errorf("at least one of title, sub_title, content or cover is required")
		}
		if err != nil {
			tools.LogAudit(audit, toolNameUpdate, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		article, err := mgr.Update(ctx, id, u)
		if err != nil {
			tools.LogAudit(audit, toolNameUpdate, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameUpdate, params, "ok", start)
		return tools.JSONResult(article), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticlePublish(mgr ArticleManager, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNamePublish,
		mcp.WithDescription("Publish a draft or updated article so it becomes publicly visible."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Article id"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		id, err := requireID(req)
		params := map[string]any{"id": id}
		if err != nil {
			tools.LogAudit(audit, toolNamePublish, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		article, err := mgr.Publish(ctx, id)
		if err != nil {
			tools.LogAudit(audit, toolNamePublish, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNamePublish, params, "ok: "+article.State.String(), start)
		return mcp.NewToolResultText(fmt.Sprintf("article %d published, state is now %s", article.ID, article.State)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolArticleDelete(mgr ArticleManager, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger) tools.Registration {
	tool := mcp.NewTool(toolNameDelete,
		mcp.WithDescription("Delete an article. Requires a confirmation token from a prior call."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Article id"),
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
			tools.LogAudit(audit, toolNameDelete, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		resource := "article " + strconv.Itoa(id)
		if !confirm.Approved(token, toolNameDelete, resource) {
			tools.LogAudit(audit, toolNameDelete, params, "confirmation requested", start)
			return tools.ConfirmPrompt(confirm, toolNameDelete, resource,
				"This will delete the article. It can no longer be read or edited."), nil
		}

		if err := mgr.Delete(ctx, id); err != nil {
			tools.LogAudit(audit, toolNameDelete, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolNameDelete, params, "ok", start)
		return mcp.NewToolResultText(fmt.Sprintf("article %d deleted", id)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
