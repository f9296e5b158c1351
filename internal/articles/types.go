// Package articles exposes Jianshu article feeds and editing through the
// generated GraphQL bindings.
package articles

import (
	"context"

	"github.com/jamesprial/jianshu-mcp/internal/jianshu"
)

// Author identifies the writer of an article in feed listings.
type Author struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Article is the union of the article shapes the Jianshu operations return.
// Fields an operation does not select are left zero and omitted from JSON.
type Article struct {
	ID       int                  `json:"id"`
	Title    string               `json:"title"`
	SubTitle string               `json:"subTitle,omitempty"`
	Cover    *string              `json:"cover,omitempty"`
	Content  string               `json:"content,omitempty"`
	State    jianshu.ArticleState `json:"state,omitempty"`
	Author   *Author              `json:"author,omitempty"`
	Views    int                  `json:"views,omitempty"`
	Likes    int                  `json:"likes,omitempty"`
	Comments int                  `json:"comments,omitempty"`
}

// Page is one page of a cursor-paginated feed.
type Page struct {
	Articles    []Article `json:"articles"`
	EndCursor   string    `json:"endCursor,omitempty"`
	HasNextPage bool      `json:"hasNextPage"`
}

// Update lists the article fields to change. Nil fields are left untouched.
type Update struct {
	Title    *string
	SubTitle *string
	Content  *string
	Cover    *string
}

// Empty reports whether u changes nothing.
func (u Update) Empty() bool {
	return u.Title == nil && u.SubTitle == nil && u.Content == nil && u.Cover == nil
}

// ArticleManager reads and edits Jianshu articles.
type ArticleManager interface {
	// Hot returns the page of the hot feed after cursor ("" for the first).
	Hot(ctx context.Context, cursor string) (*Page, error)
	// List returns the page of the article feed after cursor, restricted to
	// the author uid when uid is non-nil.
	List(ctx context.Context, cursor string, uid *int) (*Page, error)
	// Mine returns the signed-in user's articles, drafts included.
	Mine(ctx context.Context) ([]Article, error)
	Get(ctx context.Context, id int) (*Article, error)
	// Draft creates a new draft with the given title.
	Draft(ctx context.Context, title string) (*Article, error)
	Update(ctx context.Context, id int, u Update) (*Article, error)
	// Publish makes the article with the given id public.
	Publish(ctx context.Context, id int) (*Article, error)
	Delete(ctx context.Context, id int) error
}
