package articles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jamesprial/jianshu-mcp/internal/graphql"
	"github.com/jamesprial/jianshu-mcp/internal/jianshu"
)

// ErrNotDeleted is returned by Delete when the server answers false.
var ErrNotDeleted = errors.New("articles: server did not delete the article")

// Compile-time interface check.
var _ ArticleManager = (*GraphQLArticleManager)(nil)

// GraphQLArticleManager implements ArticleManager over the generated
// bindings.
type GraphQLArticleManager struct {
	client graphql.Client
}

// NewGraphQLArticleManager returns a manager sending operations through
// client. It panics if client is nil.
func NewGraphQLArticleManager(client graphql.Client) *GraphQLArticleManager {
	if client == nil {
		panic("articles: nil graphql client")
	}
	return &GraphQLArticleManager{client: client}
}

// Hot fetches a page of HotArticles.
func (m *GraphQLArticleManager) Hot(ctx context.Context, cursor string) (*Page, error) {
	res, err := jianshu.HotArticlesDocument.Execute(ctx, m.client, jianshu.HotArticlesQueryVariables{
		Cursor: optional(cursor),
	})
	if err != nil {
		return nil, fmt.Errorf("articles hot: %w", err)
	}

	conn := res.HotArticles
	page := &Page{
		Articles:    make([]Article, 0, len(conn.Edges)),
		EndCursor:   deref(conn.PageInfo.EndCursor),
		HasNextPage: conn.PageInfo.HasNextPage,
	}
	for _, e := range conn.Edges {
		page.Articles = append(page.Articles, fromInfo(e.Node.ArticlesInfo))
	}
	return page, nil
}

// List fetches a page of Articles, optionally for one author.
func (m *GraphQLArticleManager) List(ctx context.Context, cursor string, uid *int) (*Page, error) {
	res, err := jianshu.ArticlesDocument.Execute(ctx, m.client, jianshu.ArticlesQueryVariables{
		Cursor: optional(cursor),
		UID:    uid,
	})
	if err != nil {
		return nil, fmt.Errorf("articles list: %w", err)
	}

	conn := res.Articles
	page := &Page{
		Articles:    make([]Article, 0, len(conn.Edges)),
		EndCursor:   deref(conn.PageInfo.EndCursor),
		HasNextPage: conn.PageInfo.HasNextPage,
	}
	for _, e := range conn.Edges {
		page.Articles = append(page.Articles, fromInfo(e.Node.ArticlesInfo))
	}
	return page, nil
}

// Mine fetches CurArticles.
func (m *GraphQLArticleManager) Mine(ctx context.Context) ([]Article, error) {
	res, err := jianshu.MyArticlesDocument.Execute(ctx, m.client, jianshu.MyArticlesQueryVariables{})
	if err != nil {
		return nil, fmt.Errorf("articles mine: %w", err)
	}

	out := make([]Article, 0, len(res.CurArticles.Edges))
	for _, e := range res.CurArticles.Edges {
		out = append(out, Article{ID: e.Node.ID, Title: e.Node.Title, State: e.Node.State})
	}
	return out, nil
}

// Get fetches one article by id.
func (m *GraphQLArticleManager) Get(ctx context.Context, id int) (*Article, error) {
	res, err := jianshu.ArticleDocument.Execute(ctx, m.client, jianshu.ArticleQueryVariables{ID: id})
	if err != nil {
		return nil, fmt.Errorf("articles get %d: %w", id, err)
	}
	a := res.Article
	return &Article{ID: a.ID, Title: a.Title, Content: a.Content, State: a.State}, nil
}

// Draft creates a draft article.
func (m *GraphQLArticleManager) Draft(ctx context.Context, title string) (*Article, error) {
	res, err := jianshu.DraftArticleDocument.Execute(ctx, m.client, jianshu.DraftArticleMutationVariables{Title: title})
	if err != nil {
		return nil, fmt.Errorf("articles draft: %w", err)
	}
	a := res.DraftArticle
	return &Article{ID: a.ID, Title: a.Title, State: a.State}, nil
}

// Update changes the fields of u that are set.
func (m *GraphQLArticleManager) Update(ctx context.Context, id int, u Update) (*Article, error) {
	res, err := jianshu.UpdateArticleDocument.Execute(ctx, m.client, jianshu.UpdateArticleMutationVariables{
		ID:       id,
		Title:    u.Title,
		SubTitle: u.SubTitle,
		Content:  u.Content,
		Cover:    u.Cover,
	})
	if err != nil {
		return nil, fmt.Errorf("articles update %d: %w", id, err)
	}
	a := res.UpdateArticle
	return &Article{ID: a.ID, Title: a.Title, Content: a.Content, State: a.State}, nil
}

// Publish sends NewArticle for id.
func (m *GraphQLArticleManager) Publish(ctx context.Context, id int) (*Article, error) {
	res, err := jianshu.NewArticleDocument.Execute(ctx, m.client, jianshu.NewArticleMutationVariables{ID: id})
	if err != nil {
		return nil, fmt.Errorf("articles publish %d: %w", id, err)
	}
	return &Article{ID: res.NewArticle.ID, State: res.NewArticle.State}, nil
}

// Delete sends DeleteArticle for id.
func (m *GraphQLArticleManager) Delete(ctx context.Context, id int) error {
	res, err := jianshu.DeleteArticleDocument.Execute(ctx, m.client, jianshu.DeleteArticleMutationVariables{ID: id})
	if err != nil {
		return fmt.Errorf("articles delete %d: %w", id, err)
	}
	if !res.DeleteArticle {
		return fmt.Errorf("articles delete %d: %w", id, ErrNotDeleted)
	}
	return nil
}

func fromInfo(info jianshu.ArticlesInfo) Article {
	return Article{
		ID:       info.ID,
		Title:    info.Title,
		SubTitle: info.SubTitle,
		Cover:    info.Cover,
		Content:  info.Content,
		Author:   &Author{ID: info.User.ID, Username: info.User.Username},
		Views:    info.ViewNum,
		Likes:    info.LikeNum,
		Comments: info.CmtNum,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
