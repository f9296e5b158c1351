package articles

import (
	"context"
	"fmt"
)

// MaxPages caps how many pages a single tool call may walk.
const MaxPages = 10

// PageFunc fetches the page that follows cursor ("" for the first page).
type PageFunc func(ctx context.Context, cursor string) (*Page, error)

// CollectPages fetches up to maxPages pages starting after cursor and
// concatenates their articles. It stops early when a page reports no next
// page or returns a missing or already seen cursor, in which case the result
// reports no next page. Otherwise the returned Page carries the cursor and
// hasNextPage of the last page fetched, so the walk can be resumed.
// maxPages < 1 is treated as 1.
func CollectPages(ctx context.Context, fetch PageFunc, cursor string, maxPages int) (*Page, error) {
	if maxPages < 1 {
		maxPages = 1
	}

	out := &Page{Articles: []Article{}}
	seen := map[string]struct{}{cursor: {}}
	for i := 0; i < maxPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		out.Articles = append(out.Articles, page.Articles...)
		out.EndCursor = page.EndCursor
		out.HasNextPage = page.HasNextPage

		if !page.HasNextPage {
			break
		}
		// A missing or repeated cursor cannot be resumed from.
		if _, dup := seen[page.EndCursor]; dup || page.EndCursor == "" {
			out.HasNextPage = false
			break
		}
		seen[page.EndCursor] = struct{}{}
		cursor = page.EndCursor
	}
	return out, nil
}
