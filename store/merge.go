package store

import "github.com/CrestNiraj12/redcatch/domain"

// MergeResult is the outcome of folding a fetched page into existing items.
type MergeResult struct {
	Items   []domain.Post
	Added   int
	After   string
	HasMore bool
}

// Merge appends the page's posts whose IDs are not already present, keeping
// arrival order. A page that adds nothing ends pagination even when the server
// handed back a cursor, so duplicate pages cannot loop the infinite scroll.
// existing is never modified.
func Merge(existing []domain.Post, page domain.Page) MergeResult {
	seen := make(map[string]struct{}, len(existing)+len(page.Posts))
	for _, p := range existing {
		seen[p.ID] = struct{}{}
	}

	items := existing[:len(existing):len(existing)]
	added := 0
	for _, p := range page.Posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		items = append(items, p)
		added++
	}

	if added == 0 {
		return MergeResult{Items: existing}
	}
	return MergeResult{
		Items:   items,
		Added:   added,
		After:   page.After,
		HasMore: page.After != "",
	}
}
