package ladisales

import (
	"context"
	"iter"
)

// Page is one chunk of a list traversal, in upstream order.
type Page struct {
	// Number is the upstream page number this chunk came from.
	Number int
	// Items are the decoded entities on this page.
	Items []Document
}

// ListRequest describes a paginated list traversal.
type ListRequest struct {
	// Op is the upstream operation, e.g. "product/list".
	Op string
	// StartPage is the first upstream page to request (1-based; zero means 1).
	StartPage int
	// PageSize is the per-request item count sent as "limit".
	PageSize int
	// MaxItems stops traversal once this many items have been yielded.
	// Zero means one page worth.
	MaxItems int
	// Extra fields are merged into every request body.
	Extra map[string]any
}

const defaultPageSize = 10

// ListPages lazily traverses a paginated list operation. It yields one Page
// per upstream request, in order, and stops when the upstream returns a
// short page, when MaxItems is satisfied, or at the client's page cap.
// The sequence is finite and non-restartable; breaking out of the range
// stops upstream traffic immediately.
func (c *Client) ListPages(ctx context.Context, req ListRequest) iter.Seq2[Page, error] {
	return func(yield func(Page, error) bool) {
		page := req.StartPage
		if page < 1 {
			page = 1
		}
		size := req.PageSize
		if size < 1 {
			size = defaultPageSize
		}
		want := req.MaxItems
		if want < 1 {
			want = size
		}

		yielded := 0
		for fetched := 0; fetched < c.maxPages; fetched++ {
			body := map[string]any{"page": page, "limit": size}
			for k, v := range req.Extra {
				body[k] = v
			}

			doc, err := c.post(ctx, c.baseURL, req.Op, body)
			if err != nil {
				yield(Page{}, err)
				return
			}

			items := extractItems(doc)
			if len(items) > want-yielded {
				items = items[:want-yielded]
			}
			if !yield(Page{Number: page, Items: items}, nil) {
				return
			}
			yielded += len(items)

			// A short page is the upstream's end-of-list signal.
			if len(items) < size || yielded >= want {
				return
			}
			page++
		}
		c.logger.Warn("pagination stopped at page cap", "op", req.Op, "pages", c.maxPages)
	}
}

// extractItems pulls the entity list out of an upstream list envelope. The
// API reports list payloads under "items"; some deployments use "data".
func extractItems(doc Document) []Document {
	for _, key := range []string{"items", "data"} {
		raw, ok := doc[key].([]any)
		if !ok {
			continue
		}
		items := make([]Document, 0, len(raw))
		for _, entry := range raw {
			if m, ok := entry.(Document); ok {
				items = append(items, m)
			}
		}
		return items
	}
	return nil
}
