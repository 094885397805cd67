package forest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bjulian5/integrate/internal/model"
)

// DefaultConcurrency bounds parallel author lookups when no limit is configured
const DefaultConcurrency = 4

// AuthorLookup resolves the login of a pull request's author
type AuthorLookup interface {
	LookupAuthor(ctx context.Context, number int) (string, error)
}

// Enrich fills in the author of every node in the forest. Lookups run in
// parallel, at most limit at a time. The first failure cancels the
// remaining lookups and is returned; authors are never left blank silently.
func Enrich(ctx context.Context, f model.Forest, lookup AuthorLookup, limit int) error {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var nodes []*model.PRNode
	var unresolved *model.PRNode
	f.Walk(func(node *model.PRNode, depth int) {
		if !node.Number.IsResolved() && unresolved == nil {
			unresolved = node
		}
		nodes = append(nodes, node)
	})
	if unresolved != nil {
		return fmt.Errorf("cannot look up author of unresolved merge %s", unresolved.SourceHash)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, node := range nodes {
		number := node.Number.Int()
		g.Go(func() error {
			author, err := lookup.LookupAuthor(ctx, number)
			if err != nil {
				return fmt.Errorf("failed to look up author of PR #%d: %w", number, err)
			}
			// each goroutine owns exactly one node
			node.Author = author
			return nil
		})
	}

	return g.Wait()
}
