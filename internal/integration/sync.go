package integration

import (
	"context"
	"fmt"

	"github.com/bjulian5/integrate/internal/checklist"
	"github.com/bjulian5/integrate/internal/gh"
	"github.com/bjulian5/integrate/internal/model"
	"github.com/bjulian5/integrate/internal/ui"
)

// Action describes what Sync did to the integration PR
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionUnchanged Action = "unchanged"
	ActionDryRun    Action = "dry-run"
)

// SyncOptions controls a Sync run
type SyncOptions struct {
	Base   string
	Head   string
	Fetch  bool           // fetch the remote before reading history
	DryRun bool           // compute the body but write nothing
	Merge  gh.MergeMethod // merge the integration PR afterwards; MergeNone skips
}

// SyncResult reports the outcome of a Sync run
type SyncResult struct {
	Action Action
	Number int    // integration PR number; 0 for a dry run without an open PR
	URL    string // integration PR URL
	Body   string // the body that was (or would be) published
	Forest model.Forest
	Merged bool
}

// Sync creates the integration PR from head into base, or refreshes the body
// of the open one while keeping its checkmarks, then optionally merges it.
// Every read completes before the first write.
func (c *Client) Sync(ctx context.Context, opts SyncOptions) (*SyncResult, error) {
	if opts.Base == "" || opts.Head == "" {
		return nil, fmt.Errorf("both base and head branches are required")
	}

	f, err := c.Preview(ctx, opts.Base, opts.Head, opts.Fetch)
	if err != nil {
		return nil, err
	}
	body := checklist.Render(f)

	existing, err := c.gh.FindOpenPR(ctx, opts.Base, opts.Head)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		ui.Debugf("found %s integration PR #%d", existing.State, existing.Number)
		body = c.reconciler.Reconcile(existing.Body, body)
	}

	result := &SyncResult{Body: body, Forest: f}

	if opts.DryRun {
		result.Action = ActionDryRun
		if existing != nil {
			result.Number = existing.Number
			result.URL = existing.URL
		}
		return result, nil
	}

	var pr *gh.PR
	switch {
	case existing == nil:
		pr, err = c.gh.CreatePR(ctx, gh.PRSpec{
			Title: c.cfg.Title(opts.Base, opts.Head),
			Body:  body,
			Base:  opts.Base,
			Head:  opts.Head,
		})
		if err != nil {
			return nil, err
		}
		result.Action = ActionCreated
	case existing.Body == body:
		pr = existing
		result.Action = ActionUnchanged
	default:
		pr, err = c.gh.UpdatePRBody(ctx, existing.Number, body)
		if err != nil {
			return nil, err
		}
		result.Action = ActionUpdated
	}
	result.Number = pr.Number
	result.URL = pr.URL

	if opts.Merge != gh.MergeNone {
		if pr.State == "draft" {
			return result, fmt.Errorf("integration PR #%d is a draft: mark it ready for review before merging", pr.Number)
		}
		ui.Debugf("merging PR #%d with %s", pr.Number, opts.Merge)
		if err := c.gh.MergePR(ctx, pr.Number, opts.Merge); err != nil {
			return result, err
		}
		result.Merged = true
	}

	return result, nil
}
