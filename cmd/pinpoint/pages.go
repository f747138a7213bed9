package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pinpoint"
)

// Run executes the pages list command.
func (c *PagesListCmd) Run(deps *Dependencies) error {
	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, pinpoint.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinpoint.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots stored. Use 'pinpoint resolve' or 'pinpoint summarize' to create one.")
		return nil
	}

	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.FetchedAt.Format(time.RFC3339), s.URL, s.Title)
	}

	return nil
}

// Run executes the pages delete command.
func (c *PagesDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pinpoint.Errorf(pinpoint.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.URL); err != nil {
		if pinpoint.ErrorCode(err) == pinpoint.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no snapshot of %q. Use 'pinpoint pages list' to see stored snapshots.\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinpoint.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot of %q\n", c.URL)
	return nil
}
