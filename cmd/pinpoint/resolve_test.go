package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pinpoint"
	main "github.com/fwojciec/pinpoint/cmd/pinpoint"
	"github.com/fwojciec/pinpoint/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotHTML = `<html><head><title>Pricing</title></head><body>
<h1>Our pricing</h1>
<div><p>Plans start at $29 per month.</p></div>
<p>Contact sales for enterprise options.</p>
</body></html>`

func offlineDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Snapshots: &mock.SnapshotService{
			FindSnapshotByURLFn: func(_ context.Context, url string) (*pinpoint.Snapshot, error) {
				return &pinpoint.Snapshot{URL: url, Title: "Pricing", HTML: snapshotHTML}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Plans start at $29 per month.", nil
			},
		},
	}
}

func TestResolveCmd_Run_Offline(t *testing.T) {
	t.Parallel()

	t.Run("resolves reference against the stored snapshot", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := offlineDeps(stdout, stderr)

		cmd := &main.ResolveCmd{
			URL:        "https://example.com/pricing",
			References: []string{"Plans start at $29 per month."},
			Offline:    true,
			MinScore:   0.3,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "<p>")
		assert.Contains(t, output, "score=1.00")
		assert.Contains(t, output, "| Plans start at $29 per month.")
	})

	t.Run("reports no match without failing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := offlineDeps(stdout, stderr)

		cmd := &main.ResolveCmd{
			URL:        "https://example.com/pricing",
			References: []string{"quantum blockchain synergy"},
			Offline:    true,
			MinScore:   0.3,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "no match")
	})

	t.Run("prints trace counters with --trace", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := offlineDeps(stdout, stderr)

		cmd := &main.ResolveCmd{
			URL:        "https://example.com/pricing",
			References: []string{"Plans start at $29 per month."},
			Offline:    true,
			MinScore:   0.3,
			Trace:      true,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "visited=")
		assert.Contains(t, output, "candidates=")
	})

	t.Run("missing snapshot prints hint and fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := offlineDeps(stdout, stderr)
		deps.Snapshots = &mock.SnapshotService{
			FindSnapshotByURLFn: func(_ context.Context, url string) (*pinpoint.Snapshot, error) {
				return nil, pinpoint.Errorf(pinpoint.ENOTFOUND, "no snapshot of %q", url)
			},
		}

		cmd := &main.ResolveCmd{
			URL:        "https://example.com/missing",
			References: []string{"anything"},
			Offline:    true,
			MinScore:   0.3,
		}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, pinpoint.ENOTFOUND, pinpoint.ErrorCode(err))
		assert.Contains(t, stderr.String(), "without --offline")
	})

	t.Run("resolves multiple references independently", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := offlineDeps(stdout, stderr)

		cmd := &main.ResolveCmd{
			URL:        "https://example.com/pricing",
			References: []string{"Plans start at $29 per month.", "quantum blockchain synergy"},
			Offline:    true,
			MinScore:   0.3,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "score=1.00")
		assert.Contains(t, output, "no match")
	})
}
