package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/xen-tools/gen-policy/internal/policy"
)

// runTranscode streams the policy from in to out and logs the outcome.
func runTranscode(in io.Reader, out io.Writer) error {
	logger := slog.With("run", uuid.NewString())
	start := time.Now()

	n, err := policy.Transcode(out, in)
	if err != nil {
		logger.Debug("transcode failed", "bytes", n, "error", err)
		return err
	}

	logger.Info("policy embedded",
		"bytes", n,
		"size", humanize.Bytes(uint64(n)),
		"elapsed", time.Since(start),
	)
	return nil
}
