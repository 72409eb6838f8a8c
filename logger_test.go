package droid_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/frantjc/droid"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var (
		buf = new(bytes.Buffer)
		ctx = droid.WithLogger(context.Background(), droid.NewLogger(buf, 0))
		log = droid.LoggerFrom(ctx)
	)

	log.Info("quiet")
	require.Empty(t, buf.String())

	log.Error(nil, "loud")
	require.Contains(t, buf.String(), "loud")

	buf.Reset()
	verbose := droid.NewLogger(buf, 2)
	verbose.Info("chatty")
	require.Contains(t, buf.String(), "chatty")

	// No logger in the context discards.
	droid.LoggerFrom(context.Background()).Info("nowhere")
}
