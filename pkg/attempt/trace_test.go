package attempt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/attempt/pkg/registry"
	"github.com/arthur-debert/attempt/pkg/testutil"
)

func TestRun_TracesPhases(t *testing.T) {
	reg := registry.New()
	notFound := registry.MustDefine(reg, "NotFound")[0]

	for _, mode := range []string{"blocking", "suspending"} {
		t.Run(mode, func(t *testing.T) {
			logger, buf := testutil.TraceLogger()
			ctl := New(rethrow, WithRegistry(reg), WithLogger(logger)).
				Catch(messageOf, notFound).
				Finally(returns(""))

			var err error
			if mode == "blocking" {
				_, err = ctl.Run(context.Background(), notFound.New("x"))
			} else {
				_, err = ctl.Async(context.Background(), notFound.New("x")).Await(context.Background())
			}
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, `"mode":"`+mode+`"`)
			assert.Contains(t, out, `"kind":"NotFound"`)

			try := strings.Index(out, `"phase":"try"`)
			catch := strings.Index(out, `"phase":"catch"`)
			finally := strings.Index(out, `"phase":"finally"`)
			assert.True(t, try >= 0 && try < catch && catch < finally, "phases logged in order")
			assert.NotContains(t, out, `"phase":"else"`)
		})
	}
}

func TestRun_SilentWithoutLoggingSetup(t *testing.T) {
	buf := &bytes.Buffer{}
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	reg := registry.New()
	notFound := registry.MustDefine(reg, "NotFound")[0]
	ctl := New(rethrow, WithRegistry(reg)).Catch(messageOf, notFound).Finally(returns(""))

	ctx := context.Background()
	_, err := ctl.Run(ctx, notFound.New("x"))
	require.NoError(t, err)
	_, err = ctl.Async(ctx, notFound.New("x")).Await(ctx)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}
