package touch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elevate/internal/logger"
)

type adapterProbe struct {
	pressed []bool
	taps    int
	drags   int
	cancels int
}

func newProbeAdapter(t *testing.T, threshold float64, log *logger.Logger) (*Adapter, *adapterProbe) {
	t.Helper()
	probe := &adapterProbe{}
	a := NewAdapter(AdapterOptions{
		Threshold:        threshold,
		OnPressedChanged: func(v bool) { probe.pressed = append(probe.pressed, v) },
		OnTap:            func(Release) { probe.taps++ },
		OnSuppressed:     func(Release) { probe.drags++ },
		OnCancelled:      func() { probe.cancels++ },
		Logger:           log,
	})
	return a, probe
}

func TestAdapterRegistersAsImmediateNonExclusive(t *testing.T) {
	t.Parallel()

	a, _ := newProbeAdapter(t, 0, nil)
	reg := a.Registration()
	assert.False(t, reg.DelaysTouches)
	assert.False(t, reg.Exclusive)
	assert.Equal(t, DefaultThreshold, a.Threshold())
}

func TestAdapterTapLifecycle(t *testing.T) {
	t.Parallel()

	a, probe := newProbeAdapter(t, 20, nil)

	require.True(t, a.OnTouchDown(Pt(0, 0)))
	require.Equal(t, []bool{true}, probe.pressed)
	require.True(t, a.OnTouchMoved(Pt(5, 0)))
	a.OnTouchUp(Pt(15, 0))

	assert.Equal(t, []bool{true, false}, probe.pressed)
	assert.Equal(t, 1, probe.taps)
	assert.Equal(t, 0, probe.drags)
	assert.Equal(t, StateIdle, a.Session().State)
}

func TestAdapterCancellationSuppressesTap(t *testing.T) {
	t.Parallel()

	a, probe := newProbeAdapter(t, 20, nil)

	a.OnTouchDown(Pt(0, 0))
	a.OnTouchMoved(Pt(2, 0))
	a.OnTouchCancelled()

	assert.Equal(t, []bool{true, false}, probe.pressed)
	assert.Zero(t, probe.taps)
	assert.Zero(t, probe.drags)
	assert.Equal(t, 1, probe.cancels)
}

func TestAdapterSecondDownTerminatesPreviousSession(t *testing.T) {
	t.Parallel()

	a, probe := newProbeAdapter(t, 20, nil)

	a.OnTouchDown(Pt(0, 0))
	a.OnTouchDown(Pt(200, 200))
	require.Equal(t, Pt(200, 200), a.Session().Start)

	a.OnTouchUp(Pt(200, 205))

	assert.Equal(t, []bool{true, false, true, false}, probe.pressed)
	assert.Equal(t, 1, probe.taps, "only the second session may fire")
	assert.Equal(t, 1, probe.cancels)
}

func TestAdapterLogsOutOfOrderEvents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	a, probe := newProbeAdapter(t, 20, log)

	assert.True(t, a.OnTouchMoved(Pt(1, 1)), "movement keeps tracking even when idle")
	a.OnTouchUp(Pt(1, 1))
	a.OnTouchCancelled()

	assert.Empty(t, probe.pressed)
	assert.Zero(t, probe.taps)
	assert.Zero(t, probe.cancels, "a cancel with no session is not a cancellation")
	assert.Contains(t, buf.String(), "touch event out of order")
	assert.Contains(t, buf.String(), `"op":"end"`)
}
