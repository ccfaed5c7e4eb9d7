package cliffgo

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/signature"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	mc.RecordTableBuild("Cl(3,0,0)", 8, 2*time.Millisecond, nil)
	mc.RecordTableBuild("Cl(3,0,1)", 16, 4*time.Millisecond, nil)
	mc.RecordTableBuild("Cl(13,0,0)", 8192, 0, errors.New("boom"))
	mc.RecordTableHit("Cl(3,0,0)")
	mc.RecordTableLoad("Cl(1,3,0)", time.Millisecond, nil)

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.BuildCount)
	assert.Equal(t, int64(1), stats.BuildErrors)
	assert.Equal(t, int64(24), stats.BuildBlades)
	assert.Equal(t, (2 * time.Millisecond).Nanoseconds(), stats.BuildAvgNanos)
	assert.Equal(t, int64(1), stats.HitCount)
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Equal(t, time.Millisecond.Nanoseconds(), stats.LoadAvgNanos)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	assert.Equal(t, BasicMetricsStats{}, (&BasicMetricsCollector{}).GetStats())
}

func TestMetricsObserver(t *testing.T) {
	mc := &BasicMetricsCollector{}
	reg := cayley.NewRegistry(cayley.WithObserver(MetricsObserver(mc)))

	// The observer sees registry events regardless of algebra options.
	MustNew[float64](signature.PGA2, WithRegistry(reg))
	MustNew[float32](signature.PGA2, WithRegistry(reg))

	src, err := cayley.Build(t.Context(), signature.STA)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, cayley.WriteSnapshot(t.Context(), &buf, src))
	_, err = reg.Load(t.Context(), &buf)
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.BuildCount)
	assert.Equal(t, int64(8), stats.BuildBlades)
	assert.Equal(t, int64(1), stats.HitCount)
	assert.Equal(t, int64(1), stats.LoadCount)
}

func TestMetricsObserver_Nil(t *testing.T) {
	obs := MetricsObserver(nil)
	assert.NotPanics(t, func() {
		obs.TableBuilt("Cl(1,0,0)", 2, 0, nil)
		obs.TableHit("Cl(1,0,0)")
		obs.TableLoaded("Cl(1,0,0)", 0, nil)
	})
}
