// Package composition contains unit tests for the configuration primitives
// (config and Option) and for the internal placement index.
package composition

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/phasor/scalar"
	"github.com/katalvlaran/phasor/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, defaultSize, cfg.size)
	assert.Equal(t, defaultFramerate, cfg.framerate)
	assert.Equal(t, defaultDuration, cfg.duration)
	assert.Equal(t, defaultPacking, cfg.packing)
	assert.Equal(t, defaultHarmonics, cfg.harmonics)
	assert.Equal(t, DefaultPalette, cfg.palette)
	assert.Empty(t, cfg.exclusions)

	require.NotNil(t, cfg.rng)
	ref := rand.New(rand.NewSource(DefaultSeed))
	assert.Equal(t, ref.Int63(), cfg.rng.Int63(), "default RNG is seeded with DefaultSeed")
}

func TestConfigOptionsLastWins(t *testing.T) {
	cfg := newConfig(
		WithSize(100), WithSize(512),
		WithFramerate(10), WithDuration(2),
		WithPacking(0), WithHarmonics(3),
		WithSeed(1), WithSeed(42),
	)
	assert.Equal(t, 512.0, cfg.size)
	assert.Equal(t, 10.0, cfg.framerate)
	assert.Equal(t, 2.0, cfg.duration)
	assert.Equal(t, 0, cfg.packing)
	assert.Equal(t, 3, cfg.harmonics)

	ref := rand.New(rand.NewSource(42))
	assert.Equal(t, ref.Int63(), cfg.rng.Int63())
}

func TestWithRandIsUsedAsIs(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	cfg := newConfig(WithRand(r))
	assert.Same(t, r, cfg.rng)
}

func TestWithPalettePartial(t *testing.T) {
	cfg := newConfig(WithPalette(Palette{Accent: "red"}))
	assert.Equal(t, DefaultPalette.Background, cfg.palette.Background)
	assert.Equal(t, DefaultPalette.Foreground, cfg.palette.Foreground)
	assert.Equal(t, "red", cfg.palette.Accent)
}

func TestWithExclusionAccumulates(t *testing.T) {
	a := Box{Center: scalar.Zero, Width: scalar.One, Height: scalar.One}
	b := Box{Center: scalar.New(0.5, 0.5), Width: scalar.One, Height: scalar.One}
	cfg := newConfig(WithExclusion(a), WithExclusion(b))
	assert.Equal(t, []Box{a, b}, cfg.exclusions)
}

func TestOptionConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithSize(0) })
	assert.Panics(t, func() { WithSize(math.Inf(1)) })
	assert.Panics(t, func() { WithFramerate(-1) })
	assert.Panics(t, func() { WithFramerate(math.NaN()) })
	assert.Panics(t, func() { WithDuration(0) })
	assert.Panics(t, func() { WithPacking(-1) })
	assert.Panics(t, func() { WithHarmonics(0) })

	assert.NotPanics(t, func() { WithPacking(0) })
	assert.NotPanics(t, func() { WithPalette(Palette{}) })
}

// TestGridMatchesLinearScan checks the index against a brute-force scan.
func TestGridMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	randomCircle := func() Circle {
		return Circle{
			Center: scalar.New(2*rng.Float64()-1, 2*rng.Float64()-1),
			Size:   scalar.New(0.2*rng.Float64(), 0),
		}
	}

	g := newGrid(gridCell)
	var all []Circle
	for i := 0; i < 300; i++ {
		c := randomCircle()
		g.insert(c)
		all = append(all, c)
	}
	require.Equal(t, len(all), g.Len())

	for i := 0; i < 2000; i++ {
		probe := randomCircle()
		want := false
		for _, c := range all {
			if probe.Collides(c) {
				want = true
				break
			}
		}
		require.Equal(t, want, g.collides(probe), "probe %v", probe)
	}
}

// TestPackingNeverOverlapsEarlierCircles: each accepted group of four mirror
// images is free of every circle placed before it.
func TestPackingNeverOverlapsEarlierCircles(t *testing.T) {
	cfg := newConfig(WithSeed(5), WithFramerate(200), WithPacking(400))
	b, err := svg.NewBuilder(64, 64)
	require.NoError(t, err)

	attr, err := frequencies(cfg)
	require.NoError(t, err)
	points, err := Pendulum(attr, cfg.framerate, cfg.duration)
	require.NoError(t, err)

	placed := newGrid(gridCell)
	drawTrace(b, cfg, placed, points)
	traced := placed.Len()
	require.Equal(t, 4*len(points), traced)

	drawPacking(b, cfg, placed)
	packed := placed.circles[traced:]
	require.NotEmpty(t, packed)
	require.Zero(t, len(packed)%4)

	for start := 0; start < len(packed); start += 4 {
		earlier := placed.circles[:traced+start]
		for _, c := range packed[start : start+4] {
			for _, e := range earlier {
				require.False(t, c.Collides(e), "packed %v overlaps %v", c, e)
			}
		}
	}
}

func TestPackingRespectsExclusions(t *testing.T) {
	everywhere := Box{Center: scalar.Zero, Width: scalar.New(2, 0), Height: scalar.New(2, 0)}
	cfg := newConfig(WithSeed(5), WithPacking(300), WithExclusion(everywhere))
	b, err := svg.NewBuilder(64, 64)
	require.NoError(t, err)

	placed := newGrid(gridCell)
	drawPacking(b, cfg, placed)
	assert.Zero(t, placed.Len())
	assert.Zero(t, b.Len())
}
