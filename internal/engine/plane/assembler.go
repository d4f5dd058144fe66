package plane

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/engine/modifier"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	pmath "github.com/Faultbox/midgard-terrain/pkg/math"
)

// Stage is a step of the build pipeline.
type Stage int

// Build stages, in the order they are reached.
const (
	StageBuilt          Stage = iota // grid created, unmodified
	StagePointPassed                 // point pass done, extrema known
	StageEdgesCollected              // inner edges of every modifier aggregated
	StageAreaPassed                  // area pass done
	StageColored                     // vertex colors assigned
	StageFinished                    // buffers ready
)

var stageNames = [...]string{
	StageBuilt:          "built",
	StagePointPassed:    "point_passed",
	StageEdgesCollected: "edges_collected",
	StageAreaPassed:     "area_passed",
	StageColored:        "colored",
	StageFinished:       "finished",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Options controls how the point pass is scheduled.
type Options struct {
	// Workers is the number of goroutines used by the point pass.
	// Values below 2 run it on the calling goroutine.
	Workers int
	// ParallelThreshold is the vertex count below which the point pass
	// stays serial.
	ParallelThreshold int
	// OnStage, if set, is called as each stage is reached.
	OnStage func(Stage)
}

// DefaultOptions returns options using every available CPU.
func DefaultOptions() Options {
	return Options{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 4096,
	}
}

// Result is the output of one build.
type Result struct {
	Mesh      *terrain.Mesh
	Extrema   terrain.Extrema  // heights after the point pass
	Edges     []pmath.EdgeLine // aggregated inner edges, in modifier order
	Transform mgl32.Mat4       // world transform placing the mesh at the origin
	Heights   *terrain.Heightmap
}

// Assembler runs the build pipeline. It holds no per-build state and may be
// shared between goroutines, as long as no two builds target the same
// result.
type Assembler struct {
	opts Options
}

// NewAssembler creates an assembler.
func NewAssembler(opts Options) *Assembler {
	return &Assembler{opts: opts}
}

// Build validates spec and produces its mesh. The returned error is nil or
// holds *ConfigError values; once validation passes the build always runs to
// completion.
func (a *Assembler) Build(spec Spec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	geom := spec.Geometry()
	mods := make([]modifier.Modifier, 0, len(spec.Modifiers))
	for i, ms := range spec.Modifiers {
		m, err := ms.Resolve(geom)
		if err != nil {
			return nil, &ConfigError{Plane: spec.Name, Field: fmt.Sprintf("modifiers[%d]", i), Err: err}
		}
		mods = append(mods, m)
	}

	log := logger.Log.With(zap.String("plane", spec.Name))
	stage := Stage(-1)
	advance := func(next Stage, fields ...zap.Field) {
		if next != stage+1 {
			panic(fmt.Sprintf("plane: stage %s after %s", next, stage))
		}
		stage = next
		log.Debug("stage "+next.String(), fields...)
		if a.opts.OnStage != nil {
			a.opts.OnStage(next)
		}
	}

	mesh := terrain.BuildGrid(spec.Dimensions.Width, spec.Dimensions.Length, spec.Subdivisions.X, spec.Subdivisions.Z)
	advance(StageBuilt, zap.Int("vertices", mesh.VertexCount()), zap.Int("modifiers", len(mods)))

	extrema := a.pointPass(mesh.Positions, mods, spec.Origin)
	advance(StagePointPassed, zap.Float32("min", extrema.Min), zap.Float32("max", extrema.Max))

	edges := collectEdges(mods, geom.Bounds)
	advance(StageEdgesCollected, zap.Int("edges", len(edges)))

	changed := areaPass(mesh.Positions, mods, edges)
	advance(StageAreaPassed, zap.Int("overrides", changed))

	for i, p := range mesh.Positions {
		mesh.Colors[i] = spec.Colors.Apply(p[1], extrema.Min, extrema.Max)
	}
	advance(StageColored)

	heights, err := terrain.NewHeightmap(mesh, spec.Dimensions.Width, spec.Dimensions.Length, spec.Subdivisions.X, spec.Subdivisions.Z)
	if err != nil {
		panic(fmt.Sprintf("plane: %v", err))
	}

	result := &Result{
		Mesh:      mesh,
		Extrema:   extrema,
		Edges:     edges,
		Transform: mgl32.Translate3D(spec.Origin[0], spec.Origin[1], spec.Origin[2]),
		Heights:   heights,
	}
	advance(StageFinished, zap.Stringer("stats", terrain.MeshStats(mesh)))

	return result, nil
}

// pointPass threads every vertex height through the modifiers in order and
// returns the extrema of the results.
func (a *Assembler) pointPass(positions [][3]float32, mods []modifier.Modifier, origin [3]float32) terrain.Extrema {
	workers := a.opts.Workers
	if workers < 2 || len(positions) < a.opts.ParallelThreshold || len(positions) < workers {
		return pointRange(positions, mods, origin)
	}

	parts := make([]terrain.Extrema, workers)
	chunk := (len(positions) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(positions))
		if start >= end {
			parts[w] = terrain.NewExtrema()
			continue
		}
		wg.Add(1)
		go func(w int, part [][3]float32) {
			defer wg.Done()
			parts[w] = pointRange(part, mods, origin)
		}(w, positions[start:end])
	}
	wg.Wait()

	extrema := terrain.NewExtrema()
	for _, p := range parts {
		extrema = extrema.Merge(p)
	}
	return extrema
}

func pointRange(positions [][3]float32, mods []modifier.Modifier, origin [3]float32) terrain.Extrema {
	extrema := terrain.NewExtrema()
	for i := range positions {
		p := positions[i]
		for _, m := range mods {
			p[1] = modifier.ApplyPoint(m, p, origin)
		}
		positions[i][1] = p[1]
		extrema.Add(p[1])
	}
	return extrema
}

func collectEdges(mods []modifier.Modifier, bounds pmath.AABB) []pmath.EdgeLine {
	var edges []pmath.EdgeLine
	for _, m := range mods {
		edges = append(edges, modifier.InnerEdges(m, bounds)...)
	}
	return edges
}

// areaPass applies each modifier's overrides before the next one runs and
// returns the number of overrides written.
func areaPass(positions [][3]float32, mods []modifier.Modifier, edges []pmath.EdgeLine) int {
	n := 0
	for _, m := range mods {
		for i, h := range modifier.ApplyArea(m, positions, edges) {
			positions[i][1] = h
			n++
		}
	}
	return n
}
