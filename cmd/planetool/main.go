// planetool builds procedural terrain planes from spec files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/easing"
	"github.com/Faultbox/midgard-terrain/internal/engine/modifier"
	"github.com/Faultbox/midgard-terrain/internal/engine/noise"
	"github.com/Faultbox/midgard-terrain/internal/engine/plane"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/formats"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	args = args[1:]

	switch command {
	case "new":
		err = cmdNew(cfg, args)
	case "validate", "check":
		err = cmdValidate(args)
	case "build", "b":
		err = cmdBuild(cfg, args)
	case "info":
		err = cmdInfo(args)
	case "convert":
		err = cmdConvert(args)
	case "config":
		err = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planetool - procedural terrain plane builder

Usage:
  planetool [-config file] [-debug] [-workers n] [-format json|yaml] <command> [options]

Commands:
  new <file> [-name n] [-seed s]   Write a document with one default plane
  validate <file>                  Check every plane of a document
  build <file> [-o dir]            Build active planes into .pmsh meshes
  info <file.pmsh>                 Show mesh statistics
  convert <in> <out>               Re-encode a document (by extension)
  config [file]                    Write the effective config

Examples:
  planetool new island.yaml -seed 42
  planetool -workers 8 build island.yaml -o meshes
  planetool info meshes/island.pmsh`)
}

func cmdNew(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	name := fs.String("name", cfg.Defaults.Name, "Plane name")
	seed := fs.Int64("seed", 0, "Add a perlin noise layer with this seed (0 = flat)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: planetool new <file> [-name n] [-seed s]")
	}
	path := fs.Arg(0)
	if filepath.Ext(path) == "" {
		format, err := plane.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		path += "." + string(format)
	}

	spec := plane.Default()
	spec.Name = *name
	spec.Dimensions = plane.Dimensions{Width: cfg.Defaults.Width, Length: cfg.Defaults.Length}
	spec.Subdivisions = plane.Subdivisions{X: cfg.Defaults.SubdivisionsX, Z: cfg.Defaults.SubdivisionsZ}
	if *seed != 0 {
		spec.Modifiers = append(spec.Modifiers,
			modifier.NoiseOf(noise.Config{
				Algorithm: noise.Perlin,
				Seed:      *seed,
				Frequency: 0.1,
				Amplitude: 2,
				Octaves:   4,
			}),
			modifier.FlatEdgesOf(modifier.FlatEdgesSpec{
				Sides: []modifier.Side{modifier.West, modifier.East, modifier.North, modifier.South},
				Width: 1,
			}),
			modifier.SmoothEdgeOf(modifier.SmoothEdgeSpec{Radius: 3, Easing: easing.Of(easing.SmoothStep)}),
		)
	}

	doc := &plane.Document{Planes: []plane.Spec{spec}}
	if err := plane.SaveFile(path, doc); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func cmdValidate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: planetool validate <file>")
	}

	doc, err := plane.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	fmt.Printf("%s: %d plane(s) OK\n", args[0], len(doc.Planes))
	return nil
}

func cmdBuild(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outDir := fs.String("o", cfg.Output.Dir, "Output directory")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: planetool build <file> [-o dir]")
	}

	doc, err := plane.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	asm := plane.NewAssembler(plane.Options{
		Workers:           cfg.Build.Workers,
		ParallelThreshold: cfg.Build.ParallelThreshold,
	})
	reg := plane.NewRegistry(asm)

	outputs, err := reg.SpawnDocument(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	for _, out := range outputs {
		spec, _ := reg.Spec(out.ID)
		path := filepath.Join(*outDir, meshFileName(spec.Name, out.ID))
		if err := formats.WriteMeshFile(path, (*formats.MeshData)(out.Result.Mesh)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		logger.Info("mesh written",
			zap.String("plane", spec.Name),
			zap.String("path", path),
			zap.Float32("min_height", out.Result.Extrema.Min),
			zap.Float32("max_height", out.Result.Extrema.Max),
			zap.Int("edges", len(out.Result.Edges)))
		fmt.Printf("%-24s %s  %s\n", spec.Name, terrain.MeshStats(out.Result.Mesh), path)
	}

	if skipped := len(doc.Planes) - len(outputs); skipped > 0 {
		fmt.Printf("Skipped %d inactive plane(s)\n", skipped)
	}
	return nil
}

// meshFileName turns a plane name into a file name unique per ID.
func meshFileName(name string, id plane.ID) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)
	if slug == "" {
		slug = "plane"
	}
	return fmt.Sprintf("%s_%d.pmsh", slug, id)
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: planetool info <file.pmsh>")
	}

	data, err := formats.ParseMeshFile(args[0])
	if err != nil {
		return err
	}
	mesh := (*terrain.Mesh)(data)
	stats := terrain.MeshStats(mesh)

	fmt.Printf("Mesh:      %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", stats.Vertices)
	fmt.Printf("Triangles: %d\n", stats.Triangles)
	fmt.Printf("Bounds:    %v - %v\n", stats.Bounds.Min, stats.Bounds.Max)
	return nil
}

func cmdConvert(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: planetool convert <in> <out>")
	}

	doc, err := plane.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := plane.SaveFile(args[1], doc); err != nil {
		return err
	}

	fmt.Printf("Converted %s -> %s\n", args[0], args[1])
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return nil
	}

	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", args[0])
	return nil
}
