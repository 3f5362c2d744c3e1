// Command sdfgen converts a triangle mesh into a signed distance field and
// writes it in the binary format of spec.md §6. Argument parsing here is
// one of the external collaborators named in spec.md §1 — the algorithmic
// core lives entirely in pkg/sdf, pkg/grid, pkg/mesh, and pkg/geom; this
// file is thin wiring, in the style of the teacher's app.go, which builds
// its collaborators once and calls straight into the pipeline.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sdfgen/sdfgen/pkg/config"
	"github.com/sdfgen/sdfgen/pkg/geom"
	"github.com/sdfgen/sdfgen/pkg/ioobj"
	"github.com/sdfgen/sdfgen/pkg/iosdf"
	"github.com/sdfgen/sdfgen/pkg/iostl"
	"github.com/sdfgen/sdfgen/pkg/mesh"
	"github.com/sdfgen/sdfgen/pkg/sdf"
	"github.com/sdfgen/sdfgen/pkg/sdfgenlog"
)

// Exit codes per spec.md §6.
const (
	exitOK         = 0
	exitArgError   = 1
	exitWriteError = 255 // process exit codes are unsigned; this is the OS's view of -1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("sdfgen", flag.ContinueOnError)
	cpu := fs.Bool("cpu", false, "force the CPU backend")
	fix := fs.Bool("fix", false, "run mesh repair before gridding")
	threads := fs.Int("threads", 0, "worker count (0 = auto)")
	fs.IntVar(threads, "t", 0, "shorthand for --threads")
	padding := fs.Int("padding", config.DefaultPadding, "cells of empty space outside the mesh bbox")
	fs.IntVar(padding, "p", config.DefaultPadding, "shorthand for --padding")
	output := fs.String("o", "", "output path (default: input path with .sdf extension)")

	if err := fs.Parse(args); err != nil {
		return exitArgError
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "usage: sdfgen <input> {dx padding | nx [ny nz] [padding]} [flags]")
		return exitArgError
	}

	inputPath := rest[0]
	cfg := config.Default()
	cfg.CPU = *cpu
	cfg.Fix = *fix
	cfg.Threads = *threads
	cfg.Padding = *padding

	if !cfg.CPU && sdf.IsGPUAvailable() {
		sdfgenlog.Infof("GPU backend available but not requested; using CPU")
	}

	m, err := loadMesh(inputPath)
	if err != nil {
		sdfgenlog.Errorf("loading %s: %v", inputPath, err)
		return exitArgError
	}

	origin, dx, nx, ny, nz, err := resolveGrid(m, inputPath, rest[1:], cfg.Padding)
	if err != nil {
		sdfgenlog.Errorf("%v", err)
		return exitArgError
	}

	opts := sdf.Options{
		ExactBand: cfg.ExactBand,
		Threads:   cfg.Threads,
		Repair:    cfg.Fix,
		WeldTol:   cfg.WeldTol,
	}
	result, err := sdf.MakeLevelSet(m, origin, dx, nx, ny, nz, opts)
	if err != nil {
		sdfgenlog.Errorf("%v", err)
		return exitArgError
	}
	for _, w := range result.Warnings {
		sdfgenlog.Warnf("%s", w.Message)
	}

	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".sdf"
	}
	if err := writeResult(outPath, result); err != nil {
		sdfgenlog.Errorf("writing %s: %v", outPath, err)
		return exitWriteError
	}

	sdfgenlog.Infof("wrote %s (%dx%dx%d)", outPath, nx, ny, nz)
	return exitOK
}

// loadMesh dispatches to the loader matching the input's file extension.
func loadMesh(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return ioobj.Load(f)
	case ".stl":
		return iostl.Load(f)
	default:
		return nil, fmt.Errorf("unrecognized mesh extension %q", filepath.Ext(path))
	}
}

// resolveGrid implements spec.md §6's positional grid arguments: for OBJ
// input, {dx padding} selects cell-size mode; for STL input,
// {nx [ny nz] [padding]} selects grid-count mode.
//
// Preserved verbatim per spec.md §9's Open Question: when exactly two
// positional numbers follow an STL path, the second is treated as padding
// only if it is less than 20; otherwise it is read as ny with nz defaulting
// to ny. This backward-compatibility heuristic is kept explicit rather than
// silently reinterpreted, as the spec instructs.
func resolveGrid(m *mesh.Mesh, inputPath string, positional []string, defaultPadding int) (origin geom.Vec3, dx float64, nx, ny, nz int, err error) {
	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext == ".obj" {
		return resolveCellSizeMode(m, positional, defaultPadding)
	}
	return resolveGridCountMode(m, positional, defaultPadding)
}

func resolveCellSizeMode(m *mesh.Mesh, positional []string, defaultPadding int) (geom.Vec3, float64, int, int, int, error) {
	if len(positional) < 1 {
		return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("OBJ input requires a cell size: <dx> [padding]")
	}
	dx, err := strconv.ParseFloat(positional[0], 64)
	if err != nil {
		return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad dx %q: %w", positional[0], err)
	}
	padding := defaultPadding
	if len(positional) >= 2 {
		padding, err = strconv.Atoi(positional[1])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad padding %q: %w", positional[1], err)
		}
	}
	origin, nx, ny, nz := sdf.CellSizeMode(m, dx, padding)
	return origin, dx, nx, ny, nz, nil
}

func resolveGridCountMode(m *mesh.Mesh, positional []string, defaultPadding int) (geom.Vec3, float64, int, int, int, error) {
	if len(positional) < 1 {
		return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("STL input requires a grid size: <nx> [ny nz] [padding]")
	}
	nx, err := strconv.Atoi(positional[0])
	if err != nil {
		return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad nx %q: %w", positional[0], err)
	}

	ny, nz := nx, nx
	padding := defaultPadding
	rest := positional[1:]

	switch len(rest) {
	case 0:
		// nx only.
	case 1:
		// Ambiguous: a lone second number is padding if < 20, else a cubic
		// ny=nz override. This mirrors the original tool's heuristic.
		v, err := strconv.Atoi(rest[0])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad value %q: %w", rest[0], err)
		}
		if v < 20 {
			padding = v
		} else {
			ny, nz = v, v
		}
	case 2:
		ny, err = strconv.Atoi(rest[0])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad ny %q: %w", rest[0], err)
		}
		nz, err = strconv.Atoi(rest[1])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad nz %q: %w", rest[1], err)
		}
	default:
		ny, err = strconv.Atoi(rest[0])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad ny %q: %w", rest[0], err)
		}
		nz, err = strconv.Atoi(rest[1])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad nz %q: %w", rest[1], err)
		}
		padding, err = strconv.Atoi(rest[2])
		if err != nil {
			return geom.Vec3{}, 0, 0, 0, 0, fmt.Errorf("bad padding %q: %w", rest[2], err)
		}
	}

	origin, dx := sdf.GridCountMode(m, nx, ny, nz, padding)
	return origin, dx, nx, ny, nz, nil
}

func writeResult(path string, result *sdf.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	g := result.Grid
	hdr := iosdf.Header{
		Nx: int32(g.Nx), Ny: int32(g.Ny), Nz: int32(g.Nz),
		Ox: float32(g.Origin.X), Oy: float32(g.Origin.Y), Oz: float32(g.Origin.Z),
		Dx: float32(g.Dx),
	}
	return iosdf.Write(f, hdr, g.Phi)
}
