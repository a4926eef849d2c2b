// Command extrude turns text or a built-in shape into a 3D mesh and
// writes it as a Wavefront OBJ file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/extrude"
	"github.com/gogpu/extrude/text"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Verbose {
		extrude.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mesh, err := build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := writeOBJ(f, &mesh); err != nil {
		f.Close()
		log.Fatalf("Failed to write: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}

	layout := mesh.Layout()
	log.Printf("Mesh saved to %s (%d vertices, %d triangles, %d-bit indices)\n",
		cfg.Out, mesh.VertexCount(), mesh.TriangleCount(), indexBits(layout))
}

// build produces the mesh described by cfg.
func build(cfg config) (extrude.Mesh, error) {
	if cfg.Shape == "heart" {
		p := extrude.NewPath().SetTolerance(cfg.Tolerance).Heart(0, 0)
		p.Circle(0, 2.5, 2).Reverse()

		opts := []extrude.Option{
			extrude.WithDepth(cfg.Depth),
			extrude.WithTriangulator(cfg.triangulator()),
		}
		if cfg.Bevel {
			opts = append(opts, extrude.WithBevel(cfg.BevelThickness, cfg.BevelSize))
		}
		return extrude.Extrude(p.ToShapes(), opts...), nil
	}

	src, err := loadSource(cfg)
	if err != nil {
		return extrude.Mesh{}, err
	}
	gen := text.NewGenerator(src)
	gen.Update(cfg.settings())
	gen.SetTriangulator(cfg.triangulator())
	gen.SetText(cfg.Text)
	return gen.Mesh()
}

func loadSource(cfg config) (text.GlyphSource, error) {
	if filepath.Ext(cfg.Font) == ".json" {
		f, err := os.Open(cfg.Font)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		tf, err := text.LoadTypeface(f)
		if err != nil {
			return nil, err
		}
		return tf, nil
	}

	data := goregular.TTF
	if cfg.Font != "" {
		var err error
		if data, err = os.ReadFile(cfg.Font); err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	if cfg.Backend == "gotext" {
		src, err := text.NewGoTextSource(data)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	src, err := text.NewSFNTSource(data)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func indexBits(l extrude.MeshLayout) int {
	if l.IndexFormat == gputypes.IndexFormatUint16 {
		return 16
	}
	return 32
}
