package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/extrude"
)

func TestBuildHeart(t *testing.T) {
	cfg := defaultConfig()
	cfg.Shape = "heart"
	cfg.Depth = 0.5
	cfg.Bevel = true
	cfg.BevelThickness = 1
	cfg.BevelSize = 1

	m, err := build(cfg)
	require.NoError(t, err)
	assert.False(t, m.IsEmpty())

	b := m.Bounds()
	assert.InDelta(t, -1.5, b.Min[2], 1e-6)
	assert.InDelta(t, 1.5, b.Max[2], 1e-6)
}

func TestBuildText(t *testing.T) {
	for _, backend := range []string{"sfnt", "gotext"} {
		t.Run(backend, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Backend = backend
			cfg.Text = "Go"
			cfg.Tolerance = 0.01

			m, err := build(cfg)
			require.NoError(t, err)
			assert.False(t, m.IsEmpty())
			assert.Greater(t, m.Bounds().Max[0], float32(0.5))
		})
	}
}

func TestBuildTypefaceFile(t *testing.T) {
	path := writeFile(t, "font.json", `{
		"resolution": 100,
		"boundingBox": {"yMin": 0, "yMax": 100},
		"glyphs": {"?": {"o": "m 0 0 l 0 100 l 50 100 l 50 0", "ha": 60}}
	}`)
	cfg := defaultConfig()
	cfg.Font = path
	cfg.Text = "ab"

	m, err := build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Caps.TriangleCount())
}

func TestBuildFontErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Font = filepath.Join(t.TempDir(), "missing.ttf")
	_, err := build(cfg)
	assert.Error(t, err)

	cfg.Font = writeFile(t, "bad.json", "{}")
	_, err = build(cfg)
	assert.Error(t, err)
}

func TestWriteOBJ(t *testing.T) {
	shapes := extrude.NewPath().Rect(0, 0, 1, 1).ToShapes()
	m := extrude.Extrude(shapes, extrude.WithDepth(0.5))

	var buf bytes.Buffer
	require.NoError(t, writeOBJ(&buf, &m))

	counts := map[string]int{}
	var groups, faces []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		counts[fields[0]]++
		switch fields[0] {
		case "g":
			groups = append(groups, fields[1])
		case "f":
			faces = append(faces, sc.Text())
		}
	}
	require.NoError(t, sc.Err())

	assert.Equal(t, []string{"caps", "walls"}, groups)
	assert.Equal(t, 24, counts["v"])
	assert.Equal(t, 24, counts["vn"])
	assert.Equal(t, 12, counts["f"])

	// Wall faces index past the 8 cap vertices.
	assert.Equal(t, "f 9//9 10//10 11//11", faces[4])
}

func TestWriteOBJFile(t *testing.T) {
	m := extrude.Extrude(extrude.NewPath().Rect(0, 0, 1, 1).ToShapes())
	path := filepath.Join(t.TempDir(), "out.obj")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, writeOBJ(f, &m))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "# extrude " + extrude.Version + "\n# 24 vertices, 12 triangles\n"
	assert.True(t, strings.HasPrefix(string(data), want), "header: %q", data)
}
