package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0})

	path := filepath.Join(dir, "src.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResizeCommand(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, 200, 100)
	dst := filepath.Join(dir, "name")

	out, err := execute(t, "resize", src, dst,
		"--mode", "fill", "--width", "50", "--height", "50",
		"--format", "jpeg", "--quality", "90", "--background", "FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, dst+".jpg", strings.TrimSpace(out))

	f, err := os.Open(dst + ".jpg")
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, [2]int{50, 50}, [2]int{cfg.Width, cfg.Height})
}

func TestResizeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, 20, 10)

	_, err := execute(t, "resize", src, filepath.Join(dir, "a"), "--mode", "stretch")
	assert.ErrorContains(t, err, "invalid resize mode")

	_, err = execute(t, "resize", src, filepath.Join(dir, "b"), "--mode", "within", "--width", "0", "--height", "5")
	assert.ErrorContains(t, err, "invalid dimensions")

	_, err = execute(t, "resize", filepath.Join(dir, "missing.png"), filepath.Join(dir, "c"), "--mode", "none")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "image-resizer "+Version)
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	for _, want := range []string{"jpeg", "gif", "png", "fill", "catmullrom"} {
		assert.Contains(t, out, want)
	}
}
