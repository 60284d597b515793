package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/MrToKa/traylay/pkg/errors"
)

// ToPNG converts SVG bytes to PNG using the external rsvg-convert tool.
// A scale of 2.0 produces a 2x resolution image for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
// For tray layouts, prefer the native [PNG] renderer which has no
// external dependency.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1.0
	}
	return rsvgConvert(svg, "png", "--zoom", fmt.Sprintf("%g", scale))
}

// ToPDF converts SVG bytes to PDF using the external rsvg-convert tool.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err,
			"rsvg-convert not found, install librsvg for %s output", format)
	}

	args := append([]string{"--format", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err,
			"rsvg-convert failed: %s", stderr.String())
	}
	return out.Bytes(), nil
}
