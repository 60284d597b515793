package pipeline

import (
	"github.com/MrToKa/traylay/pkg/errors"
	"github.com/MrToKa/traylay/pkg/layout"
	"github.com/MrToKa/traylay/pkg/render"
)

// Render generates output artifacts for a plan in the requested formats.
func Render(p *layout.Plan, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))

	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = render.SVG(p)
		case FormatPNG:
			data, err = render.PNG(p)
		case FormatPDF:
			data, err = render.PDF(p)
		case FormatJSON:
			data, err = marshalPlan(p)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format: %q", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
