package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/fivewords/pkg/report"
)

// Render encodes rep in the given format.
func Render(ctx context.Context, rep *report.Report, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatText:
		if err := rep.WriteText(&buf); err != nil {
			return nil, fmt.Errorf("render text: %w", err)
		}
	case FormatJSON:
		if err := rep.WriteJSON(&buf); err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
	case FormatDOT:
		buf.WriteString(report.ToDOT(rep))
	case FormatSVG:
		svg, err := report.RenderSVG(ctx, report.ToDOT(rep))
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		return svg, nil
	}
	return buf.Bytes(), nil
}
