package highlight

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/maryamariyan/classify/pkg/span"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Theme maps classification categories to terminal colors. Theme files are
// yaml: `keyword: magenta`, one line per category.
type Theme map[span.Category]*color.Color

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

func defaultTheme() Theme {
	return Theme{
		span.CategoryKeyword:     color.New(color.FgMagenta),
		span.CategoryIdentifier:  color.New(color.FgWhite),
		span.CategoryType:        color.New(color.FgCyan),
		span.CategoryVariable:    color.New(color.FgBlue),
		span.CategoryFunction:    color.New(color.FgBlue),
		span.CategoryString:      color.New(color.FgGreen),
		span.CategoryNumber:      color.New(color.FgYellow),
		span.CategoryComment:     color.New(color.FgHiBlack),
		span.CategoryOperator:    color.New(color.FgRed),
		span.CategoryPunctuation: color.New(color.FgWhite),
	}
}

// loadTheme reads a yaml theme file, falling back to the default theme when
// no path is given. Unknown categories in the file are accepted; unknown
// color names are not.
func loadTheme(fs afero.Fs, path string) (Theme, error) {
	theme := defaultTheme()
	if path == "" {
		return theme, nil
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading theme %s: %w", path, err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Errorf("parsing theme %s: %w", path, err)
	}

	for category, name := range entries {
		attr, ok := colorNames[name]
		if !ok {
			return nil, errors.Errorf("theme %s: unknown color %q", path, name)
		}
		theme[span.Category(category)] = color.New(attr)
	}
	return theme, nil
}

// render writes the source with each classified span colored by its
// category. Spans must be sorted; where spans overlap, the first one wins.
func render(w io.Writer, content []byte, spans []span.Classified, theme Theme) error {
	cursor := 0
	for _, c := range spans {
		if c.Span.Start < cursor {
			continue
		}
		if c.Span.Start > cursor {
			if _, err := w.Write(content[cursor:c.Span.Start]); err != nil {
				return errors.Errorf("writing plain text: %w", err)
			}
		}
		text := content[c.Span.Start:c.Span.End()]
		if painter, ok := theme[c.Category]; ok {
			if _, err := painter.Fprint(w, string(text)); err != nil {
				return errors.Errorf("writing colored span: %w", err)
			}
		} else {
			if _, err := w.Write(text); err != nil {
				return errors.Errorf("writing span: %w", err)
			}
		}
		cursor = c.Span.End()
	}
	if cursor < len(content) {
		if _, err := w.Write(content[cursor:]); err != nil {
			return errors.Errorf("writing trailing text: %w", err)
		}
	}
	return nil
}
