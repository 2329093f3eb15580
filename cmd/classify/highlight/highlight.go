// Package highlight implements the `classify highlight` subcommand: parse a
// source file, classify the requested ranges, and print the file with ANSI
// colors.
package highlight

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/treesitter"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	lang      string
	ranges    []string
	themePath string
	debug     bool

	fs afero.Fs
}

func NewHighlightCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "classify a source file and print it with colors",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&me.lang, "lang", "", "language override (go, python, javascript, bash)")
	cmd.Flags().StringArrayVar(&me.ranges, "range", nil, "restrict to byte range start:end (repeatable)")
	cmd.Flags().StringVar(&me.themePath, "theme", "", "yaml theme file mapping categories to colors")
	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args[0])
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, path string) error {
	level := zerolog.InfoLevel
	if me.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	lang, err := me.resolveLanguage(path)
	if err != nil {
		return err
	}

	content, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	ranges, err := parseRanges(me.ranges, len(content))
	if err != nil {
		return err
	}

	theme, err := loadTheme(me.fs, me.themePath)
	if err != nil {
		return err
	}

	spans, err := treesitter.Highlight(ctx, content, lang, ranges)
	if err != nil {
		return errors.Errorf("classifying %s: %w", path, err)
	}
	span.SortClassified(spans)

	logger.Debug().Int("spans", len(spans)).Str("lang", string(lang)).Msg("rendering")

	return render(os.Stdout, content, spans, theme)
}

func (me *Handler) resolveLanguage(path string) (treesitter.Language, error) {
	if me.lang != "" {
		return treesitter.Language(me.lang), nil
	}
	lang, ok := treesitter.DetectLanguage(path)
	if !ok {
		return "", errors.Errorf("cannot detect language of %s, pass --lang", path)
	}
	return lang, nil
}

// parseRanges turns start:end flags into a range set, defaulting to the
// whole file when none are given.
func parseRanges(args []string, size int) (*span.RangeSet, error) {
	if len(args) == 0 {
		return span.NewRangeSet(span.New(0, size)), nil
	}

	spans := make([]span.Span, 0, len(args))
	for _, arg := range args {
		start, end, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, errors.Errorf("invalid range %q, want start:end", arg)
		}
		s, err := strconv.Atoi(start)
		if err != nil {
			return nil, errors.Errorf("invalid range start in %q: %w", arg, err)
		}
		e, err := strconv.Atoi(end)
		if err != nil {
			return nil, errors.Errorf("invalid range end in %q: %w", arg, err)
		}
		if s < 0 || e < s {
			return nil, errors.Errorf("invalid range %q: end before start", arg)
		}
		spans = append(spans, span.FromBounds(s, e))
	}
	return span.NewRangeSet(spans...), nil
}
