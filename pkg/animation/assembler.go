package animation

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
)

// Assembler composes grid, series and hover-script fragments with the
// static stylesheet and forwards the result to a Sink.
// It holds no mutable state and is safe for concurrent use.
type Assembler struct {
	logger *slog.Logger
	config *Config
	assets *Assets
	sink   Sink
}

// NewAssembler creates an Assembler. A nil logger falls back to
// slog.Default and a nil config to DefaultConfig. Assets are required; the
// sink may be nil when only Assemble is used.
func NewAssembler(logger *slog.Logger, config *Config, assets *Assets, sink Sink) (*Assembler, error) {
	if assets == nil {
		return nil, ErrNoAssets
	}
	if logger == nil {
		logger = slog.Default()
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if !strings.Contains(assets.Script, "function "+config.HandlerName+"(") {
		logger.Warn("Script asset does not define the hover handler", "handler", config.HandlerName)
	}
	return &Assembler{
		logger: logger,
		config: config,
		assets: assets,
		sink:   sink,
	}, nil
}

// Config returns a copy of the assembler's configuration.
func (a *Assembler) Config() Config {
	return *a.config
}

// Assemble builds the complete fragment for a figure: stylesheet, grid,
// series list, caption and hover script, in that order.
func (a *Assembler) Assemble(fileID string, fig Figure) (template.HTML, error) {
	if fileID == "" {
		return "", ErrEmptyFileID
	}
	bindings, err := Bindings(fig.Labels, fig.Instructions)
	if err != nil {
		return "", err
	}

	refs := refSet{}
	var b strings.Builder
	b.WriteString(a.assets.styleBlock())
	b.WriteByte('\n')
	a.writeGrid(&b, fileID, fig.Grid, refs)
	b.WriteByte('\n')
	a.writeSeriesList(&b, fileID, fig.Series, refs)
	b.WriteByte('\n')
	writeCaption(&b, fileID)
	b.WriteByte('\n')

	if err = a.checkRefs(fileID, refs, bindings); err != nil {
		return "", err
	}

	a.writeHoverScript(&b, fileID, bindings)
	return template.HTML(b.String()), nil
}

// checkRefs reports element refs that collide and bindings that target no
// rendered cell. Both are warnings unless StrictRefs is set.
func (a *Assembler) checkRefs(fileID string, refs refSet, bindings []HoverBinding) error {
	if dups := refs.duplicates(); len(dups) > 0 {
		if a.config.StrictRefs {
			return fmt.Errorf("%w: %s", ErrDuplicateRef, strings.Join(dups, ", "))
		}
		a.logger.Warn("Element refs collide, hover bindings are ambiguous", "file_id", fileID, "refs", dups)
	}
	for _, binding := range bindings {
		ref := ElementRef(fileID, "", binding.Label)
		if refs.has(ref) {
			continue
		}
		if a.config.StrictRefs {
			return fmt.Errorf("%w: %s", ErrUnknownRef, ref)
		}
		a.logger.Warn("Hover binding targets no rendered cell", "file_id", fileID, "ref", ref)
	}
	return nil
}

// Render assembles a figure from its parts and hands it to the sink.
func (a *Assembler) Render(ctx context.Context, fileID string, grid Grid, series []LabeledSeries, labels, instructions []string) error {
	return a.RenderFigure(ctx, fileID, Figure{
		Grid:         grid,
		Series:       series,
		Labels:       labels,
		Instructions: instructions,
	})
}

// RenderFigure assembles fig and hands it to the sink.
func (a *Assembler) RenderFigure(ctx context.Context, fileID string, fig Figure) error {
	if a.sink == nil {
		return ErrNoSink
	}
	fragment, err := a.Assemble(fileID, fig)
	if err != nil {
		return err
	}
	if err = a.sink.Display(ctx, fileID, fragment); err != nil {
		return fmt.Errorf("failed to display figure %q: %w", fileID, err)
	}
	a.logger.Debug("Figure displayed", "file_id", fileID, "bytes", len(fragment))
	return nil
}
