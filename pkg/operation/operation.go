// Package operation sequences the anonymization pipeline: resolve the
// encoding, read and decode the input, substitute column names, encode and
// write the output.
package operation

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/schemascrub/pkg/anonymize"
	"github.com/walteh/schemascrub/pkg/charset"
	"github.com/walteh/schemascrub/pkg/config"
)

// 🚨 Failure categories. Every pipeline error wraps exactly one of these
// (or none, for the unexpected category); Category maps an error back to
// its human-readable name for the fatal log line.
var (
	ErrConfiguration = errors.Base("configuration error")
	ErrNotFound      = errors.Base("input file not found")
	ErrIO            = errors.Base("i/o error")
	ErrPattern       = errors.Base("invalid column name pattern")
)

// Category returns the taxonomy name for err.
func Category(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrPattern):
		return "pattern"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "unexpected"
	}
}

// 🎯 Operation is a unit of work the runner can execute
type Operation interface {
	// Name returns the operation name for logging
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 ScrubOperation anonymizes one input file into one output file. The
// output file is only created once substitution has succeeded, so a
// failure in any earlier stage leaves no output behind.
type ScrubOperation struct {
	cfg *config.Config

	// populated by Execute
	result  *anonymize.Result
	charset string
}

// 🏭 NewScrubOperation creates a scrub operation for the given config
func NewScrubOperation(cfg *config.Config) *ScrubOperation {
	return &ScrubOperation{cfg: cfg}
}

// Name implements Operation
func (op *ScrubOperation) Name() string {
	return "scrub"
}

// Result returns the substitution outcome. Only valid after a successful
// Execute.
func (op *ScrubOperation) Result() *anonymize.Result {
	return op.result
}

// Charset returns the resolved encoding name. Only valid after Execute has
// passed the resolution stage.
func (op *ScrubOperation) Charset() string {
	return op.charset
}

// 🏃 Execute runs the pipeline to completion. Exactly one file handle is
// open at a time; each stage's failure is wrapped with its category and
// enough context to identify the file or pattern involved.
func (op *ScrubOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	// Read the raw input bytes. Auto-detection needs them even before the
	// encoding is known, so the file is read once and decoded from memory.
	raw, err := os.ReadFile(op.cfg.InputFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Errorf("%w: %q: %w", ErrNotFound, op.cfg.InputFile, err)
		}
		return errors.Errorf("%w: reading %q: %w", ErrIO, op.cfg.InputFile, err)
	}

	// Resolve the encoding used for both decode and encode
	cs, err := charset.Resolve(ctx, op.cfg.Encoding, raw)
	if err != nil {
		return errors.Errorf("%w: %w", ErrConfiguration, err)
	}
	op.charset = cs.Name()

	text, err := cs.Decode(raw)
	if err != nil {
		return errors.Errorf("%w: %w", ErrIO, err)
	}

	// An invalid pattern fails here, before any matching and before the
	// output file exists.
	scrubber, err := anonymize.New(op.cfg.Pattern, op.cfg.Prefix)
	if err != nil {
		return errors.Errorf("%w: %w", ErrPattern, err)
	}

	op.result = scrubber.Anonymize(ctx, text)

	// Encoding failures (characters the target encoding cannot represent)
	// fall through to the unexpected category.
	encoded, err := cs.Encode(op.result.ModifiedText)
	if err != nil {
		return err
	}

	if err := os.WriteFile(op.cfg.OutputFile, encoded, 0o644); err != nil {
		return errors.Errorf("%w: writing %q: %w", ErrIO, op.cfg.OutputFile, err)
	}

	logger.Info().
		Str("input", op.cfg.InputFile).
		Str("output", op.cfg.OutputFile).
		Int("replacements", op.result.ReplacementCount).
		Msg("anonymized table definition written")

	return nil
}
