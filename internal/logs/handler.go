package logs

import (
	"context"
	"log/slog"
)

type phaseKey struct{}

// WithPhase marks ctx as belonging to a pipeline phase ("read", "lex",
// "parse", "print"). Records logged with that context carry it.
func WithPhase(ctx context.Context, phase string) context.Context {
	return context.WithValue(ctx, phaseKey{}, phase)
}

// Handler gates records on the logger's level and adds the phase found in
// the context.
type Handler struct {
	slog.Handler
	level slog.Leveler
}

func (h *Handler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.level.Level() && h.Handler.Enabled(ctx, l)
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(phaseKey{}).(string); ok {
		record.Add("phase", v)
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), level: h.level}
}
