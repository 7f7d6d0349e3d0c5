package xslog

import (
	"context"
	"log/slog"
)

// Filter wraps a handler and drops every record the keep func rejects.
func Filter(handler slog.Handler, keep func(record slog.Record) bool) slog.Handler {
	return filterHandler{handler: handler, keep: keep}
}

type filterHandler struct {
	handler slog.Handler
	keep    func(record slog.Record) bool
}

func (h filterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h filterHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.keep != nil && !h.keep(record) {
		return nil
	}
	return h.handler.Handle(ctx, record)
}

func (h filterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return filterHandler{handler: h.handler.WithAttrs(attrs), keep: h.keep}
}

func (h filterHandler) WithGroup(name string) slog.Handler {
	return filterHandler{handler: h.handler.WithGroup(name), keep: h.keep}
}
