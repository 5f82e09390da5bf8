package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ErrFmtHandler is a slog handler that expands errors logged under ErrAttrKey.
// It adds the cockroachdb/errors stacktrace and, for pipeline error types,
// their structured fields.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler wraps a slog handler so that records carrying an error
// under ErrAttrKey also get StacktraceAttrKey, ErrorTypeKey and an
// ErrorDetailKey group with the error's own fields.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var logged error
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			logged, _ = attr.Value.Any().(error)
			return false
		}
		return true
	})
	if logged == nil {
		return eh.handler.Handle(ctx, r)
	}

	if stacktrace := extractStacktrace(logged); stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	if typ, details := errorDetails(logged); len(details) > 0 {
		if typ != "" {
			r.AddAttrs(slog.String(ErrorTypeKey, typ))
		}
		r.AddAttrs(slog.Attr{Key: ErrorDetailKey, Value: slog.GroupValue(details...)})
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// errorDetails renders the first error in the chain that implements
// zerolog.LogObjectMarshaler into slog attributes, sorted by key.
// The "type" field is returned separately.
func errorDetails(err error) (string, []slog.Attr) {
	var m zerolog.LogObjectMarshaler
	if !errors.As(err, &m) {
		return "", nil
	}

	var buf bytes.Buffer
	zerolog.New(&buf).Log().EmbedObject(m).Send()
	var fields map[string]any
	if json.Unmarshal(buf.Bytes(), &fields) != nil {
		return "", nil
	}

	typ, _ := fields["type"].(string)
	delete(fields, "type")

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	return typ, attrs
}
