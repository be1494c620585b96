package instrument

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const maskedValue = "***"

// maskHandler hides the values of configured keys, including keys nested in
// groups, maps and JSON encoded strings.
type maskHandler struct {
	slog.Handler
	keys map[string]struct{}
}

func (h *maskHandler) Handle(ctx context.Context, r slog.Record) error {
	if len(h.keys) == 0 {
		return h.Handler.Handle(ctx, r)
	}

	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(maskAttr(a, h.keys))
		return true
	})
	return h.Handler.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := lo.Map(attrs, func(a slog.Attr, _ int) slog.Attr { return maskAttr(a, h.keys) })
	return &maskHandler{Handler: h.Handler.WithAttrs(masked), keys: h.keys}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{Handler: h.Handler.WithGroup(name), keys: h.keys}
}

func buildMaskKeys(fields []string) map[string]struct{} {
	keys := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			keys[f] = struct{}{}
		}
	}
	return keys
}

func isMasked(key string, keys map[string]struct{}) bool {
	_, ok := keys[strings.ToLower(key)]
	return ok
}

func maskAttr(a slog.Attr, keys map[string]struct{}) slog.Attr {
	if isMasked(a.Key, keys) {
		return slog.String(a.Key, maskedValue)
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		group := lo.Map(a.Value.Group(), func(ga slog.Attr, _ int) slog.Attr { return maskAttr(ga, keys) })
		a.Value = slog.GroupValue(group...)
	case slog.KindString:
		if s, ok := maskJSON([]byte(a.Value.String()), keys); ok {
			a.Value = slog.StringValue(s)
		}
	case slog.KindAny:
		switch v := a.Value.Any().(type) {
		case map[string]any, []any:
			a.Value = slog.AnyValue(maskData(v, keys))
		case map[string]string:
			a.Value = slog.AnyValue(maskData(lo.MapValues(v, func(s, _ string) any { return s }), keys))
		case []byte:
			if s, ok := maskJSON(v, keys); ok {
				a.Value = slog.StringValue(s)
			}
		}
	}
	return a
}

// maskJSON masks a JSON object or array. ok is false for anything else.
func maskJSON(data []byte, keys map[string]struct{}) (string, bool) {
	if len(data) == 0 || (data[0] != '{' && data[0] != '[') {
		return "", false
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return "", false
	}
	out, err := json.Marshal(maskData(body, keys))
	if err != nil {
		return "", false
	}
	return string(out), true
}

func maskData(v any, keys map[string]struct{}) any {
	switch val := v.(type) {
	case map[string]any:
		return lo.MapEntries(val, func(k string, inner any) (string, any) {
			if isMasked(k, keys) {
				return k, maskedValue
			}
			return k, maskData(inner, keys)
		})
	case []any:
		return lo.Map(val, func(inner any, _ int) any { return maskData(inner, keys) })
	default:
		return v
	}
}
