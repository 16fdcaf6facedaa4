package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiFaint = "\033[2m"

	timeColor    = "\033[38;2;148;163;184m"
	metaKeyColor = "\033[38;2;94;234;212m"
	metaValColor = "\033[38;2;226;232;240m"
	textColor    = "\033[38;2;226;232;240m"
)

//nolint:gochecknoglobals // palette is a static lookup shared across encoder instances.
var levelPalette = map[zapcore.Level]string{
	zapcore.DebugLevel: "\033[38;2;129;140;248m",
	zapcore.InfoLevel:  "\033[38;2;16;185;129m",
	zapcore.WarnLevel:  "\033[38;2;245;158;11m",
	zapcore.ErrorLevel: "\033[38;2;248;113;113m",
	zapcore.FatalLevel: "\033[38;2;217;70;239m",
}

// prettyEncoder wraps zap's JSON encoder to produce colorized, indented output
// suited for terminals.
type prettyEncoder struct {
	zapcore.Encoder
}

// Clone ensures derived loggers keep the pretty encoder wrapper.
func (e *prettyEncoder) Clone() zapcore.Encoder {
	return &prettyEncoder{Encoder: e.Encoder.Clone()}
}

// newPrettyLogger creates a zap logger backed by the pretty encoder.
func newPrettyLogger(cfg *zap.Config) *zap.Logger {
	enc := &prettyEncoder{Encoder: zapcore.NewJSONEncoder(cfg.EncoderConfig)}
	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), cfg.Level)
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(os.Stderr)))
}

// EncodeEntry formats a log entry with a colorized header line followed by
// the remaining fields as indented key/value lines in insertion order.
func (e *prettyEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	jsonBuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}

	raw := append([]byte(nil), jsonBuf.Bytes()...)
	jsonBuf.Reset()

	payload, decodeErr := decodeOrdered(bytes.TrimSpace(raw))
	if decodeErr != nil {
		// Fall back to the raw JSON line when the payload cannot be decoded.
		_, _ = jsonBuf.Write(raw)
		return jsonBuf, nil
	}

	jsonBuf.AppendString(buildHeader(entry, payload))
	appendMetadata(jsonBuf, payload)
	return jsonBuf, nil
}

// decodeOrdered unmarshals a JSON object preserving key order.
func decodeOrdered(data []byte) (*orderedmap.OrderedMap[string, any], error) {
	om := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, om); err != nil {
		return nil, err
	}
	return om, nil
}

func buildHeader(entry zapcore.Entry, payload *orderedmap.OrderedMap[string, any]) string {
	ts := entry.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	level := strings.ToUpper(entry.Level.String())
	color := levelPalette[entry.Level]
	if color == "" {
		color = levelPalette[zapcore.InfoLevel]
	}

	var b strings.Builder
	b.WriteString(ansiFaint + timeColor + "[" + ts.Format(time.DateTime) + "]" + ansiReset)
	b.WriteByte(' ')
	b.WriteString(ansiBold + color + level + ansiReset)
	if name, ok := stringValue(payload, nameKey); ok && name != "" {
		b.WriteByte(' ')
		b.WriteString(ansiFaint + timeColor + name + ansiReset)
	}
	if entry.Message != "" {
		b.WriteByte(' ')
		b.WriteString(textColor + entry.Message + ansiReset)
	}
	b.WriteByte('\n')
	return b.String()
}

// appendMetadata writes all non-reserved fields as indented lines.
func appendMetadata(buf *buffer.Buffer, payload *orderedmap.OrderedMap[string, any]) {
	for pair := payload.Oldest(); pair != nil; pair = pair.Next() {
		switch pair.Key {
		case timeKey, levelKey, messageKey, nameKey:
			continue
		}
		buf.AppendString("  " + metaKeyColor + pair.Key + ansiReset + ": ")
		buf.AppendString(ansiFaint + metaValColor + renderValue(pair.Value, "  ") + ansiReset)
		buf.AppendString("\n")
	}
}

// renderValue formats scalars inline and nested structures as indented JSON.
func renderValue(v any, prefix string) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return "null"
	case *orderedmap.OrderedMap[string, any], map[string]any, []any:
		out, err := json.MarshalIndent(val, prefix, "  ")
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(out)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func stringValue(payload *orderedmap.OrderedMap[string, any], key string) (string, bool) {
	v, ok := payload.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
