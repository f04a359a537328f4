package logging

import (
	"context"
	"testing"
)

type ctxLogger struct {
	entries *[]string
	tag     string
}

func (l ctxLogger) Logf(c Classification, format string, v ...interface{}) {
	*l.entries = append(*l.entries, l.tag+" "+string(c))
}

func (l ctxLogger) WithContext(ctx context.Context) Logger {
	tag, _ := ctx.Value(struct{}{}).(string)
	return ctxLogger{entries: l.entries, tag: tag}
}

func TestWithContext(t *testing.T) {
	if _, ok := WithContext(context.Background(), nil).(Nop); !ok {
		t.Errorf("expect nil logger to be replaced with Nop")
	}

	var entries []string
	ctx := context.WithValue(context.Background(), struct{}{}, "req-1")
	WithContext(ctx, ctxLogger{entries: &entries}).Logf(Debug, "sent")

	if e, a := []string{"req-1 DEBUG"}, entries; len(a) != 1 || e[0] != a[0] {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestLoggerFunc(t *testing.T) {
	var got Classification
	LoggerFunc(func(c Classification, format string, v ...interface{}) {
		got = c
	}).Logf(Debug, "x")

	if e, a := Debug, got; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
