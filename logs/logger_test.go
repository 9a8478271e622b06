package logs

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestNewSpan(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		if span == "" {
			t.Fatal()
		}
		logger.InfoContext(ctx, "in span")

		ctx2, span2 := newSpan(ctx, span)
		if span2 == "" || span2 == span {
			t.Fatal()
		}
		if err := WrapSpan(ctx2, nil); err == nil {
			t.Fatal("should carry span")
		}
	})
}
