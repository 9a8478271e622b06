package debugs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "machine", map[string]any{
			"tape": []byte{1, 2, 3},
			"pos":  0,
			"ops":  42,
		})
	})
}
