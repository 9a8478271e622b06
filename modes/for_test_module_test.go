package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		if tt != t {
			t.Fatal()
		}
	})
}
