package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type machineState struct {
		Pos      int
		ops      int
		Finished bool
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "brainfck", starlark.String("brainfck")},
		{"tape cells", []byte{0, 65, 255}, starlark.Bytes("\x00A\xff")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint8", uint8(255), starlark.MakeUint(255)},
		{"float", 1.5, starlark.Float(1.5)},
		{"positions", []int{0, 3, 7}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(0), starlark.MakeInt(3), starlark.MakeInt(7),
		})},
		{"globals", map[string]any{"ops": 12}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("ops"), starlark.MakeInt(12))
			return d
		}()},
		{"state struct drops unexported", machineState{Pos: 2, ops: 9, Finished: true}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Pos"), starlark.MakeInt(2))
			d.SetKey(starlark.String("Finished"), starlark.True)
			return d
		}()},
		{"pointer to struct", &machineState{Pos: 1}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Pos"), starlark.MakeInt(1))
			d.SetKey(starlark.String("Finished"), starlark.False)
			return d
		}()},
		{"nil pointer", (*machineState)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
