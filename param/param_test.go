package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velistar/pixurl/param"
)

// TestMergeByKey_Empty verifies that no input yields no output, not an empty pair.
func TestMergeByKey_Empty(t *testing.T) {
	assert.Nil(t, param.MergeByKey(nil))
	assert.Nil(t, param.MergeByKey([]param.Pair{}))
}

// TestMergeByKey_DistinctKeys verifies pass-through with key order preserved.
func TestMergeByKey_DistinctKeys(t *testing.T) {
	in := []param.Pair{{Key: "w", Value: "300"}, {Key: "h", Value: "200"}}
	assert.Equal(t, in, param.MergeByKey(in))
}

// TestMergeByKey_CollapsesSameKey verifies comma-joining in input order under
// the first key's position.
func TestMergeByKey_CollapsesSameKey(t *testing.T) {
	in := []param.Pair{
		{Key: "w", Value: "500"},
		{Key: "h", Value: "200"},
		{Key: "w", Value: "300"},
	}
	want := []param.Pair{
		{Key: "w", Value: "500,300"},
		{Key: "h", Value: "200"},
	}
	assert.Equal(t, want, param.MergeByKey(in))
}

// TestMergeByKey_DoesNotMutateInput guards the purity contract.
func TestMergeByKey_DoesNotMutateInput(t *testing.T) {
	in := []param.Pair{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}}
	_ = param.MergeByKey(in)
	assert.Equal(t, []param.Pair{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}}, in)
}

func TestEncode(t *testing.T) {
	cases := []struct {
		name  string
		pairs []param.Pair
		want  string
	}{
		{"Empty", nil, ""},
		{"Single", []param.Pair{{Key: "w", Value: "300"}}, "w=300"},
		{"Two", []param.Pair{{Key: "w", Value: "300"}, {Key: "h", Value: "200"}}, "w=300&h=200"},
		{"EmptyValueStillRenders", []param.Pair{{Key: "auto", Value: ""}}, "auto="},
		{"EscapesReserved", []param.Pair{{Key: "mono", Value: "#ff00aa"}}, "mono=%23ff00aa"},
		{"EscapesCommaList", []param.Pair{{Key: "rotation", Value: "90,flip-h"}}, "rotation=90%2Cflip-h"},
		{"RepeatedKeysRenderIndependently", []param.Pair{{Key: "t", Value: "1"}, {Key: "t", Value: "2"}}, "t=1&t=2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, param.Encode(tc.pairs))
		})
	}
}
