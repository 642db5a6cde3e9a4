package coremap_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"nucore/internal/core"
	"nucore/internal/coremap"
)

func core3x3(t *testing.T) *core.Core {
	t.Helper()
	c, err := core.New("3x3", 3, []int{1, 3, 1})
	require.NoError(t, err)
	return c
}

func floatGrid() *coremap.Map[float64] {
	return coremap.Filled([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

func plusListMap(t *testing.T) *coremap.ListMap[float64] {
	t.Helper()
	m, err := coremap.NewListMap[float64]([]any{
		[]any{[]any{nil}, []any{2.0}, []any{nil}},
		[]any{[]any{4.0}, []any{5.0}, []any{6.0}},
		[]any{[]any{nil}, []any{8.0}, []any{nil}},
	})
	require.NoError(t, err)
	return m
}

func TestMap_GetItemByIJ_OutsideCore(t *testing.T) {
	c := core3x3(t)
	m := floatGrid()
	for _, p := range []coremap.Point{{I: 0, J: 0}, {I: 0, J: 2}, {I: 2, J: 0}, {I: 2, J: 2}} {
		_, err := m.GetItemByIJ(p, c)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, fmt.Sprintf("Point (i,j)=(%d,%d) is not within the core", p.I, p.J), err.Error())
	}
}

func TestMap_GetItemByIJ_OutOfRange(t *testing.T) {
	c := core3x3(t)
	_, err := floatGrid().GetItemByIJ(coremap.Point{I: 3, J: 0}, c)
	require.Error(t, err)
	assert.Equal(t, "Invalid point (i,j)=(3,0) (allowed range for i, j is 0-2)", err.Error())
}

func TestMap_GetItemByIJ(t *testing.T) {
	c := core3x3(t)
	m := floatGrid()

	v, err := m.GetItemByIJ(coremap.Point{I: 1, J: 1}, c)
	require.NoError(t, err)
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 5.0, got)

	v, err = m.GetItemByIJ(coremap.Point{I: 2, J: 1}, c)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v.Or(0))
}

func TestMap_ShortGridGuard(t *testing.T) {
	c := core3x3(t)
	m := coremap.Filled([][]float64{{1}})
	_, err := m.GetItemByIJ(coremap.Point{I: 1, J: 1}, c)
	require.Error(t, err)
	rule, _ := core.RuleOf(err)
	assert.Equal(t, core.RuleMapSize, rule)
}

func TestListMap_GetItemByIJ(t *testing.T) {
	c := core3x3(t)
	m := plusListMap(t)

	_, err := m.GetItemByIJ(coremap.Point{I: 0, J: 0}, c)
	require.EqualError(t, err, "Point (i,j)=(0,0) is not within the core")

	got, err := m.GetItemByIJ(coremap.Point{I: 1, J: 1}, c)
	require.NoError(t, err)
	assert.Equal(t, []coremap.Cell[float64]{coremap.Some(5.0)}, got)

	got, err = m.GetItemByIJ(coremap.Point{I: 2, J: 1}, c)
	require.NoError(t, err)
	assert.Equal(t, []coremap.Cell[float64]{coremap.Some(8.0)}, got)
}

func TestListMap_GetItemByIJK(t *testing.T) {
	c := core3x3(t)
	m := plusListMap(t)

	errs := []struct {
		p    coremap.Point3
		want string
	}{
		{coremap.Point3{I: -1, J: 0, K: 0}, "Invalid point (i,j)=(-1,0) (allowed range for i, j is 0-2)"},
		{coremap.Point3{I: 0, J: -1, K: 0}, "Invalid point (i,j)=(0,-1) (allowed range for i, j is 0-2)"},
		{coremap.Point3{I: 3, J: 0, K: 0}, "Invalid point (i,j)=(3,0) (allowed range for i, j is 0-2)"},
		{coremap.Point3{I: 0, J: 3, K: 0}, "Invalid point (i,j)=(0,3) (allowed range for i, j is 0-2)"},
		{coremap.Point3{I: 0, J: 1, K: -1}, "Invalid k index: -1"},
		{coremap.Point3{I: 0, J: 1, K: 1}, "Invalid k index: 1"},
		{coremap.Point3{I: 0, J: 0, K: 0}, "Point (i,j)=(0,0) is not within the core"},
		// membership is checked before k
		{coremap.Point3{I: 0, J: 0, K: 7}, "Point (i,j)=(0,0) is not within the core"},
	}
	for _, tt := range errs {
		_, err := m.GetItemByIJK(tt.p, c)
		require.Error(t, err, "%+v", tt.p)
		assert.Equal(t, tt.want, err.Error())
	}

	v, err := m.GetItemByIJK(coremap.Point3{I: 1, J: 1, K: 0}, c)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.Or(0))

	v, err = m.GetItemByIJK(coremap.Point3{I: 2, J: 1, K: 0}, c)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v.Or(0))
}

func TestListMap_GetItemByIJK_TwoLayers(t *testing.T) {
	c := core3x3(t)
	m, err := coremap.NewListMap[int]([]any{
		[]any{[]any{nil, nil}, []any{1, 2}, []any{nil, nil}},
		[]any{[]any{5, 6}, []any{3, 4}, []any{7, 8}},
		[]any{[]any{nil, nil}, []any{9, 10}, []any{nil, nil}},
	})
	require.NoError(t, err)

	for k, want := range []int{3, 4} {
		v, err := m.GetItemByIJK(coremap.Point3{I: 1, J: 1, K: k}, c)
		require.NoError(t, err)
		got, ok := v.Get()
		require.True(t, ok)
		assert.Equal(t, want, got, "k=%d", k)
	}

	_, err = m.GetItemByIJK(coremap.Point3{I: 1, J: 1, K: 2}, c)
	require.EqualError(t, err, "Invalid k index: 2")
	assert.ErrorIs(t, err, core.ErrValidation)

	// membership is checked before k
	_, err = m.GetItemByIJK(coremap.Point3{I: 0, J: 0, K: 2}, c)
	require.EqualError(t, err, "Point (i,j)=(0,0) is not within the core")
}

func TestNewMap_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		kind coremap.Kind
		raw  any
		want string
	}{
		{"scalar", coremap.KindFloat, 1, "values must be of type list"},
		{"flat list", coremap.KindFloat, []any{1.0, 2.0}, "values must be of type list[list]"},
		{"ragged with string", coremap.KindFloat, []any{[]any{1.0, 2.0}, []any{3.0, 4.0, "a"}}, "values must be of type list[list[float | None]]"},
		{"float with string", coremap.KindFloat, []any{[]any{1.0, 2.0}, []any{3.0, "a"}}, "values must be of type list[list[float | None]]"},
		{"int with float", coremap.KindInt, []any{[]any{1, 2}, []any{3, 4.0}}, "values must be of type list[list[int | None]]"},
		{"str with int", coremap.KindString, []any{[]any{"a", "b"}, []any{"c", 1}}, "values must be of type list[list[str | None]]"},
		{"bool with str", coremap.KindBool, []any{[]any{true, false}, []any{false, "1"}}, "values must be of type list[list[bool | None]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coremap.DecodeOverlay(tt.kind, false, tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrValidation)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestNewListMap_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		kind coremap.Kind
		raw  any
		want string
	}{
		{"scalar", coremap.KindFloat, 1, "values must be of type list"},
		{"flat list", coremap.KindFloat, []any{1.0, 2.0}, "values must be of type list[list]"},
		{"grid of scalars", coremap.KindFloat, []any{[]any{1.0}, []any{2.0}}, "values must be of type list[list[list]]"},
		{"float with string", coremap.KindFloat, []any{[]any{[]any{1.0}, []any{2.0}}, []any{[]any{3.0}, []any{4.0, "a"}}}, "values must be of type list[list[list[float | None]]]"},
		{"int with string", coremap.KindInt, []any{[]any{[]any{1}, []any{2}}, []any{[]any{3}, []any{4, "a"}}}, "values must be of type list[list[list[int | None]]]"},
		{"str with int", coremap.KindString, []any{[]any{[]any{"a"}, []any{"b"}}, []any{[]any{"c"}, []any{"d", 1}}}, "values must be of type list[list[list[str | None]]]"},
		{"bool with str", coremap.KindBool, []any{[]any{[]any{true}, []any{false}}, []any{[]any{false}, []any{false, "1"}}}, "values must be of type list[list[list[bool | None]]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coremap.DecodeOverlay(tt.kind, true, tt.raw)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestAxial_GetItemByK(t *testing.T) {
	a := coremap.AxialOf([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	for k := 0; k < 9; k++ {
		v, err := a.GetItemByK(k)
		require.NoError(t, err)
		assert.Equal(t, float64(k+1), v)
	}
	_, err := a.GetItemByK(-1)
	assert.EqualError(t, err, "Invalid k index: -1")
	_, err = a.GetItemByK(9)
	assert.EqualError(t, err, "Invalid k index: 9")
}

func TestNewAxial_InvalidValues(t *testing.T) {
	tests := []struct {
		kind coremap.Kind
		raw  any
		want string
	}{
		{coremap.KindFloat, 1, "values must be of type list"},
		{coremap.KindFloat, []any{1.0, "a"}, "values must be of type list[float]"},
		{coremap.KindFloat, []any{1.0, nil}, "values must be of type list[float]"},
		{coremap.KindInt, []any{1, "a"}, "values must be of type list[int]"},
		{coremap.KindString, []any{"a", 1}, "values must be of type list[str]"},
		{coremap.KindBool, []any{true, 1}, "values must be of type list[bool]"},
	}
	for _, tt := range tests {
		_, err := coremap.DecodeAxialLen(tt.kind, tt.raw)
		require.Error(t, err)
		assert.Equal(t, tt.want, err.Error())
	}
}

func TestAssertMapSize(t *testing.T) {
	c := core3x3(t)
	require.NoError(t, floatGrid().AssertMapSize(c))

	err := coremap.Filled([][]float64{{1, 2, 3}, {4, 5, 6}}).AssertMapSize(c)
	assert.EqualError(t, err, "map has 2 rows, core size is 3")

	err = coremap.Filled([][]float64{{1, 2, 3}, {4, 5}, {7, 8, 9}}).AssertMapSize(c)
	assert.EqualError(t, err, "map row 1 has 2 columns, core size is 3")

	require.NoError(t, plusListMap(t).AssertMapSize(c))
}

func TestFromCore(t *testing.T) {
	c := core3x3(t)
	m := coremap.FromCore(c, 1)
	assert.Equal(t, c.AssemblyCount(), m.Populated())
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 1, 1}, {0, 1, 0}}, m.Dense(0))
}

func TestIntAcceptsWholeNumbersOnly(t *testing.T) {
	_, err := coremap.NewMap[int]([]any{[]any{1, nil}})
	require.NoError(t, err)

	// integers widen into float maps
	m, err := coremap.NewMap[float64]([]any{[]any{1, 2.5}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2.5}}, m.Dense(0))
}

func TestMap_YAMLRoundTrip(t *testing.T) {
	src := coremap.MapOf([][]coremap.Cell[string]{
		{coremap.Absent[string](), coremap.Some("fuel"), coremap.Absent[string]()},
		{coremap.Some("fuel"), coremap.Some("ctrl"), coremap.Some("fuel")},
		{coremap.Absent[string](), coremap.Some("fuel"), coremap.Absent[string]()},
	})
	b, err := yaml.Marshal(src)
	require.NoError(t, err)
	assert.Contains(t, string(b), "values:")
	assert.Contains(t, string(b), "null")

	var got coremap.Map[string]
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.True(t, src.Equal(&got))
}

func TestMap_YAMLRejectsWrongKind(t *testing.T) {
	var m coremap.Map[int]
	err := yaml.Unmarshal([]byte("values:\n  - [1, 2.5]\n"), &m)
	assert.EqualError(t, err, "values must be of type list[list[int | None]]")
}

func TestListMap_JSONRoundTrip(t *testing.T) {
	src := plusListMap(t)
	b, err := json.Marshal(src)
	require.NoError(t, err)
	assert.JSONEq(t, `{"values":[[[null],[2],[null]],[[4],[5],[6]],[[null],[8],[null]]]}`, string(b))

	var got coremap.ListMap[float64]
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, src.Populated(), got.Populated())
	assert.True(t, src.Layer(0).Equal(got.Layer(0)))
}

func TestAxial_JSONRejectsFloatInInt(t *testing.T) {
	var a coremap.Axial[int]
	err := json.Unmarshal([]byte(`{"values":[1, 2.0]}`), &a)
	assert.EqualError(t, err, "values must be of type list[int]")

	require.NoError(t, json.Unmarshal([]byte(`{"values":[1, 2]}`), &a))
	assert.Equal(t, []int{1, 2}, a.Values())
}

func TestParseKind(t *testing.T) {
	k, err := coremap.ParseKind("str")
	require.NoError(t, err)
	assert.Equal(t, coremap.KindString, k)
	assert.Equal(t, "str", k.String())

	_, err = coremap.ParseKind("complex")
	assert.Error(t, err)
}
