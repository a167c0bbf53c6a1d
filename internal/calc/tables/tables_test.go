package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmpacity_KnownValues(t *testing.T) {
	tests := []struct {
		size Size
		temp TempRating
		want float64
	}{
		{Size750, Temp90, 535},
		{Size750, Temp75, 475},
		{Size14, Temp60, 15},
		{Size4_0, Temp75, 230},
		{Size1000, Temp90, 615},
	}
	for _, tt := range tests {
		got, ok := Ampacity(tt.size, tt.temp)
		require.True(t, ok, "size %s @ %s", tt.size, tt.temp)
		assert.Equal(t, tt.want, got, "size %s @ %s", tt.size, tt.temp)
	}
}

func TestDiameter_KnownValues(t *testing.T) {
	d, ok := Diameter(Size500)
	require.True(t, ok)
	assert.Equal(t, 0.949, d)

	d, ok = Diameter(Size750)
	require.True(t, ok)
	assert.Equal(t, 1.156, d)
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup(Size4_0)
	require.True(t, ok)
	assert.Equal(t, Size4_0, spec.Size)
	assert.Equal(t, 0.642, spec.DiameterIn)
	assert.Equal(t, 260.0, spec.Ampacity[Temp90])

	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestLookup_Miss(t *testing.T) {
	_, ok := Ampacity("2000", Temp90)
	assert.False(t, ok)

	_, ok = Ampacity(Size500, TempRating(105))
	assert.False(t, ok)

	_, ok = Diameter("5/0")
	assert.False(t, ok)
}

func TestSizes_Ordered(t *testing.T) {
	sizes := Sizes()
	require.Len(t, sizes, 24)
	assert.Equal(t, Size14, sizes[0])
	assert.Equal(t, Size1000, sizes[len(sizes)-1])

	for i := 1; i < len(sizes); i++ {
		prev, _ := Ampacity(sizes[i-1], Temp75)
		cur, _ := Ampacity(sizes[i], Temp75)
		assert.Greater(t, cur, prev, "ampacity should grow with size at %s", sizes[i])
	}
}

func TestParse(t *testing.T) {
	s, ok := ParseSize("3/0")
	assert.True(t, ok)
	assert.Equal(t, Size3_0, s)

	_, ok = ParseSize("3/00")
	assert.False(t, ok)

	temp, ok := ParseTempRating("75")
	assert.True(t, ok)
	assert.Equal(t, Temp75, temp)

	_, ok = ParseTempRating("105")
	assert.False(t, ok)
}

func TestLoad_RejectsIncompleteRows(t *testing.T) {
	saved := bySize
	defer func() { bySize = saved }()

	err := load([]ConductorSpec{{Size: "X", Ampacity: map[TempRating]float64{Temp60: 10}, DiameterIn: 0.1}})
	assert.ErrorContains(t, err, "missing 75°C")

	err = load([]ConductorSpec{{Size: "X", Ampacity: amp(10, 20, 30)}})
	assert.ErrorContains(t, err, "no diameter")

	err = load([]ConductorSpec{{Size: "X", Ampacity: amp(30, 20, 10), DiameterIn: 0.1}})
	assert.ErrorContains(t, err, "decreases")

	row := ConductorSpec{Size: "X", Ampacity: amp(10, 20, 30), DiameterIn: 0.1}
	err = load([]ConductorSpec{row, row})
	assert.ErrorContains(t, err, "duplicate")
}

func TestCorrectionFactor(t *testing.T) {
	f, ok := CorrectionFactor(33, Temp90)
	require.True(t, ok)
	assert.Equal(t, 0.96, f)

	f, ok = CorrectionFactor(30, Temp75)
	require.True(t, ok)
	assert.Equal(t, 1.00, f)

	f, ok = CorrectionFactor(-5, Temp60)
	require.True(t, ok)
	assert.Equal(t, 1.29, f)

	_, ok = CorrectionFactor(58, Temp60)
	assert.False(t, ok, "60°C insulation is not rated above 55°C ambient")

	_, ok = CorrectionFactor(90, Temp90)
	assert.False(t, ok)
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "4/0 AWG", Size4_0.Label())
	assert.Equal(t, "12 AWG", Size12.Label())
	assert.Equal(t, "250 kcmil", Size250.Label())
	assert.Equal(t, "750 kcmil", Size750.Label())
	assert.Equal(t, "5000", Size("5000").Label())
}
