package tables

import "fmt"

type Size string

const (
	Size14   Size = "14"
	Size12   Size = "12"
	Size10   Size = "10"
	Size8    Size = "8"
	Size6    Size = "6"
	Size4    Size = "4"
	Size3    Size = "3"
	Size2    Size = "2"
	Size1    Size = "1"
	Size1_0  Size = "1/0"
	Size2_0  Size = "2/0"
	Size3_0  Size = "3/0"
	Size4_0  Size = "4/0"
	Size250  Size = "250"
	Size300  Size = "300"
	Size350  Size = "350"
	Size400  Size = "400"
	Size500  Size = "500"
	Size600  Size = "600"
	Size700  Size = "700"
	Size750  Size = "750"
	Size800  Size = "800"
	Size900  Size = "900"
	Size1000 Size = "1000"
)

type TempRating int

const (
	Temp60 TempRating = 60
	Temp75 TempRating = 75
	Temp90 TempRating = 90
)

var TempRatings = []TempRating{Temp60, Temp75, Temp90}

type ConductorSpec struct {
	Size       Size                   `json:"size"`
	Ampacity   map[TempRating]float64 `json:"ampacity"`
	DiameterIn float64                `json:"diameter_in"`
}

// conductors holds NEC Table 310.16 copper ampacities and NEC Chapter 9
// Table 5 THHN/THWN-2 outer diameters (inches), smallest size first.
var conductors = []ConductorSpec{
	{Size: Size14, Ampacity: amp(15, 20, 25), DiameterIn: 0.111},
	{Size: Size12, Ampacity: amp(20, 25, 30), DiameterIn: 0.130},
	{Size: Size10, Ampacity: amp(30, 35, 40), DiameterIn: 0.164},
	{Size: Size8, Ampacity: amp(40, 50, 55), DiameterIn: 0.216},
	{Size: Size6, Ampacity: amp(55, 65, 75), DiameterIn: 0.254},
	{Size: Size4, Ampacity: amp(70, 85, 95), DiameterIn: 0.324},
	{Size: Size3, Ampacity: amp(85, 100, 115), DiameterIn: 0.352},
	{Size: Size2, Ampacity: amp(95, 115, 130), DiameterIn: 0.384},
	{Size: Size1, Ampacity: amp(110, 130, 145), DiameterIn: 0.446},
	{Size: Size1_0, Ampacity: amp(125, 150, 170), DiameterIn: 0.486},
	{Size: Size2_0, Ampacity: amp(145, 175, 195), DiameterIn: 0.532},
	{Size: Size3_0, Ampacity: amp(165, 200, 225), DiameterIn: 0.584},
	{Size: Size4_0, Ampacity: amp(195, 230, 260), DiameterIn: 0.642},
	{Size: Size250, Ampacity: amp(215, 255, 290), DiameterIn: 0.711},
	{Size: Size300, Ampacity: amp(240, 285, 320), DiameterIn: 0.766},
	{Size: Size350, Ampacity: amp(260, 310, 350), DiameterIn: 0.817},
	{Size: Size400, Ampacity: amp(280, 335, 380), DiameterIn: 0.864},
	{Size: Size500, Ampacity: amp(320, 380, 430), DiameterIn: 0.949},
	{Size: Size600, Ampacity: amp(350, 420, 475), DiameterIn: 1.051},
	{Size: Size700, Ampacity: amp(385, 460, 520), DiameterIn: 1.122},
	{Size: Size750, Ampacity: amp(400, 475, 535), DiameterIn: 1.156},
	{Size: Size800, Ampacity: amp(410, 490, 555), DiameterIn: 1.188},
	{Size: Size900, Ampacity: amp(435, 520, 585), DiameterIn: 1.252},
	{Size: Size1000, Ampacity: amp(455, 545, 615), DiameterIn: 1.310},
}

var bySize = map[Size]ConductorSpec{}

// kcmilFrom is the index of the first kcmil size in conductors.
const kcmilFrom = 13

func init() {
	if err := load(conductors); err != nil {
		panic(err)
	}
}

func amp(c60, c75, c90 float64) map[TempRating]float64 {
	return map[TempRating]float64{Temp60: c60, Temp75: c75, Temp90: c90}
}

func load(specs []ConductorSpec) error {
	index := make(map[Size]ConductorSpec, len(specs))
	for _, s := range specs {
		if err := validate(s); err != nil {
			return err
		}
		if _, dup := index[s.Size]; dup {
			return fmt.Errorf("conductor table: duplicate size %s", s.Size)
		}
		index[s.Size] = s
	}
	bySize = index
	return nil
}

func validate(s ConductorSpec) error {
	if s.Size == "" {
		return fmt.Errorf("conductor table: empty size label")
	}
	if s.DiameterIn <= 0 {
		return fmt.Errorf("conductor table: size %s has no diameter", s.Size)
	}
	prev := 0.0
	for _, t := range TempRatings {
		a, ok := s.Ampacity[t]
		if !ok || a <= 0 {
			return fmt.Errorf("conductor table: size %s missing %d°C ampacity", s.Size, t)
		}
		if a < prev {
			return fmt.Errorf("conductor table: size %s ampacity decreases at %d°C", s.Size, t)
		}
		prev = a
	}
	return nil
}

func Sizes() []Size {
	out := make([]Size, 0, len(conductors))
	for _, s := range conductors {
		out = append(out, s.Size)
	}
	return out
}

func Lookup(size Size) (ConductorSpec, bool) {
	s, ok := bySize[size]
	return s, ok
}

// Ampacity reports false when the size or temperature is not in the table;
// callers keep whatever value they already had.
func Ampacity(size Size, temp TempRating) (float64, bool) {
	s, ok := Lookup(size)
	if !ok {
		return 0, false
	}
	a, ok := s.Ampacity[temp]
	return a, ok
}

func Diameter(size Size) (float64, bool) {
	s, ok := Lookup(size)
	if !ok {
		return 0, false
	}
	return s.DiameterIn, true
}

func ParseSize(v string) (Size, bool) {
	if _, ok := bySize[Size(v)]; !ok {
		return "", false
	}
	return Size(v), true
}

func ParseTempRating(v string) (TempRating, bool) {
	switch v {
	case "60":
		return Temp60, true
	case "75":
		return Temp75, true
	case "90":
		return Temp90, true
	}
	return 0, false
}

// Label appends the unit: AWG through 4/0, kcmil from 250 up.
func (s Size) Label() string {
	for i, c := range conductors {
		if c.Size != s {
			continue
		}
		if i < kcmilFrom {
			return string(s) + " AWG"
		}
		return string(s) + " kcmil"
	}
	return string(s)
}

func (t TempRating) String() string {
	return fmt.Sprintf("%d", int(t))
}
