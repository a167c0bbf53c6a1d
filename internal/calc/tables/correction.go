package tables

type correctionBand struct {
	MaxAmbientC float64
	Factor      map[TempRating]float64
}

// NEC Table 310.15(B)(1), 30°C ambient basis. A zero factor means the
// insulation rating may not be used at that ambient.
var correctionBands = []correctionBand{
	{10, amp(1.29, 1.20, 1.15)},
	{15, amp(1.22, 1.15, 1.12)},
	{20, amp(1.15, 1.11, 1.08)},
	{25, amp(1.08, 1.05, 1.04)},
	{30, amp(1.00, 1.00, 1.00)},
	{35, amp(0.91, 0.94, 0.96)},
	{40, amp(0.82, 0.88, 0.91)},
	{45, amp(0.71, 0.82, 0.87)},
	{50, amp(0.58, 0.75, 0.82)},
	{55, amp(0.41, 0.67, 0.76)},
	{60, amp(0, 0.58, 0.71)},
	{65, amp(0, 0.47, 0.65)},
	{70, amp(0, 0.33, 0.58)},
	{75, amp(0, 0, 0.50)},
	{80, amp(0, 0, 0.41)},
	{85, amp(0, 0, 0.29)},
}

// CorrectionFactor returns the ambient temperature derating multiplier for
// the given insulation rating.
func CorrectionFactor(ambientC float64, temp TempRating) (float64, bool) {
	for _, b := range correctionBands {
		if ambientC > b.MaxAmbientC {
			continue
		}
		f, ok := b.Factor[temp]
		if !ok || f == 0 {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
