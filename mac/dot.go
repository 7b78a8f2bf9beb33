package mac

// Dot returns the exact integer dot product sum(w[i]*a[i]). Both operands
// are integers, so the MAC result carries no float rounding; callers format
// as float only for display.
// Panics if the lengths differ.
func Dot(w Pattern, a Activations) int {
	if len(w) != len(a) {
		panic("mac: pattern/activation length mismatch")
	}
	sum := 0
	for i, wi := range w {
		sum += int(wi) * a[i]
	}
	return sum
}
