package constants

// Cashiers is the fixed staff roster offered by the cashier selector.
var Cashiers = []string{"An", "Trang", "Ngân", "Tuấn"}

// IsCashier reports whether name is on the roster. The empty string is
// accepted separately by callers (an unassigned cashier, not a roster member).
func IsCashier(name string) bool {
	for _, c := range Cashiers {
		if c == name {
			return true
		}
	}
	return false
}
