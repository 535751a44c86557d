package helpers

import "strconv"

// StringToUint parses a decimal route or form parameter into an entity id.
func StringToUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
