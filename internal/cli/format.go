package cli

import "strconv"

// FormatPrice renders a stored price string for display: the integer part
// gets dot thousand-separators and a trailing đ, the way the original app
// shows them ("150000" → "150.000đ"). Prices that do not parse as an
// integer are shown verbatim; the stored value is never touched.
func FormatPrice(price string) string {
	n, err := strconv.ParseInt(price, 10, 64)
	if err != nil {
		return price
	}

	digits := strconv.FormatInt(n, 10)
	neg := false
	if digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	s := string(out) + "đ"
	if neg {
		s = "-" + s
	}
	return s
}
