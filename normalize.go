package wordfreq

// Separator replaces every byte that is not an ASCII letter.
const Separator = ' '

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return isLower(b) || isUpper(b)
}

// Normalize lowercases ASCII letters and turns every other byte into
// Separator. The result has the same length as str.
func Normalize(str string) string {
	buf := make([]byte, len(str))
	for i := 0; i < len(str); i++ {
		buf[i] = normalize(str[i])
	}
	return string(buf)
}

func normalize(b byte) byte {
	switch {
	case isLower(b):
		return b
	case isUpper(b):
		return 'a' + (b - 'A')
	default:
		return Separator
	}
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
