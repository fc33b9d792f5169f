package wordfreq

// Tokenize splits a normalized string on Separator. Empty fragments are
// dropped and words keep their order of appearance.
func Tokenize(str string) []string {
	var (
		words []string
		pos   = -1
	)
	for i := 0; i < len(str); i++ {
		if str[i] != Separator {
			if pos < 0 {
				pos = i
			}
			continue
		}
		if pos >= 0 {
			words = append(words, str[pos:i])
			pos = -1
		}
	}
	if pos >= 0 {
		words = append(words, str[pos:])
	}
	return words
}
