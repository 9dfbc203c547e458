package textbound

import "strings"

// NextIndexOfAny returns the first index >= from whose rune is in set, or -1.
func NextIndexOfAny(text []rune, set string, from int) int {
	for i := max(from, 0); i < len(text); i++ {
		if strings.ContainsRune(set, text[i]) {
			return i
		}
	}
	return -1
}

// PreviousIndexOfAny returns the last index <= from whose rune is in set, or -1.
func PreviousIndexOfAny(text []rune, set string, from int) int {
	for i := min(from, len(text)-1); i >= 0; i-- {
		if strings.ContainsRune(set, text[i]) {
			return i
		}
	}
	return -1
}

// NextIndexNotOfAny returns the first index >= from whose rune is not in set,
// or -1.
func NextIndexNotOfAny(text []rune, set string, from int) int {
	for i := max(from, 0); i < len(text); i++ {
		if !strings.ContainsRune(set, text[i]) {
			return i
		}
	}
	return -1
}

// PreviousIndexNotOfAny returns the last index <= from whose rune is not in
// set, or -1.
func PreviousIndexNotOfAny(text []rune, set string, from int) int {
	for i := min(from, len(text)-1); i >= 0; i-- {
		if !strings.ContainsRune(set, text[i]) {
			return i
		}
	}
	return -1
}
