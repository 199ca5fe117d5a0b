package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// leading and trailing punctuation split into their own tokens
const (
	prefixPunct = "([{\"'“‘<•●○·"
	suffixPunct = ")]}\"'”’>,;:!?."
)

// Tokenize splits text into tokens on whitespace, detaching surrounding
// punctuation and splitting on "/" so that "Python/Django" yields three tokens.
// Inner dots, pluses, hashes and hyphens stay inside the token (Node.js, C++, C#, Scikit-learn).
func Tokenize(text string) []Token {
	tokens := make([]Token, 0)
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		tokens = appendChunk(tokens, text[start:i], start)
	}
	return tokens
}

func appendChunk(tokens []Token, chunk string, offset int) []Token {
	var suffix []Token

	for chunk != "" {
		r, size := utf8.DecodeRuneInString(chunk)
		if !strings.ContainsRune(prefixPunct, r) {
			break
		}
		tokens = append(tokens, Token{Text: chunk[:size], Start: offset, End: offset + size})
		chunk = chunk[size:]
		offset += size
	}

	for chunk != "" {
		r, size := utf8.DecodeLastRuneInString(chunk)
		if !strings.ContainsRune(suffixPunct, r) {
			break
		}
		end := offset + len(chunk)
		suffix = append([]Token{{Text: chunk[len(chunk)-size:], Start: end - size, End: end}}, suffix...)
		chunk = chunk[:len(chunk)-size]
	}

	for chunk != "" {
		idx := strings.IndexByte(chunk, '/')
		if idx < 0 {
			tokens = append(tokens, Token{Text: chunk, Start: offset, End: offset + len(chunk)})
			break
		}
		if idx > 0 {
			tokens = append(tokens, Token{Text: chunk[:idx], Start: offset, End: offset + idx})
		}
		tokens = append(tokens, Token{Text: "/", Start: offset + idx, End: offset + idx + 1})
		chunk = chunk[idx+1:]
		offset += idx + 1
	}

	return append(tokens, suffix...)
}
