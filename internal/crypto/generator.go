package crypto

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"

	MinLength = 5
	MaxLength = 1000
	MaxCount  = 1000
)

var (
	ErrInvalidLength  = errors.New("password length must be at least 5")
	ErrInvalidCount   = errors.New("number of passwords must be at least 1")
	ErrOutOfRange     = errors.New("password length and number of passwords must be at most 1000")
	ErrEmptyAlphabet  = errors.New("character class has an empty alphabet")
	ErrInvalidSymbols = errors.New("symbols must be valid UTF-8")
)

var (
	upperAlphabet  = []rune(uppercaseChars)
	lowerAlphabet  = []rune(lowercaseChars)
	numberAlphabet = []rune(numberChars)
)

// GenerationRequest describes one batch of passwords.
// Symbols is treated as a multiset: a repeated character is drawn more often.
type GenerationRequest struct {
	Length  int
	Count   int
	Symbols string
}

// DefaultRequest returns 5 passwords of 12 characters with no symbols.
func DefaultRequest() GenerationRequest {
	return GenerationRequest{
		Length: 12,
		Count:  5,
	}
}

// Validate checks the algorithmic minimums. The 1000 ceiling is checked by
// CheckCeiling, which callers apply at their own boundary.
func (r GenerationRequest) Validate() error {
	if r.Length < MinLength {
		return ErrInvalidLength
	}
	if r.Count < 1 {
		return ErrInvalidCount
	}
	if !utf8.ValidString(r.Symbols) {
		return ErrInvalidSymbols
	}
	return nil
}

// CheckCeiling reports ErrOutOfRange when length or count exceed 1000.
func CheckCeiling(length, count int) error {
	if length > MaxLength || count > MaxCount {
		return ErrOutOfRange
	}
	return nil
}

// classCounts is the number of characters drawn from each class for one password.
type classCounts struct {
	upper  int
	lower  int
	number int
	symbol int
}

// Generate produces req.Count independent passwords of req.Length characters.
// Every password holds at least one uppercase letter, lowercase letter and
// digit, plus at least one symbol when req.Symbols is non-empty. A nil src
// falls back to CryptoSource.
func Generate(req GenerationRequest, src Source) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = CryptoSource{}
	}

	symbols := []rune(req.Symbols)
	passwords := make([]string, 0, req.Count)

	for range req.Count {
		password, err := generateOne(req.Length, symbols, src)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}

	return passwords, nil
}

func generateOne(length int, symbols []rune, src Source) (string, error) {
	counts, err := partition(length, len(symbols) > 0, src)
	if err != nil {
		return "", err
	}

	buf := make([]rune, 0, length)
	blocks := []struct {
		alphabet []rune
		n        int
	}{
		{upperAlphabet, counts.upper},
		{lowerAlphabet, counts.lower},
		{numberAlphabet, counts.number},
		{symbols, counts.symbol},
	}
	for _, b := range blocks {
		if buf, err = sample(buf, b.alphabet, b.n, src); err != nil {
			return "", err
		}
	}

	if err := shuffle(buf, src); err != nil {
		return "", err
	}

	return string(buf), nil
}

// partition splits length across the classes. Draw order is fixed:
// symbols in [1, r/4], lowercase in [1, r-2], digits in [1, r-1], and
// uppercase takes the remainder.
func partition(length int, withSymbols bool, src Source) (classCounts, error) {
	var c classCounts
	r := length

	if withSymbols {
		n, err := drawInclusive(src, 1, r/4)
		if err != nil {
			return classCounts{}, err
		}
		c.symbol = n
		r -= n
	}

	n, err := drawInclusive(src, 1, r-2)
	if err != nil {
		return classCounts{}, err
	}
	c.lower = n
	r -= n

	n, err = drawInclusive(src, 1, r-1)
	if err != nil {
		return classCounts{}, err
	}
	c.number = n
	r -= n

	c.upper = r
	return c, nil
}

// drawInclusive returns a uniform value in [lo, hi]. An empty range means
// the length cannot fit every class.
func drawInclusive(src Source, lo, hi int) (int, error) {
	if hi < lo {
		return 0, ErrInvalidLength
	}
	n, err := src.IntN(hi - lo + 1)
	if err != nil {
		return 0, fmt.Errorf("drawing class length: %w", err)
	}
	return lo + n, nil
}

// sample appends n characters drawn with replacement from alphabet.
func sample(buf, alphabet []rune, n int, src Source) ([]rune, error) {
	if n == 0 {
		return buf, nil
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	for range n {
		i, err := src.IntN(len(alphabet))
		if err != nil {
			return nil, fmt.Errorf("sampling character: %w", err)
		}
		buf = append(buf, alphabet[i])
	}
	return buf, nil
}

// shuffle performs a Fisher-Yates shuffle driven by src.
func shuffle(data []rune, src Source) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling password: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
