// Package strength contains password strength evaluation use cases.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/password-meter/backend/internal/domain/entity"
)

const (
	// MinPasswordLength is the minimum length, in characters, that earns the length point.
	MinPasswordLength = 8
	// MaxRecommendedLength is the length above which a password is flagged as hard to remember.
	MaxRecommendedLength = 64
	// SpecialCharacters is the set of characters that earns the special character point.
	SpecialCharacters = "!@#$%^&*"
)

// Feedback messages, in the order they can appear.
const (
	MsgEmptyPassword  = "Please enter a password"
	MsgTooShort       = "Password should be at least 8 characters long."
	MsgNoLowercase    = "Password should contain lowercase letters."
	MsgNoUppercase    = "Password should contain uppercase letters."
	MsgNoDigit        = "Password should contain at least one digit."
	MsgNoSpecial      = "Password should contain at least one special character (!@#$%^&*)."
	MsgContainsSpace  = "⚠️ Password contains spaces (not recommended)."
	MsgTooLong        = "⚠️ Password is very long (may be hard to remember)."
	MsgCommonPatterns = "⚠️ Password contains common patterns (easy to guess)."
)

// commonPatterns are matched against the lowercased password.
var commonPatterns = []string{"123", "abc", "qwerty", "password"}

// criterion is one scoring check with the message appended when it fails.
type criterion struct {
	satisfied func(traits) bool
	message   string
}

// traits are the character-level facts collected in a single pass.
type traits struct {
	length     int
	hasLower   bool
	hasUpper   bool
	hasDigit   bool
	hasSpecial bool
	hasSpace   bool
}

var criteria = []criterion{
	{func(t traits) bool { return t.length >= MinPasswordLength }, MsgTooShort},
	{func(t traits) bool { return t.hasLower }, MsgNoLowercase},
	{func(t traits) bool { return t.hasUpper }, MsgNoUppercase},
	{func(t traits) bool { return t.hasDigit }, MsgNoDigit},
	{func(t traits) bool { return t.hasSpecial }, MsgNoSpecial},
}

// Evaluate scores a password against the five strength criteria and
// collects feedback. It is pure and accepts any string.
func Evaluate(password string) entity.Evaluation {
	if password == "" {
		return entity.Evaluation{
			Score:    0,
			Strength: entity.StrengthEmpty,
			Feedback: []string{MsgEmptyPassword},
		}
	}

	t := collectTraits(password)
	score := 0
	feedback := []string{}

	for _, c := range criteria {
		if c.satisfied(t) {
			score++
		} else {
			feedback = append(feedback, c.message)
		}
	}

	if t.hasSpace {
		feedback = append(feedback, MsgContainsSpace)
	}
	if t.length > MaxRecommendedLength {
		feedback = append(feedback, MsgTooLong)
	}
	// One warning regardless of how many patterns match.
	if containsCommonPattern(password) {
		feedback = append(feedback, MsgCommonPatterns)
	}

	return entity.Evaluation{
		Score:    score,
		Strength: entity.ClassifyScore(score),
		Feedback: feedback,
	}
}

func collectTraits(password string) traits {
	t := traits{length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case isLower(r):
			t.hasLower = true
		case isUpper(r):
			t.hasUpper = true
		case isDigit(r):
			t.hasDigit = true
		case r == ' ':
			t.hasSpace = true
		case strings.ContainsRune(SpecialCharacters, r):
			t.hasSpecial = true
		}
	}
	return t
}

// isLower matches the Unicode Lowercase property, which adds Other_Lowercase
// (ª, º, ⓐ) to the Ll category.
func isLower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// isUpper matches the Unicode Uppercase property, which adds Other_Uppercase
// (Ⅻ, Ⓐ) to the Lu category.
func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// isDigit accepts decimal digits plus the Numeric_Type=Digit characters
// outside Nd (superscripts, subscripts, circled digits).
func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(otherDigits, r)
}

// otherDigits lists the Numeric_Type=Digit code points that are not in Nd.
var otherDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

func containsCommonPattern(password string) bool {
	lowered := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}
