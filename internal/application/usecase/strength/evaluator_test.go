package strength

import (
	"reflect"
	"strings"
	"testing"

	"github.com/password-meter/backend/internal/domain/entity"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name             string
		password         string
		expectedScore    int
		expectedStrength entity.Strength
		expectedFeedback []string
	}{
		{
			name:             "empty password short-circuits",
			password:         "",
			expectedScore:    0,
			expectedStrength: entity.StrengthEmpty,
			expectedFeedback: []string{MsgEmptyPassword},
		},
		{
			name:             "short lowercase with common pattern",
			password:         "abc",
			expectedScore:    1,
			expectedStrength: entity.StrengthWeak,
			expectedFeedback: []string{MsgTooShort, MsgNoUppercase, MsgNoDigit, MsgNoSpecial, MsgCommonPatterns},
		},
		{
			name:             "superscript counts as a digit",
			password:         "Abcdefg²!",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{MsgCommonPatterns},
		},
		{
			name:             "circled digit counts as a digit",
			password:         "Xkjmwvt①!",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{},
		},
		{
			name:             "feminine ordinal counts as lowercase",
			password:         "ABCDEFGª1!",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{MsgCommonPatterns},
		},
		{
			name:             "roman numeral counts as uppercase",
			password:         "abcdefgⅫ1!",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{MsgCommonPatterns},
		},
		{
			name:             "dictionary word with digit",
			password:         "Password1",
			expectedScore:    4,
			expectedStrength: entity.StrengthModerate,
			expectedFeedback: []string{MsgNoSpecial, MsgCommonPatterns},
		},
		{
			name:             "all criteria satisfied",
			password:         "Tr0ub4dor&3",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{},
		},
		{
			name:             "all advisories triggered",
			password:         "a very long password with spaces and 123 " + strings.Repeat("x", 30),
			expectedScore:    3,
			expectedStrength: entity.StrengthModerate,
			expectedFeedback: []string{MsgNoUppercase, MsgNoSpecial, MsgContainsSpace, MsgTooLong, MsgCommonPatterns},
		},
		{
			name:             "only special characters",
			password:         "!@#$%^&*",
			expectedScore:    2,
			expectedStrength: entity.StrengthWeak,
			expectedFeedback: []string{MsgNoLowercase, MsgNoUppercase, MsgNoDigit},
		},
		{
			name:             "single space",
			password:         " ",
			expectedScore:    0,
			expectedStrength: entity.StrengthWeak,
			expectedFeedback: []string{MsgTooShort, MsgNoLowercase, MsgNoUppercase, MsgNoDigit, MsgNoSpecial, MsgContainsSpace},
		},
		{
			name:             "multiple common patterns produce one warning",
			password:         "qwerty123abcPASSWORD!",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{MsgCommonPatterns},
		},
		{
			name:             "pattern match ignores case",
			password:         "QWErty",
			expectedScore:    2,
			expectedStrength: entity.StrengthWeak,
			expectedFeedback: []string{MsgTooShort, MsgNoDigit, MsgNoSpecial, MsgCommonPatterns},
		},
		{
			name:             "special characters outside the set do not count",
			password:         "Abcdefg1-_+=",
			expectedScore:    4,
			expectedStrength: entity.StrengthModerate,
			expectedFeedback: []string{MsgNoSpecial, MsgCommonPatterns},
		},
		{
			name:             "exactly eight characters passes length",
			password:         "Aa1!Bb2@",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{},
		},
		{
			name:             "exactly sixty-four characters is not flagged",
			password:         "Aa1!" + strings.Repeat("z", 60),
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{},
		},
		{
			name:             "sixty-five characters is flagged",
			password:         "Aa1!" + strings.Repeat("z", 61),
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{MsgTooLong},
		},
		{
			name:             "length counts characters not bytes",
			password:         "Żółw1!é",
			expectedScore:    4,
			expectedStrength: entity.StrengthModerate,
			expectedFeedback: []string{MsgTooShort},
		},
		{
			name:             "non-ASCII letters count as cased letters",
			password:         "ÄÖÜäöü9#",
			expectedScore:    5,
			expectedStrength: entity.StrengthStrong,
			expectedFeedback: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.password)

			if result.Score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, result.Score)
			}
			if result.Strength != tt.expectedStrength {
				t.Errorf("expected strength %s, got %s", tt.expectedStrength, result.Strength)
			}
			if !reflect.DeepEqual(result.Feedback, tt.expectedFeedback) {
				t.Errorf("expected feedback %q, got %q", tt.expectedFeedback, result.Feedback)
			}
		})
	}
}

func TestEvaluate_ScoreBoundsAndClassification(t *testing.T) {
	passwords := []string{
		"", "a", "A", "1", "!", " ", "aA", "aA1", "aA1!", "aA1!aA1!",
		"password", "PASSWORD", "12345678", "********", "🔒🔒🔒🔒🔒🔒🔒🔒",
		strings.Repeat("aA1!", 40), "\x00\x01\x02", "\xff\xfe",
	}

	for _, p := range passwords {
		result := Evaluate(p)
		if result.Score < 0 || result.Score > entity.MaxScore {
			t.Errorf("score %d out of range for %q", result.Score, p)
		}
		if p == "" {
			continue
		}
		if got := entity.ClassifyScore(result.Score); got != result.Strength {
			t.Errorf("strength %s does not follow score %d for %q", result.Strength, result.Score, p)
		}
		failed := entity.MaxScore - result.Score
		if len(result.Feedback) < failed || len(result.Feedback) > failed+3 {
			t.Errorf("feedback length %d inconsistent with %d failed criteria for %q", len(result.Feedback), failed, p)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, p := range []string{"", "abc", "Password1", "Tr0ub4dor&3"} {
		first := Evaluate(p)
		second := Evaluate(p)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical results for %q, got %+v and %+v", p, first, second)
		}
	}
}
