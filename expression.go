package tagdoc

import (
	"regexp"
	"strings"
)

// Trigger is the character that marks a line as a documentation query.
const Trigger = "?"

var (
	triggerRe = regexp.MustCompile(`^\?(.*)`)
	memberRe  = regexp.MustCompile(`^(.*)\.(\w+)$`)
)

// MatchTrigger reports whether line is a documentation query and returns
// the text following the trigger.
func MatchTrigger(line string) (string, bool) {
	m := triggerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractExpression returns the longest prefix of input that forms an
// expression: identifiers, "::" qualification, balanced <...>, (...) and
// [...] groups, chained with ".". Extraction stops at the first character
// outside that grammar; an unclosed or mismatched group ends the expression
// before its opening bracket.
func ExtractExpression(input string) string {
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isIdentByte(c), c == '.':
			i++
		case strings.HasPrefix(input[i:], "::"):
			i += 2
		case c == '<' || c == '(' || c == '[':
			end := closeGroup(input, i)
			if end < 0 {
				return input[:i]
			}
			i = end
		default:
			return input[:i]
		}
	}
	return input
}

// closeGroup returns the index just past the bracket that balances the one
// at input[start], or -1 if the group is never closed.
func closeGroup(input string, start int) int {
	var stack []byte
	for i := start; i < len(input); i++ {
		switch c := input[i]; c {
		case '<', '(', '[':
			stack = append(stack, closerOf(c))
		case '>', ')', ']':
			// An unmatched '<' nested in a call, e.g. f(a < b), was a comparison.
			for c != '>' && len(stack) > 1 && stack[len(stack)-1] == '>' {
				stack = stack[:len(stack)-1]
			}
			if stack[len(stack)-1] != c {
				// Likewise a bare '>' inside a call, e.g. f(a > b).
				if c == '>' {
					continue
				}
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i + 1
			}
		case '"', '\'':
			end := skipLiteral(input, i)
			if end < 0 {
				return -1
			}
			i = end
		}
	}
	return -1
}

// skipLiteral returns the index of the quote closing the literal that
// starts at input[start], or -1.
func skipLiteral(input string, start int) int {
	quote := input[start]
	for i := start + 1; i < len(input); i++ {
		switch input[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return -1
}

func closerOf(c byte) byte {
	switch c {
	case '<':
		return '>'
	case '(':
		return ')'
	default:
		return ']'
	}
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// MemberAccess is a qualified member access split at its right-most dot.
type MemberAccess struct {
	Receiver string
	Member   string
}

// SplitMemberAccess splits token into receiver and member when it ends in
// ".identifier". Everything before the final dot, including further dots,
// is the receiver. Tokens without a dot, or ending in a dot, are plain
// symbols and return false.
func SplitMemberAccess(token string) (MemberAccess, bool) {
	m := memberRe.FindStringSubmatch(token)
	if m == nil {
		return MemberAccess{}, false
	}
	return MemberAccess{Receiver: m[1], Member: m[2]}, true
}
