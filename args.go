package args

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const aliasSeparator = "|"

// NoValue is the sentinel returned by String and LookupString when no
// value was captured. It is distinguishable from an empty string, so
// callers can test string results for truthiness the same way they
// test numeric results against zero.
const NoValue = "no value"

var (
	truthyTokens = []string{"true", "on", "yes", "y", "1"}
	falsyTokens  = []string{"false", "off", "no", "n", "0"}
)

// -----

// Store holds a snapshot of an argument vector. Index 0 is the
// program name and is never matched against. The zero value is a
// valid, empty store; every query against it yields its default.
type Store struct {
	argv []string
}

// The process-wide store, populated by Parse / ParseCommandLine and
// queried by the package-level accessors.
var proc Store

// NewStore takes an argument vector, with the program name at index 0,
// and returns a Store that answers queries against it. Use this when
// the process-wide store is not appropriate (tests, nested argument
// lists).
func NewStore(argv []string) *Store {
	return &Store{argv: argv}
}

// Parse stores the given argument vector, program name first, in the
// process-wide store. Call it exactly once, before any package-level
// accessor. The slice is kept verbatim; no validation is performed.
func Parse(argv []string) {
	proc = Store{argv: argv}
}

// ParseCommandLine stores the process command line (os.Args) in the
// process-wide store. Call it exactly once, before any package-level
// accessor.
func ParseCommandLine() {
	Parse(os.Args)
}

// -----

// Bool returns the boolean value bound to any alias in spec, or false
// if none captured a value. See LookupBool for the matching rules.
func Bool(spec string) bool { return proc.Bool(spec) }

// Int returns the integer value bound to any alias in spec, or 0 if
// none captured a value. See LookupInt for the matching rules.
func Int(spec string) int { return proc.Int(spec) }

// Float returns the floating-point value bound to any alias in spec,
// or 0.0 if none captured a value. See LookupFloat for the matching
// rules.
func Float(spec string) float64 { return proc.Float(spec) }

// String returns the string value bound to any alias in spec, or the
// NoValue sentinel if none captured a value. See LookupString for the
// matching rules and the quoted-value side effect.
func String(spec string) string { return proc.String(spec) }

// LookupBool is LookupBool on the process-wide store.
func LookupBool(spec string) (bool, bool) { return proc.LookupBool(spec) }

// LookupInt is LookupInt on the process-wide store.
func LookupInt(spec string) (int, bool) { return proc.LookupInt(spec) }

// LookupFloat is LookupFloat on the process-wide store.
func LookupFloat(spec string) (float64, bool) { return proc.LookupFloat(spec) }

// LookupString is LookupString on the process-wide store.
func LookupString(spec string) (string, bool) { return proc.LookupString(spec) }

// PrintArguments writes the stored arguments of the process-wide
// store, one line per argument, to standard output.
func PrintArguments() { proc.PrintArguments() }

// WriteArguments writes the stored arguments of the process-wide
// store, one line per argument, to w.
func WriteArguments(w io.Writer) { proc.WriteArguments(w) }

// -----

// Bool returns the boolean value bound to any alias in spec, or false
// if none captured a value.
func (s *Store) Bool(spec string) bool {
	v, _ := s.LookupBool(spec)
	return v
}

// Int returns the integer value bound to any alias in spec, or 0 if
// none captured a value.
func (s *Store) Int(spec string) int {
	v, _ := s.LookupInt(spec)
	return v
}

// Float returns the floating-point value bound to any alias in spec,
// or 0.0 if none captured a value.
func (s *Store) Float(spec string) float64 {
	v, _ := s.LookupFloat(spec)
	return v
}

// String returns the string value bound to any alias in spec, or the
// NoValue sentinel if none captured a value.
func (s *Store) String(spec string) string {
	v, _ := s.LookupString(spec)
	return v
}

// LookupBool scans the stored arguments for every alias in spec and
// returns the winning boolean value, plus a flag reporting whether any
// match captured a value.
//
// In the separated form, a flag whose follower is falsy (compared
// case-insensitively) reads as false; any other follower, or no
// follower at all, reads as true. In the fused form the candidate
// after "=" is compared case-sensitively against the truthy and falsy
// token sets, and a candidate in neither set leaves the running
// result unchanged.
func (s *Store) LookupBool(spec string) (bool, bool) {
	result, found := false, false

	for _, flag := range strings.Split(spec, aliasSeparator) {
		if flag == "" {
			continue // empty alias tokens never match
		}

		for i := 1; i < len(s.argv); i++ {
			a := s.argv[i]

			if a == flag {
				result = true
				if i+1 < len(s.argv) && matchTokenFold(s.argv[i+1], falsyTokens) {
					result = false
				}
				found = true
			} else if v, ok := fusedValue(a, flag); ok {
				switch {
				case matchToken(v, truthyTokens):
					result, found = true, true
				case matchToken(v, falsyTokens):
					result, found = false, true
				}
			}
		}
	}

	return result, found
}

// LookupInt scans the stored arguments for every alias in spec and
// returns the winning integer value, plus a flag reporting whether any
// match captured a value.
//
// In the separated form the follower is only consumed when it leads
// with an ASCII digit; the fused form parses the candidate after "="
// unconditionally, with atoi semantics.
func (s *Store) LookupInt(spec string) (int, bool) {
	result, found := 0, false

	for _, flag := range strings.Split(spec, aliasSeparator) {
		if flag == "" {
			continue
		}

		for i := 1; i < len(s.argv); i++ {
			a := s.argv[i]

			if a == flag {
				if i+1 < len(s.argv) && leadsWithDigit(s.argv[i+1]) {
					result, found = atoi(s.argv[i+1]), true
				}
			} else if v, ok := fusedValue(a, flag); ok {
				result, found = atoi(v), true
			}
		}
	}

	return result, found
}

// LookupFloat scans the stored arguments for every alias in spec and
// returns the winning floating-point value, plus a flag reporting
// whether any match captured a value.
//
// The matching rules are those of LookupInt, with atof semantics for
// the parse.
func (s *Store) LookupFloat(spec string) (float64, bool) {
	result, found := 0.0, false

	for _, flag := range strings.Split(spec, aliasSeparator) {
		if flag == "" {
			continue
		}

		for i := 1; i < len(s.argv); i++ {
			a := s.argv[i]

			if a == flag {
				if i+1 < len(s.argv) && leadsWithDigit(s.argv[i+1]) {
					result, found = atof(s.argv[i+1]), true
				}
			} else if v, ok := fusedValue(a, flag); ok {
				result, found = atof(v), true
			}
		}
	}

	return result, found
}

// LookupString scans the stored arguments for every alias in spec and
// returns the winning string value, plus a flag reporting whether any
// match captured a value.
//
// In the separated form the follower is taken verbatim. In the fused
// form, a candidate beginning with a double quote extends to the next
// double quote or the end of the argument; extracting it truncates
// the stored argument at the closing quote, so later queries against
// the same argument see the truncated text. Not safe for concurrent
// use because of that mutation.
func (s *Store) LookupString(spec string) (string, bool) {
	result, found := NoValue, false

	for _, flag := range strings.Split(spec, aliasSeparator) {
		if flag == "" {
			continue
		}

		for i := 1; i < len(s.argv); i++ {
			a := s.argv[i]

			if a == flag && i+1 < len(s.argv) {
				result, found = s.argv[i+1], true
			} else if v, ok := fusedValue(a, flag); ok {
				if strings.HasPrefix(v, `"`) {
					open := len(a) - len(v) + 1 // first byte of the quoted body
					if end := strings.IndexByte(a[open:], '"'); end >= 0 {
						result = a[open : open+end]
						s.argv[i] = a[:open+end] // truncate at the closing quote
					} else {
						result = a[open:]
					}
				} else {
					result = v
				}
				found = true
			}
		}
	}

	return result, found
}

// PrintArguments writes the stored arguments, one line per argument
// including the program name at index 0, to standard output.
func (s *Store) PrintArguments() {
	s.WriteArguments(os.Stdout)
}

// WriteArguments writes the stored arguments, one line per argument
// including the program name at index 0, to w.
func (s *Store) WriteArguments(w io.Writer) {
	for i, a := range s.argv {
		fmt.Fprintf(w, "Argument %d: %s\n", i, a)
	}
}

// -----

// FusedValue checks whether argument a matches flag in the fused
// "flag=value" form: a must have flag as a prefix and contain a "="
// anywhere. Returns the text after the first "=" and a flag
// indicating whether the form matched.
func fusedValue(a, flag string) (string, bool) {
	if !strings.HasPrefix(a, flag) {
		return "", false
	}

	eq := strings.IndexByte(a, '=')
	if eq < 0 {
		return "", false
	}

	return a[eq+1:], true
}

// MatchToken reports whether s equals one of the tokens.
func matchToken(s string, tokens []string) bool {
	for _, t := range tokens {
		if s == t {
			return true
		}
	}
	return false
}

// MatchTokenFold reports whether s equals one of the tokens, ignoring
// case.
func matchTokenFold(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.EqualFold(s, t) {
			return true
		}
	}
	return false
}

// LeadsWithDigit reports whether s begins with an ASCII digit.
func leadsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Atoi parses s with C atoi semantics: optional leading whitespace,
// optional sign, then the longest run of digits. Anything that yields
// no digits at all reads as 0; trailing garbage is ignored.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	sign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		n = n*10 + int(s[i]-'0')
	}

	return sign * n
}

// Atof parses s with C atof semantics: optional leading whitespace,
// then the longest prefix forming a valid decimal number, with an
// optional exponent. Anything that yields no digits at all reads as
// 0.0; trailing garbage is ignored.
func atof(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return 0.0
	}

	// Exponent counts only if at least one digit follows it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	f, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0.0
	}

	return f
}
