package sig

import (
	"fmt"
	"strings"

	"github.com/wippyai/jbind/errors"
)

// Parse parses a single field descriptor ("I", "Ljava/lang/String;", "[[B").
func Parse(desc string) (Type, error) {
	t, n, err := parseType(desc, 0, false)
	if err != nil {
		return Type{}, errors.InvalidSignature(desc, err.Error())
	}
	if n != len(desc) {
		return Type{}, errors.InvalidSignature(desc, fmt.Sprintf("trailing data at offset %d", n))
	}
	return t, nil
}

// ParseMethod parses a method descriptor into its parameter and return types.
func ParseMethod(desc string) (params []Type, ret Type, err error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, Type{}, errors.InvalidSignature(desc, "method descriptor must start with '('")
	}

	i := 1
	for {
		if i >= len(desc) {
			return nil, Type{}, errors.InvalidSignature(desc, "missing ')'")
		}
		if desc[i] == ')' {
			i++
			break
		}
		t, next, perr := parseType(desc, i, false)
		if perr != nil {
			return nil, Type{}, errors.InvalidSignature(desc, perr.Error())
		}
		params = append(params, t)
		i = next
	}

	ret, n, perr := parseType(desc, i, true)
	if perr != nil {
		return nil, Type{}, errors.InvalidSignature(desc, perr.Error())
	}
	if n != len(desc) {
		return nil, Type{}, errors.InvalidSignature(desc, fmt.Sprintf("trailing data at offset %d", n))
	}
	return params, ret, nil
}

// parseType reads one type starting at offset i and returns it with the offset
// just past it. Void is only accepted where allowVoid is set.
func parseType(desc string, i int, allowVoid bool) (Type, int, error) {
	if i >= len(desc) {
		return Type{}, i, fmt.Errorf("unexpected end of descriptor")
	}

	switch c := desc[i]; c {
	case 'Z':
		return Boolean, i + 1, nil
	case 'B':
		return Byte, i + 1, nil
	case 'C':
		return Char, i + 1, nil
	case 'S':
		return Short, i + 1, nil
	case 'I':
		return Int, i + 1, nil
	case 'J':
		return Long, i + 1, nil
	case 'F':
		return Float, i + 1, nil
	case 'D':
		return Double, i + 1, nil
	case 'V':
		if !allowVoid {
			return Type{}, i, fmt.Errorf("void is only valid as a return type (offset %d)", i)
		}
		return Void, i + 1, nil
	case 'L':
		end := strings.IndexByte(desc[i:], ';')
		if end < 0 {
			return Type{}, i, fmt.Errorf("unterminated class name at offset %d", i)
		}
		name := desc[i+1 : i+end]
		if name == "" {
			return Type{}, i, fmt.Errorf("empty class name at offset %d", i)
		}
		if !ValidClassName(name) {
			return Type{}, i, fmt.Errorf("class name %q at offset %d is not in slash form", name, i)
		}
		return Object(name), i + end + 1, nil
	case '[':
		elem, next, err := parseType(desc, i+1, false)
		if err != nil {
			return Type{}, i, err
		}
		return Array(elem), next, nil
	default:
		return Type{}, i, fmt.Errorf("invalid type descriptor char '%c' at offset %d", c, i)
	}
}

// ValidClassName reports whether name is a class name in slash form, such as
// java/lang/String.
func ValidClassName(name string) bool {
	if name == "" || strings.ContainsAny(name, ".;[") {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" {
			return false
		}
	}
	return true
}

// CountParams returns the number of parameters of a method descriptor.
func CountParams(desc string) (int, error) {
	params, _, err := ParseMethod(desc)
	if err != nil {
		return 0, err
	}
	return len(params), nil
}
