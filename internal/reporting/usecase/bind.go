package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"reporting-srv/internal/reporting"
)

var (
	placeholderRe = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)
	// wholeLiteralRe matches a string literal body that is exactly one placeholder: '${name}'.
	wholeLiteralRe = regexp.MustCompile(`^\$\{([A-Za-z0-9_]+)\}$`)
)

// bindParameters rewrites the ${name} placeholders of sqlText. params is keyed by "${name}".
//
// A placeholder outside string literals, or one that is a whole literal ('${name}'), becomes a
// positional $n argument; a repeated name reuses its argument. A placeholder embedded in a
// longer literal ('%${name}%') is substituted into the literal with its quotes escaped, since
// Postgres does not bind parameters inside literals.
func bindParameters(sqlText string, params map[string]string) (string, []any, error) {
	b := &binder{params: params, position: map[string]int{}}

	var out strings.Builder
	rest := sqlText
	for {
		i := strings.IndexByte(rest, '\'')
		if i < 0 {
			out.WriteString(b.bindBare(rest))
			break
		}
		out.WriteString(b.bindBare(rest[:i]))

		escapeString := i > 0 && (rest[i-1] == 'E' || rest[i-1] == 'e')
		end := literalEnd(rest, i, escapeString)
		out.WriteString(b.bindLiteral(rest[i:end], escapeString))
		rest = rest[end:]
	}

	if b.missing != "" {
		return "", nil, &reporting.MissingParameterError{Name: b.missing}
	}
	return out.String(), b.args, nil
}

type binder struct {
	params   map[string]string
	args     []any
	position map[string]int
	missing  string
}

// arg returns the positional reference for name, appending its value on first use.
func (b *binder) arg(name string) (string, bool) {
	if n, ok := b.position[name]; ok {
		return "$" + strconv.Itoa(n), true
	}
	v, ok := b.value(name)
	if !ok {
		return "", false
	}
	b.args = append(b.args, v)
	b.position[name] = len(b.args)
	return "$" + strconv.Itoa(len(b.args)), true
}

func (b *binder) value(name string) (string, bool) {
	v, ok := b.params["${"+name+"}"]
	if !ok && b.missing == "" {
		b.missing = name
	}
	return v, ok
}

func (b *binder) bindBare(segment string) string {
	return placeholderRe.ReplaceAllStringFunc(segment, func(m string) string {
		ref, ok := b.arg(m[2 : len(m)-1])
		if !ok {
			return m
		}
		return ref
	})
}

// bindLiteral handles one quoted literal, quotes included.
func (b *binder) bindLiteral(lit string, escapeString bool) string {
	if len(lit) < 2 || lit[len(lit)-1] != '\'' {
		// unterminated, leave it to the database to reject
		return lit
	}
	body := lit[1 : len(lit)-1]
	if !strings.Contains(body, "${") {
		return lit
	}

	if m := wholeLiteralRe.FindStringSubmatch(body); m != nil && !escapeString {
		if ref, ok := b.arg(m[1]); ok {
			return ref
		}
		return lit
	}

	body = placeholderRe.ReplaceAllStringFunc(body, func(m string) string {
		v, ok := b.value(m[2 : len(m)-1])
		if !ok {
			return m
		}
		if escapeString {
			v = strings.ReplaceAll(v, `\`, `\\`)
		}
		return strings.ReplaceAll(v, "'", "''")
	})
	return "'" + body + "'"
}

// literalEnd returns the index just past the literal opened at sqlText[start].
// A doubled quote stays inside the literal, as does a backslash-escaped one in an E string.
func literalEnd(sqlText string, start int, escapeString bool) int {
	for j := start + 1; j < len(sqlText); j++ {
		if escapeString && sqlText[j] == '\\' {
			j++
			continue
		}
		if sqlText[j] != '\'' {
			continue
		}
		if j+1 < len(sqlText) && sqlText[j+1] == '\'' {
			j++
			continue
		}
		return j + 1
	}
	return len(sqlText)
}
