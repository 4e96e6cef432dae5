package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// WriteEDN writes an EDN rendition of v. Values go through encoding/json first so json
// tags decide the keys; keys become kebab-case keywords and RFC 3339 strings become
// #inst literals.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var sb strings.Builder
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.writeAny(&sb, x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) writeAny(sb *strings.Builder, v any, level int) {
	switch t := v.(type) {
	case nil:
		sb.WriteString("nil")
	case bool:
		sb.WriteString(strconv.FormatBool(t))
	case string:
		if _, err := time.Parse(time.RFC3339Nano, t); err == nil {
			sb.WriteString("#inst ")
		}
		sb.WriteString(strconv.Quote(t))
	case float64:
		// JSON numbers decode as float64; print integral ones without a fraction.
		if float64(int64(t)) == t {
			sb.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.writeColl(sb, '[', ']', len(t), level, func(i int) {
			e.writeAny(sb, t[i], level+1)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.writeColl(sb, '{', '}', len(keys), level, func(i int) {
			sb.WriteByte(':')
			sb.WriteString(ednKeyword(keys[i]))
			sb.WriteByte(' ')
			e.writeAny(sb, t[keys[i]], level+1)
		})
	default:
		sb.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func (e ednEncoder) writeColl(sb *strings.Builder, open, close byte, n, level int, item func(i int)) {
	sb.WriteByte(open)
	if n == 0 {
		sb.WriteByte(close)
		return
	}
	if e.pretty {
		sb.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		if e.pretty {
			sb.WriteString(strings.Repeat(" ", (level+1)*e.indent))
		}
		item(i)
		if i != n-1 {
			if e.pretty {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	if e.pretty {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", level*e.indent))
	}
	sb.WriteByte(close)
}

// ednKeyword turns a json key ("isArchive") into a keyword name ("is-archive").
func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r == ' ' || r == '_':
			sb.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
