package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/lnds/daily-log/pkg/entry"
)

// Value queries compare tag values: name=regexp matches the value text,
// name>v and friends compare the value as a timestamp or a number.
var valQueryRe = regexp.MustCompile(`^@?(\w+)(>=|<=|=|>|<)(.+)$`)

type valQuery struct {
	name string
	op   string
	re   *regexp.Regexp
	at   time.Time
	num  float64
	isTime bool
}

func compileValQuery(q string) (*valQuery, error) {
	m := valQueryRe.FindStringSubmatch(q)
	if m == nil {
		return nil, fmt.Errorf("filter: bad value query %q, want name=pattern or name<op>value", q)
	}
	vq := &valQuery{name: m[1], op: m[2]}

	if vq.op == "=" {
		re, err := regexp.Compile(m[3])
		if err != nil {
			return nil, fmt.Errorf("filter: bad value pattern in %q: %w", q, err)
		}
		vq.re = re
		return vq, nil
	}

	if at, err := parseValueTime(m[3]); err == nil {
		vq.at = at
		vq.isTime = true
		return vq, nil
	}
	num, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return nil, fmt.Errorf("filter: value %q in %q is neither a timestamp nor a number", m[3], q)
	}
	vq.num = num
	return vq, nil
}

func (q *valQuery) match(e *entry.Entry) bool {
	v, ok := e.Tags[q.name]
	if !ok {
		return false
	}
	if q.op == "=" {
		return q.re.MatchString(v)
	}
	if q.isTime {
		at, err := parseValueTime(v)
		if err != nil {
			return false
		}
		switch q.op {
		case ">":
			return at.After(q.at)
		case ">=":
			return !at.Before(q.at)
		case "<":
			return at.Before(q.at)
		default:
			return !at.After(q.at)
		}
	}
	num, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return false
	}
	switch q.op {
	case ">":
		return num > q.num
	case ">=":
		return num >= q.num
	case "<":
		return num < q.num
	default:
		return num <= q.num
	}
}

func parseValueTime(v string) (time.Time, error) {
	if at, err := entry.ParseStamp(v); err == nil {
		return at, nil
	}
	return time.ParseInLocation("2006-01-02", v, time.Local)
}

// matchValues keeps entries satisfying every value query.
func matchValues(in []Match, queries []string) ([]Match, error) {
	compiled := make([]*valQuery, 0, len(queries))
	for _, q := range queries {
		vq, err := compileValQuery(q)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, vq)
	}
	return keep(in, func(e *entry.Entry) bool {
		for _, vq := range compiled {
			if !vq.match(e) {
				return false
			}
		}
		return true
	}), nil
}
