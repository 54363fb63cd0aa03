package search

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Query is a compiled, executable statement with positional arguments. The
// search core never runs it; that is the store's job.
type Query struct {
	SQL  string
	Args []any
}

// Sentinels used to keep the cursor comparison and the ORDER BY on the same
// ordering. COALESCE-ing a null sort-key component to one past its domain is
// equivalent to ASC NULLS LAST and lets the resume position be a single
// composite row comparison.
const (
	dayOfWeekNullSentinel = 7
	minutesNullSentinel   = minutesPerDay + 1
)

const searchSelect = `
SELECT s.id                AS schedule_id,
       s.schedule_type,
       s.day_of_week_utc,
       s.day_of_month,
       s.start_at_utc,
       s.end_at_utc,
       s.start_minutes_utc,
       s.end_minutes_utc,
       s.languages,
       a.id                AS activity_id,
       a.name              AS activity_name,
       a.description,
       a.category,
       a.min_age,
       a.max_age,
       a.image_url,
       o.id                AS organization_id,
       o.name              AS organization_name,
       l.id                AS location_id,
       l.name              AS location_name,
       l.city,
       p.min_price_cents
  FROM schedule_entries s
  JOIN activities a     ON a.id = s.activity_id
  JOIN organizations o  ON o.id = a.organization_id
  JOIN locations l      ON l.id = a.location_id
  LEFT JOIN LATERAL (
       SELECT MIN(pp.price_cents) AS min_price_cents
         FROM pricing_plans pp
        WHERE pp.activity_id = a.id
  ) p ON true`

// BuildSearchQuery deterministically compiles a validated filter set into one
// paginated statement. Each absent filter field contributes no predicate.
// Results are ordered by (day_of_week_utc, start_minutes_utc, id) ascending
// with nulls last; the id component makes the order total, which cursor
// resumption relies on. Pagination is always cursor-based, never OFFSET, so the
// cost of a page does not grow with its depth.
func BuildSearchQuery(f Filters) (Query, error) {
	if err := f.Validate(); err != nil {
		return Query{}, err
	}

	var (
		clauses []string
		args    []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.StartMinutesUTC != nil || f.EndMinutesUTC != nil {
		reqStart, reqEnd := 0, minutesPerDay
		if f.StartMinutesUTC != nil {
			reqStart = *f.StartMinutesUTC
		}
		if f.EndMinutesUTC != nil {
			reqEnd = *f.EndMinutesUTC
		}
		clauses = append(clauses, timeWindowClause(arg(reqStart), arg(reqEnd)))
	}

	if f.DayOfWeekUTC != nil {
		clauses = append(clauses, fmt.Sprintf("s.day_of_week_utc = %s", arg(*f.DayOfWeekUTC)))
	}
	if f.AgeMin != nil {
		clauses = append(clauses, fmt.Sprintf("a.max_age >= %s", arg(*f.AgeMin)))
	}
	if f.AgeMax != nil {
		clauses = append(clauses, fmt.Sprintf("a.min_age <= %s", arg(*f.AgeMax)))
	}
	if f.Term != nil && *f.Term != "" {
		p := arg("%" + *f.Term + "%")
		clauses = append(clauses, fmt.Sprintf("(a.name ILIKE %s OR a.description ILIKE %s)", p, p))
	}
	if f.Category != nil {
		clauses = append(clauses, fmt.Sprintf("a.category = %s", arg(*f.Category)))
	}
	if f.City != nil {
		clauses = append(clauses, fmt.Sprintf("l.city = %s", arg(*f.City)))
	}
	if len(f.Languages) > 0 {
		clauses = append(clauses, fmt.Sprintf("s.languages && %s", arg(pq.Array(f.Languages))))
	}

	if f.Cursor != nil {
		clauses = append(clauses, cursorClause(f.Cursor, arg))
	}

	var b strings.Builder
	b.WriteString(searchSelect)
	if len(clauses) > 0 {
		b.WriteString("\n WHERE ")
		b.WriteString(strings.Join(clauses, "\n   AND "))
	}
	b.WriteString(fmt.Sprintf(`
 ORDER BY COALESCE(s.day_of_week_utc, %d) ASC,
          COALESCE(s.start_minutes_utc, %d) ASC,
          s.id ASC
 LIMIT %s`, dayOfWeekNullSentinel, minutesNullSentinel, arg(f.PageSize())))

	return Query{SQL: b.String(), Args: args}, nil
}

// timeWindowClause matches schedule entries whose own minute window overlaps
// the requested half-open window [reqStart, reqEnd). Three cases:
//   - either entry bound null: no bounded window, always matches;
//   - plain entry (start <= end): standard interval overlap;
//   - wrapped entry (start > end): the entry covers [start, 1440) and
//     [0, end), so it matches if the request overlaps either piece. Since the
//     request never wraps, "overlaps [start, 1440)" reduces to start < reqEnd
//     and "overlaps [0, end)" to end > reqStart.
//
// The wrapped branch has to be an explicit disjunction; folding it into the
// plain overlap comparison silently drops every entry that crosses midnight.
func timeWindowClause(reqStart, reqEnd string) string {
	return fmt.Sprintf(`(
       s.start_minutes_utc IS NULL OR s.end_minutes_utc IS NULL
       OR (s.start_minutes_utc <= s.end_minutes_utc
           AND s.start_minutes_utc < %[2]s AND s.end_minutes_utc > %[1]s)
       OR (s.start_minutes_utc > s.end_minutes_utc
           AND (s.start_minutes_utc < %[2]s OR s.end_minutes_utc > %[1]s))
     )`, reqStart, reqEnd)
}

// cursorClause resumes strictly after the cursor's sort key. It must be one
// composite row comparison: three independent comparisons would skip rows that
// tie on an earlier key component and admit rows that should already have been
// returned.
func cursorClause(c *Cursor, arg func(any) string) string {
	return fmt.Sprintf(`(COALESCE(s.day_of_week_utc, %[1]d), COALESCE(s.start_minutes_utc, %[2]d), s.id)
       > (COALESCE(%[3]s::int, %[1]d), COALESCE(%[4]s::int, %[2]d), %[5]s::uuid)`,
		dayOfWeekNullSentinel, minutesNullSentinel,
		arg(c.DayOfWeekUTC), arg(c.StartMinutesUTC), arg(c.ScheduleID))
}
