package session

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

var reFileYear = regexp.MustCompile(`^roteiro_(\d{4})`)

// FilterByDate keeps the names whose encoded date matches. Zero month or day
// means any; a zero year disables filtering.
func FilterByDate(names []string, year, month, day int) []string {
	if year == 0 {
		return names
	}

	pattern := fmt.Sprintf(`^roteiro_%04d`, year)
	switch {
	case month > 0 && day > 0:
		pattern += fmt.Sprintf(`%02d%02d`, month, day)
	case month > 0:
		pattern += fmt.Sprintf(`%02d`, month)
	case day > 0:
		pattern += fmt.Sprintf(`\d{2}%02d`, day)
	}
	re := regexp.MustCompile(pattern)

	var out []string
	for _, n := range names {
		if re.MatchString(n) {
			out = append(out, n)
		}
	}
	return out
}

// Years lists the distinct years found in names, newest first.
func Years(names []string) []int {
	seen := make(map[int]bool)
	var years []int
	for _, n := range names {
		m := reFileYear.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		y, _ := strconv.Atoi(m[1])
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
