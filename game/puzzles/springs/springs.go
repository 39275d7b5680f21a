// Package springs counts the arrangements of damaged springs that agree with
// a condition record.
//
// A record lists springs as operational (.), damaged (#) or unknown (?),
// followed by the sizes of the contiguous damaged groups in order. Counting
// is a memoized recurrence over (spring index, current run length, group
// index), which keeps unfolded records tractable.
package springs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/gridsearch/game/grid"
)

const (
	Operational = '.'
	Damaged     = '#'
	Unknown     = '?'
)

// Record is one condition record
type Record struct {
	Springs string
	Groups  []int
}

// ParseRecord reads a line such as "???.### 1,1,3"
func ParseRecord(line string) (Record, error) {
	springs, list, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Record{}, fmt.Errorf("%w: record %q has no group list", grid.ErrMalformedInput, line)
	}

	for _, r := range springs {
		if r != Operational && r != Damaged && r != Unknown {
			return Record{}, fmt.Errorf("%w: unexpected spring %q in %q", grid.ErrMalformedInput, r, line)
		}
	}

	var groups []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 1 {
			return Record{}, fmt.Errorf("%w: invalid group size %q in %q", grid.ErrMalformedInput, field, line)
		}
		groups = append(groups, n)
	}

	return Record{Springs: springs, Groups: groups}, nil
}

// Parse reads one record per line
func Parse(lines []string) ([]Record, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no records", grid.ErrMalformedInput)
	}

	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		r, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Unfold repeats the springs copies times joined by unknowns and repeats the
// group list copies times.
func (r Record) Unfold(copies int) Record {
	springs := make([]string, copies)
	groups := make([]int, 0, copies*len(r.Groups))
	for i := 0; i < copies; i++ {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(springs, string(Unknown)), Groups: groups}
}

type key struct {
	item  int
	run   int
	group int
}

// counter owns the memo table of a single record. err holds the first
// overflow, after which counts are meaningless.
type counter struct {
	record Record
	memo   map[key]int
	err    error
}

// Count returns the number of arrangements that match the record. Counts
// beyond the range of int fail with grid.ErrOverflow.
func (r Record) Count() (int, error) {
	c := &counter{record: r, memo: make(map[key]int)}
	n := c.count(key{})
	if c.err != nil {
		return 0, fmt.Errorf("record %q: %w", r.Springs, c.err)
	}
	return n, nil
}

func (c *counter) add(total, n int) int {
	sum, err := grid.CheckedAdd(total, n)
	if err != nil && c.err == nil {
		c.err = err
	}
	return sum
}

func (c *counter) count(k key) int {
	if v, ok := c.memo[k]; ok {
		return v
	}

	springs, groups := c.record.Springs, c.record.Groups
	if k.item == len(springs) {
		switch {
		case k.run == 0 && k.group == len(groups):
			return 1
		case k.group == len(groups)-1 && groups[k.group] == k.run:
			return 1
		}
		return 0
	}

	total := 0
	s := springs[k.item]

	if s == Damaged || s == Unknown {
		if k.group < len(groups) && k.run < groups[k.group] {
			total = c.add(total, c.count(key{item: k.item + 1, run: k.run + 1, group: k.group}))
		}
	}

	if s == Operational || s == Unknown {
		switch {
		case k.run == 0:
			total = c.add(total, c.count(key{item: k.item + 1, group: k.group}))
		case groups[k.group] == k.run:
			total = c.add(total, c.count(key{item: k.item + 1, group: k.group + 1}))
		}
	}

	c.memo[k] = total
	return total
}

// Total sums the arrangement counts of every record unfolded copies times
func Total(records []Record, copies int) (int, error) {
	total := 0
	for i, r := range records {
		if copies > 1 {
			r = r.Unfold(copies)
		}
		n, err := r.Count()
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if total, err = grid.CheckedAdd(total, n); err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return total, nil
}
