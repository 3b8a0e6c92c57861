// Package locations reconciles two lists of location IDs.
//
// The input is two whitespace-separated columns of integers, one pair per
// line. Parse reads the columns into a pair of sorted lists; Distance and
// Similarity compute the two puzzle answers from them.
package locations

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Errors returned by Parse, wrapped with the offending line.
var (
	ErrMalformedLine  = errors.New("malformed line: expected exactly two integers")
	ErrNonInteger     = errors.New("non-integer token")
	ErrLengthMismatch = errors.New("length mismatch")
)

// Lists is the parsed input: the left and right columns, each sorted in
// ascending order. Left and Right always have the same length.
type Lists struct {
	Left  []int64
	Right []int64
}

// Len reports the number of pairs.
func (l Lists) Len() int { return len(l.Left) }

// ReadFile opens the named file and parses it with Parse.
func ReadFile(name string) (Lists, error) {
	f, err := os.Open(name)
	if err != nil {
		return Lists{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads pairs of integers from r, one pair per line. Leading and
// trailing whitespace is ignored but every line, including a blank one, must
// hold exactly two integers. The returned lists are sorted.
func Parse(r io.Reader) (Lists, error) {
	var l Lists
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		a, b, err := parsePair(line)
		if err != nil {
			return Lists{}, fmt.Errorf("line %d: %w: %q", lineno, err, line)
		}
		l.Left = append(l.Left, a)
		l.Right = append(l.Right, b)
	}
	if err := scanner.Err(); err != nil {
		return Lists{}, err
	}
	if len(l.Left) != len(l.Right) {
		return Lists{}, fmt.Errorf("%w: %d left, %d right", ErrLengthMismatch, len(l.Left), len(l.Right))
	}
	sortInt64s(l.Left)
	sortInt64s(l.Right)
	return l, nil
}

func parsePair(line string) (int64, int64, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	nums := make([]int64, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, 0, ErrNonInteger
		}
		nums[i] = n
	}
	// Every token must be an integer before the count matters.
	if len(nums) != 2 {
		return 0, 0, ErrMalformedLine
	}
	return nums[0], nums[1], nil
}

func sortInt64s(s []int64) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// Distance sums the absolute differences between right[i] and left[i]. If the
// lists differ in length the extra elements of the longer one are ignored.
func Distance(left, right []int64) int64 {
	var total int64
	for i := 0; i < len(left) && i < len(right); i++ {
		d := right[i] - left[i]
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}

// Counts returns the number of times each value occurs in s.
func Counts(s []int64) map[int64]int64 {
	counts := make(map[int64]int64)
	for _, n := range s {
		counts[n]++
	}
	return counts
}

// Similarity computes the similarity score of left and right: each value in
// left is multiplied by the number of times it appears in right, and the
// products are summed.
func Similarity(left, right []int64) int64 {
	counts := Counts(right)
	var score int64
	for _, n := range left {
		score += n * counts[n]
	}
	return score
}
