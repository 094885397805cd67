package forest

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bjulian5/integrate/internal/model"
)

var (
	// ErrUnparseableLogLine is returned when a git log line is not "<parent> <parent>... <date>"
	ErrUnparseableLogLine = errors.New("unparseable merge log line")

	// ErrUnparseableRefLine is returned when a pull request head ref line is malformed
	ErrUnparseableRefLine = errors.New("unparseable pull request ref line")
)

var pullHeadRefRegex = regexp.MustCompile(`^([0-9a-fA-F]+)\s+refs/pull/(\d+)/head$`)

// RefMap maps a commit hash to the pull request whose head points at it
type RefMap map[string]int

// ParseMergeRecord parses one line of `git log --merges --pretty=format:'%P %cI'`.
// Surrounding quotes left by the pretty format are stripped.
func ParseMergeRecord(line string) (model.MergeRecord, error) {
	trimmed := strings.Trim(strings.TrimSpace(line), `'"`)
	fields := strings.Fields(trimmed)

	// at least two parents plus the date
	if len(fields) < 3 {
		return model.MergeRecord{}, fmt.Errorf("%w: %q", ErrUnparseableLogLine, line)
	}

	return model.MergeRecord{
		Parents: fields[:len(fields)-1],
		Date:    fields[len(fields)-1],
	}, nil
}

// ParseMergeLog parses every non-blank line of a merge log.
// A single malformed line fails the whole log.
func ParseMergeLog(lines []string) ([]model.MergeRecord, error) {
	records := make([]model.MergeRecord, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := ParseMergeRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// ParseRefs builds a RefMap from `git ls-remote <remote> pull/*/head` output.
//
// Lines that are not pull request head refs are ignored. Lines that name a
// pull request head ref but cannot be parsed fail the whole listing. When
// the same hash is listed for several pull requests the first one wins.
func ParseRefs(lines []string) (RefMap, error) {
	refs := make(RefMap)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !isPullHeadRef(line) {
			continue
		}

		match := pullHeadRefRegex.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnparseableRefLine, line)
		}

		number, err := strconv.Atoi(match[2])
		if err != nil || number <= 0 {
			return nil, fmt.Errorf("%w: invalid pull request number in %q", ErrUnparseableRefLine, line)
		}

		hash := strings.ToLower(match[1])
		if _, exists := refs[hash]; exists {
			continue
		}
		refs[hash] = number
	}
	return refs, nil
}

func isPullHeadRef(line string) bool {
	return strings.Contains(line, "refs/pull/") && strings.HasSuffix(line, "/head")
}
