package tool

import (
	"fmt"

	ierr "github.com/mark3labs/templatetouch/internal/errors"
	"github.com/mark3labs/templatetouch/internal/platform"
)

// ParseTemplateList splits `tt -z` output on the platform line terminator and
// drops the first headerLines lines without looking at them. Output with fewer
// printed lines than the header is reported as an ExternalToolFailure.
func ParseTemplateList(stdout string, p platform.Platform, headerLines int) ([]string, error) {
	if headerLines < 0 {
		return nil, fmt.Errorf("header line count must be >= 0, got %d", headerLines)
	}

	lines := p.SplitLines(stdout)

	// A terminator after the last line leaves an empty element that tt never printed.
	printed := len(lines)
	if lines[printed-1] == "" {
		printed--
	}
	if printed < headerLines {
		return nil, ierr.NewToolFailure("list templates", "", -1, "",
			fmt.Errorf("malformed output: expected at least %d header lines, got %d", headerLines, printed))
	}
	return lines[headerLines:], nil
}
