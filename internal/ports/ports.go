// Package ports resolves port specification strings into scan port sets.
package ports

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSpec is returned when a token in a port specification cannot be
// parsed as a port number or a start-end range.
var ErrInvalidSpec = errors.New("invalid port specification")

// defaultPorts is the curated set scanned when no specification is given.
var defaultPorts = []int{
	21, 22, 23, 25, 53, 80, 110, 135, 139, 143, 389,
	443, 445, 465, 587, 993, 995, 1433, 1521, 1723,
	3306, 3389, 5432, 5900, 6379, 8080, 8443,
}

// Default returns a copy of the curated default port list in its authored order.
func Default() []int {
	return append([]int(nil), defaultPorts...)
}

// Parse expands a comma-separated list of ports and inclusive start-end
// ranges into a sorted, deduplicated set restricted to 1-65535. An empty
// specification resolves to the default list. Values outside the valid range
// are dropped and a reversed range contributes nothing; neither is an error,
// so the caller decides whether an empty result is acceptable.
func Parse(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return Default(), nil
	}

	seen := make(map[int]struct{})
	add := func(p int) {
		if p >= 1 && p <= 65535 {
			seen[p] = struct{}{}
		}
	}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.Contains(token, "-") {
			bounds := strings.SplitN(token, "-", 2)
			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, fmt.Errorf("%w: bad range %q", ErrInvalidSpec, token)
			}
			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, fmt.Errorf("%w: bad range %q", ErrInvalidSpec, token)
			}
			if start < 1 {
				start = 1
			}
			if end > 65535 {
				end = 65535
			}
			for p := start; p <= end; p++ {
				add(p)
			}
			continue
		}
		port, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: bad port %q", ErrInvalidSpec, token)
		}
		add(port)
	}

	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)
	return out, nil
}
