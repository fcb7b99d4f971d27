package driver

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// RandomValues generates count values where the x-th one is drawn uniformly from [-1000x, 1000x]
func RandomValues(count int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	values := make([]int, count)
	for x := 0; x < count; x++ {
		spread := 1000 * int64(x)
		values[x] = int(r.Int63n(2*spread+1) - spread)
	}
	return values
}

// ReadValues reads newline-separated integers. Blank lines are skipped.
func ReadValues(reader io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text()) // also drops '\r' of Windows line endings
		if line == "" {
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not an integer", lineNumber, line)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading values: %w", err)
	}
	return values, nil
}
