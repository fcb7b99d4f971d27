package bytesutil

import "fmt"

const (
	KIBI int64 = 1 << 10
	MEBI       = KIBI << 10
	GIBI       = MEBI << 10
	TEBI       = GIBI << 10
	PEBI       = TEBI << 10
	EXBI       = PEBI << 10
)

var binaryUnits = []struct {
	size   int64
	suffix string
}{
	{EXBI, "EiB"},
	{PEBI, "PiB"},
	{TEBI, "TiB"},
	{GIBI, "GiB"},
	{MEBI, "MiB"},
	{KIBI, "KiB"},
}

// BinaryFormat formats a byte count with 1024-based units, e.g. "2.70 MiB".
// Negative counts format as empty string.
func BinaryFormat(size int64) string {
	if size < 0 {
		return ""
	}
	for _, unit := range binaryUnits {
		if size >= unit.size {
			return fmt.Sprintf("%.2f %s", float64(size)/float64(unit.size), unit.suffix)
		}
	}
	return fmt.Sprintf("%d B", size)
}

// BinaryFormatU is BinaryFormat for counters reported as uint64 (e.g. by runtime.MemStats)
func BinaryFormatU(size uint64) string {
	if size > uint64(1<<63-1) {
		return BinaryFormat(1<<63 - 1)
	}
	return BinaryFormat(int64(size))
}
