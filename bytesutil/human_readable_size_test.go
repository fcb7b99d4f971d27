package bytesutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryFormat(t *testing.T) {
	tests := map[int64]string{
		-1:                  "",
		0:                   "0 B",
		1023:                "1023 B",
		2140:                "2.09 KiB",
		2828382:             "2.70 MiB",
		2341234123412341234: "2.03 EiB",
	}
	for value, expected := range tests {
		assert.Equal(t, expected, BinaryFormat(value))
	}
}

func TestBinaryFormatU(t *testing.T) {
	assert.Equal(t, "2.70 MiB", BinaryFormatU(2828382))
	assert.Equal(t, "8.00 EiB", BinaryFormatU(1<<64-1))
}
