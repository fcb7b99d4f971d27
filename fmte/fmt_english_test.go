package fmte

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprintf(t *testing.T) {
	assert.Equal(t, "10,000,000 insertions", Sprintf("%d insertions", 10000000))
	assert.Equal(t, "-2,048", Sprintf("%d", -2048))
}

func TestVerbosePrinting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	restore := SetOutput(&stdout, &stderr)
	defer restore()
	PrintfV("hidden %d\n", 1)
	Printf("shown %d\n", 1000)
	PrintfErr("error %d\n", 2)
	assert.Equal(t, "shown 1,000\n", stdout.String())
	assert.Equal(t, "error 2\n", stderr.String())
}

func TestErrors(t *testing.T) {
	err := Errors("verification failed", []error{errors.New("a"), errors.New("b")})
	assert.EqualError(t, err, "verification failed: a; b")
}
