package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("cpu halted", From("cpu halted"))
	assert.Equal("line 3 pc 0x0a", From("line %d pc 0x%02x", 3, 10))
	assert.NotNil(printer)
}
