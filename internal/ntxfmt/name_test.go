package ntxfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NTX0000", PartName(0))
	assert.Equal(t, "NTX0007", PartName(7))
	assert.Equal(t, "NTX0042", PartName(42))
	assert.Equal(t, "NTX9999", PartName(9999))

	// Ids above 9999 widen but stay within the 8-byte name limit.
	assert.Equal(t, "NTX65535", PartName(65535))
	assert.LessOrEqual(t, len(PartName(65535)), 8)
}
