package loops

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	result, err := LoopResult(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, result)
	assert.Equal(t, "The result is 20\n", buf.String())
}

func TestLabeled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	count, err := Labeled(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	want := "count = 0\n" +
		"remaining = 10\n" +
		"remaining = 9\n" +
		"count = 1\n" +
		"remaining = 10\n" +
		"remaining = 9\n" +
		"count = 2\n" +
		"remaining = 10\n" +
		"End count = 2\n"
	assert.Equal(t, want, buf.String())
}

func TestCollection(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Collection(&buf, DefaultCollection[:]))
	assert.Equal(t,
		"The value is: 10\nThe value is: 20\nThe value is: 30\nThe value is: 40\nThe value is: 50\n",
		buf.String())

	buf.Reset()
	require.NoError(t, Collection(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestDemo(t *testing.T) {
	t.Parallel()
	for _, variant := range Variants {
		var buf bytes.Buffer
		require.NoError(t, Demo(&buf, variant), variant)
		assert.NotEmpty(t, buf.String(), variant)
	}

	var buf bytes.Buffer
	assert.Error(t, Demo(&buf, "while"))
}
