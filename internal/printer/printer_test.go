package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	DisableColor()
}

func TestFprint(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		var buf bytes.Buffer
		err := Fprint(&buf, "Test Error", "This is a test error", nil)
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Equal(t, "Test Error\n\nThis is a test error\n", buf.String())
	})

	t.Run("single suggestion", func(t *testing.T) {
		var buf bytes.Buffer
		_ = Fprint(&buf, "Test Error", "Explanation", []string{"Try this fix"})
		assert.Contains(t, buf.String(), "\nTry this fix\n")
		assert.NotContains(t, buf.String(), "Either:")
	})

	t.Run("multiple suggestions", func(t *testing.T) {
		var buf bytes.Buffer
		_ = Fprint(&buf, "Test Error", "Explanation", []string{"First option", "Second option"})
		assert.Contains(t, buf.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "done\n")
	Warning(&buf, "careful\n")
	Step(&buf, "next\n")
	Info(&buf, "%d blades\n", 8)

	assert.Equal(t, "✓ done\n⚠️  careful\n→ next\n8 blades\n", buf.String())
}

func TestSign(t *testing.T) {
	assert.Equal(t, "e01", Sign(1, "e01"))
	assert.Equal(t, "-e01", Sign(-1, "-e01"))
	assert.Equal(t, "0", Sign(0, "0"))
}
