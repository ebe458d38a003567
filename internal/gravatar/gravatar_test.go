package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("john@example.com")
	want := "https://www.gravatar.com/avatar/d4c74594d841139328695756648b6bd6?s=200&r=pg&d=mm"
	assert.Equal(t, want, URL("john@example.com"))
}

func TestURLNormalizesInput(t *testing.T) {
	assert.Equal(t, URL("john@example.com"), URL("  John@Example.COM  "))
}
