package notify_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mesonic/internal/adapters/notify"
)

func TestNotifier(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	n := notify.New(&buf)

	n.Info("configured builddir")
	n.Warn("no build directory")
	n.Error("Failed to build tests. Results will not be updated")

	assert.Equal(t,
		"i configured builddir\n"+
			"! no build directory\n"+
			"✗ Failed to build tests. Results will not be updated\n",
		buf.String())
}
