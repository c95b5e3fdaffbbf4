package timefmt_test

import (
	"testing"
	"time"

	"blogapi/pkg/timefmt"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	rendered := timefmt.Now()
	assert.NotEmpty(t, rendered)

	parsed, err := time.ParseInLocation(timefmt.Layout, rendered, time.Local)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Second)
}
