package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	defer func(v, c string) { Version, GitCommit = v, c }(Version, GitCommit)

	Version, GitCommit = "1.2.3", ""
	assert.Equal(t, "gsperm v1.2.3", String())

	GitCommit = "abc1234"
	assert.Equal(t, "gsperm v1.2.3 (abc1234)", String())
}
