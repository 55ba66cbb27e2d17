package geomcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenameExt(t *testing.T) {
	assert.Equal(t, "scene.html", renameExt("scene.json", ".html"))
	assert.Equal(t, "scene.html", renameExt("scene", ".html"))
	assert.Equal(t, "dir.v2/scene.html", renameExt("dir.v2/scene.json", ".html"))
}
