package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

func TestListTopics(t *testing.T) {
	list, err := List()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	names := make(map[string]string)
	for _, topic := range list {
		assert.NotEmpty(t, topic.Title, "topic %s needs a heading", topic.Name)
		names[topic.Name] = topic.Title
	}
	assert.Contains(t, names, "keybindings")
	assert.Contains(t, names, "fzf")
}

func TestContent(t *testing.T) {
	content, err := Content("keybindings")
	require.NoError(t, err)
	assert.Contains(t, content, "# ")

	_, err = Content("no-such-topic")
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.CodeOf(err))
}

func TestFirstHeading(t *testing.T) {
	assert.Equal(t, "Title", firstHeading("intro\n# Title\nbody"))
	assert.Empty(t, firstHeading("no heading here"))
}
