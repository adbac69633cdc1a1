package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTOC(t *testing.T) {
	t.Parallel()

	fragment := `<h1>Title</h1>
<div class="card"><h3>Nested <em>card</em></h3></div>
<h2 id="setup">Setup</h2>
<h4>skipped</h4>
<h2>   </h2>
<h3 id=" usage ">Usage</h3>`

	toc := ExtractTOC(fragment)
	require.Equal(t, []Heading{
		{Level: 3, Text: "Nested card"},
		{Level: 2, Text: "Setup", Anchor: "setup"},
		{Level: 3, Text: "Usage", Anchor: "usage"},
	}, toc)
}

func TestExtractTOCEmpty(t *testing.T) {
	t.Parallel()

	require.Nil(t, ExtractTOC(""))
	require.Nil(t, ExtractTOC(FallbackFragment))
}
