package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
)

func TestBuildGroupsBuiltinPages(t *testing.T) {
	t.Parallel()

	menu := Build(pages.Builtin(), "/")

	var keys []string
	for _, group := range menu {
		keys = append(keys, group.Key)
	}
	require.Equal(t, []string{"introduction", "protocol-core", "sdks", "deployment"}, keys)

	var ids []string
	for _, entry := range menu.Entries() {
		ids = append(ids, entry.ID)
	}
	require.Equal(t, []string{
		"home", "protocol", "sdk-python", "sdk-js", "sdk-flutter", "installation", "deployment",
	}, ids)
	require.Equal(t, "/docs/sdk-js", menu[2].Entries[1].Href)
	_, ok := menu.ActiveEntry()
	require.False(t, ok, "freshly built menu has no active entry")
}

func TestBuildPlacesCustomGroupsLast(t *testing.T) {
	t.Parallel()

	reg := pages.Builtin().Merge(
		pages.Page{ID: "faq", Title: "FAQ", Group: "Support"},
		pages.Page{ID: "changelog", Title: "Changelog"},
	)
	menu := Build(reg, "/docs-site/")

	require.Len(t, menu, 6)
	require.Equal(t, "More", menu[4].Label)
	require.Equal(t, "Support", menu[5].Label)
	require.Equal(t, "/docs-site/docs/faq", menu[5].Entries[0].Href)
}

func TestWithActiveIsExclusive(t *testing.T) {
	t.Parallel()

	base := Build(pages.Builtin(), "/")

	first := base.WithActive(pages.HomeID)
	second := first.WithActive(pages.PythonSDKID)

	active, ok := second.ActiveEntry()
	require.True(t, ok)
	require.Equal(t, pages.PythonSDKID, active.ID)

	count := 0
	for _, entry := range second.Entries() {
		if entry.Active {
			count++
		}
	}
	require.Equal(t, 1, count)

	stillHome, _ := first.ActiveEntry()
	require.Equal(t, pages.HomeID, stillHome.ID, "WithActive must not mutate the receiver")

	none := second.WithActive("missing")
	_, ok = none.ActiveEntry()
	require.False(t, ok)
}

func TestNeighbours(t *testing.T) {
	t.Parallel()

	menu := Build(pages.Builtin(), "/").WithActive(pages.HomeID)

	prev, next := menu.Neighbours(pages.HomeID)
	require.Nil(t, prev)
	require.NotNil(t, next)
	require.Equal(t, pages.ProtocolID, next.ID)

	prev, next = menu.Neighbours(pages.ProtocolID)
	require.Equal(t, pages.HomeID, prev.ID)
	require.False(t, prev.Active)
	require.Equal(t, pages.PythonSDKID, next.ID)

	prev, next = menu.Neighbours(pages.DeploymentID)
	require.Equal(t, pages.InstallationID, prev.ID)
	require.Nil(t, next)

	prev, next = menu.Neighbours("missing")
	require.Nil(t, prev)
	require.Nil(t, next)
}

func TestJoinBasePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/docs/home", JoinBasePath("", "docs/home"))
	require.Equal(t, "/docs/home", JoinBasePath("/", "/docs/home"))
	require.Equal(t, "/site/docs/home", JoinBasePath("site/", "docs/home"))
	require.Equal(t, "/site/public/static/style.css", JoinBasePath("/site", "public/static/style.css"))
}
