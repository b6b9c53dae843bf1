package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	base := &Scaffold{Name: "base", Description: "Base project"}
	rest := &Scaffold{Name: "rest-api", Description: "REST API"}

	r, err := NewRegistry(rest, base)
	require.NoError(t, err)

	got, err := r.Lookup("base")
	require.NoError(t, err)
	assert.Same(t, base, got)

	assert.Equal(t, []string{"base", "rest-api"}, r.Names())

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "base", list[0].Name)
	assert.Equal(t, "rest-api", list[1].Name)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r, err := NewRegistry(&Scaffold{Name: "base"}, &Scaffold{Name: "rest-api"})
	require.NoError(t, err)

	_, err = r.Lookup("django")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScaffold)
	assert.Contains(t, err.Error(), `"django"`)
	assert.Contains(t, err.Error(), "base, rest-api")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	require.NoError(t, r.Register(&Scaffold{Name: "base"}))

	err = r.Register(&Scaffold{Name: "base"})
	assert.ErrorIs(t, err, ErrDuplicateScaffold)

	assert.Error(t, r.Register(&Scaffold{}))
	assert.Error(t, r.Register(nil))

	_, err = NewRegistry(&Scaffold{Name: "a"}, &Scaffold{Name: "a"})
	assert.ErrorIs(t, err, ErrDuplicateScaffold)
}
