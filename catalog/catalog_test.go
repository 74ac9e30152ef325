package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCatalog writes a small catalog tree into a temp dir:
// three data entries (bulbasaur, ivysaur, venusaur) with images for the first
// two, plus one extra image inheriting from bulbasaur.
func newTestCatalog(t *testing.T) (string, *Catalog) {
	t.Helper()
	base := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(base, "Data"), 0755))
	data := "bulbasaur 0.5 grass poison\nivysaur 0.4 grass poison\nvenusaur 0.5 grass poison\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, "Data", "pokemon.txt"), []byte(data), 0644))

	genDir := filepath.Join(base, "Images", "Generation I - Kanto")
	require.NoError(t, os.MkdirAll(genDir, 0755))
	for _, id := range []string{"001", "002"} {
		require.NoError(t, os.WriteFile(filepath.Join(genDir, id+".jpg"), []byte("jpg"), 0644))
	}

	extraDir := filepath.Join(base, "Images", "Extra")
	require.NoError(t, os.MkdirAll(extraDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(extraDir, "bulbasaur-shiny.jpg"), []byte("jpg"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(extraDir, "notes.txt"), []byte("skip me"), 0644))

	c, err := Load(base)
	require.NoError(t, err)
	return base, c
}

func TestLoad(t *testing.T) {
	base, c := newTestCatalog(t)

	assert.Equal(t, 4, c.Len())

	e, err := c.Get("bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, "001", e.ID)
	assert.Equal(t, "kanto", e.Region)
	assert.Equal(t, "grass", e.Type1)
	assert.Equal(t, "poison", e.Type2)
	assert.Equal(t, 0.5, e.DarkThreshold)
	assert.Equal(t, filepath.Join(base, "Images", "Generation I - Kanto", "001.jpg"), e.Path)

	// venusaur has no image on disk, entry still listed without a path
	e, err = c.Get("venusaur")
	require.NoError(t, err)
	assert.Empty(t, e.Path)
}

func TestGetByID(t *testing.T) {
	tests := []struct {
		key      string
		wantName string
		wantErr  bool
	}{
		{key: "2", wantName: "ivysaur"},
		{key: "002", wantName: "ivysaur"},
		{key: "IVYSAUR", wantName: "ivysaur"},
		{key: "9999", wantErr: true},
		{key: "mewtwo", wantErr: true},
		{key: "", wantErr: true},
	}

	_, c := newTestCatalog(t)
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, err := c.Get(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, e.Name)
		})
	}
}

func TestExtrasInherit(t *testing.T) {
	_, c := newTestCatalog(t)

	e, err := c.Get("bulbasaur-shiny")
	require.NoError(t, err)
	assert.Empty(t, e.ID)
	assert.Equal(t, "XX", e.Label())
	assert.Equal(t, "kanto", e.Region)
	assert.Equal(t, "grass", e.Type1)
	assert.Equal(t, 0.5, e.DarkThreshold)
	assert.NotEmpty(t, e.Path)
}

func TestRandom(t *testing.T) {
	_, c := newTestCatalog(t)

	for i := 0; i < 20; i++ {
		e := c.Random()
		require.NotNil(t, e)
		_, err := c.Get(e.Name)
		assert.NoError(t, err)
	}

	empty := &Catalog{byName: map[string]*Entry{}}
	assert.Nil(t, empty.Random())
}

func TestNames(t *testing.T) {
	_, c := newTestCatalog(t)
	assert.Equal(t, []string{"Bulbasaur", "Bulbasaur-shiny", "Ivysaur", "Venusaur"}, c.Names())
}

func TestRegionFor(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "kanto"},
		{151, "kanto"},
		{152, "johto"},
		{386, "hoenn"},
		{493, "sinnoh"},
		{649, "unova"},
		{719, "kalos"},
		{720, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, regionFor(tt.id), "id %d", tt.id)
	}
}

func TestLoadMissingDataFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadMalformedLine(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "Data", "pokemon.txt"), []byte("bulbasaur\n"), 0644))

	_, err := Load(base)
	assert.Error(t, err)
}
