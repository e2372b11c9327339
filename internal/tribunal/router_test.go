package tribunal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFromCaseNumber(t *testing.T) {
	router := NewDefault()

	c, err := cnj.Parse("0001234-55.2023.8.26.0100")
	require.NoError(t, err)

	entry, err := router.Resolve(c)
	require.NoError(t, err)
	assert.Equal(t, "TJSP", entry.Identifier)
	assert.Equal(t, Key{Branch: 8, Tribunal: 26}, entry.Key)
	assert.Equal(t, "https://api-publica.datajud.cnj.jus.br/api_publica_tjsp/_search", entry.Endpoint)
}

func TestResolveUnknownTribunal(t *testing.T) {
	router := NewDefault()

	c, err := cnj.Parse("0001234-55.2023.8.99.0100")
	require.NoError(t, err)

	_, err = router.Resolve(c)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultTable(t *testing.T) {
	router := NewDefault()

	tests := []struct {
		key      Key
		id       string
		endpoint bool
	}{
		{key: Key{5, 2}, id: "TRT2", endpoint: true},
		{key: Key{4, 1}, id: "TRF1", endpoint: true},
		{key: Key{4, 6}, id: "TRF6", endpoint: true},
		{key: Key{8, 7}, id: "TJDFT", endpoint: true},
		{key: Key{8, 19}, id: "TJRJ", endpoint: true},
		{key: Key{6, 26}, id: "TRE-SP", endpoint: true},
		{key: Key{5, 0}, id: "TST", endpoint: true},
		{key: Key{9, 13}, id: "TJMMG", endpoint: true},
		{key: Key{1, 0}, id: "STF", endpoint: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			entry, err := router.Lookup(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.id, entry.Identifier)
			assert.Equal(t, tt.endpoint, entry.Endpoint != "")
		})
	}

	// 8 superior/military + 6 TRF + 24 TRT + 27 TJ + 27 TRE
	assert.Equal(t, 92, router.Len())

	_, err := router.Lookup(Key{4, 7})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = router.Lookup(Key{5, 25})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegister(t *testing.T) {
	router := New()
	key := Key{Branch: 8, Tribunal: 26}

	require.NoError(t, router.Register(Entry{Key: key, Identifier: "TJSP"}, false))

	err := router.Register(Entry{Key: key, Identifier: "OTHER"}, false)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	entry, err := router.Lookup(key)
	require.NoError(t, err)
	assert.Equal(t, "TJSP", entry.Identifier, "rejected registration must not shadow the existing entry")

	require.NoError(t, router.Register(Entry{Key: key, Identifier: "TJSP", Endpoint: "http://localhost/tjsp"}, true))
	entry, err = router.Lookup(key)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/tjsp", entry.Endpoint)

	assert.Error(t, router.Register(Entry{Key: Key{1, 1}}, false))
}

func TestEntriesSorted(t *testing.T) {
	router := New()
	require.NoError(t, router.Register(Entry{Key: Key{8, 26}, Identifier: "TJSP"}, false))
	require.NoError(t, router.Register(Entry{Key: Key{5, 2}, Identifier: "TRT2"}, false))
	require.NoError(t, router.Register(Entry{Key: Key{8, 1}, Identifier: "TJAC"}, false))

	entries := router.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "TRT2", entries[0].Identifier)
	assert.Equal(t, "TJAC", entries[1].Identifier)
	assert.Equal(t, "TJSP", entries[2].Identifier)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "8.26", Key{8, 26}.String())
	assert.Equal(t, "5.02", Key{5, 2}.String())

	key, err := ParseKey("8.26")
	require.NoError(t, err)
	assert.Equal(t, Key{8, 26}, key)

	key, err = ParseKey("5.2")
	require.NoError(t, err)
	assert.Equal(t, Key{5, 2}, key)

	for _, bad := range []string{"", "8", "8.", "x.26", "10.1", "8.100", "8.26.1"} {
		_, err := ParseKey(bad)
		assert.ErrorIs(t, err, ErrInvalidKey, bad)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tribunais.json")
	content := `[
		{"chave": {"segmento": 8, "tribunal": 26}, "sigla": "TJSP", "endpoint": "http://mirror.local/tjsp"},
		{"chave": {"segmento": 8, "tribunal": 99}, "sigla": "TJXX"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	router := NewDefault()
	_, err := router.LoadFile(path, false)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	router = NewDefault()
	n, err := router.LoadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entry, err := router.Lookup(Key{8, 26})
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.local/tjsp", entry.Endpoint)

	entry, err = router.Lookup(Key{8, 99})
	require.NoError(t, err)
	assert.Equal(t, "TJXX", entry.Identifier)

	_, err = router.LoadFile(filepath.Join(t.TempDir(), "missing.json"), false)
	assert.Error(t, err)
}

func TestConcurrentLookups(t *testing.T) {
	router := NewDefault()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tr := 1; tr <= 27; tr++ {
				_, err := router.Lookup(Key{BranchState, tr})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
