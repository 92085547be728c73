package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDefinition is a trimmed Cacti definition in the Perl hash format.
const testDefinition = `# +-----------------------------------------------------+
# | Cacti template definition                            |
# +-----------------------------------------------------+
{
   name       => 'MySQL Server',
   graphs     => [
      {  name       => 'InnoDB Buffer Pool',
         base_value => '1024',
         hash       => 'hash_graph_templates_1',
         dt         => {
            hash       => 'hash_data_templates_1',
            input      => 'Get MySQL Stats',
            pool_size  => {
               data_source_type_id => '1',
               hash                => 'hash_data_template_items_1',
            },
            # commented out => ignored
            database_pages => {
               data_source_type_id => 2,
               hash                => 'hash_data_template_items_2',
            },
         },
         items      => [
            {  item   => 'pool_size',
               color  => '3D1500',
               task   => 'hash_graph_template_items_1',
               type   => 'AREA',
               hash   => 'hash_graph_template_items_2',
            },
            {  item   => 'database_pages',
               color  => 'EDAA41',
               type   => 'LINE2',
               cdef   => 'Negate',
            },
         ],
      },
   ],
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefinition_Success(t *testing.T) {
	path := writeFile(t, "mysql.def", testDefinition)

	def, err := LoadDefinition(path)
	require.NoError(t, err)

	assert.Equal(t, "MySQL Server", def.Name)
	require.Len(t, def.Graphs, 1)

	g := def.Graphs[0]
	assert.Equal(t, "InnoDB Buffer Pool", g.Name)
	assert.Equal(t, 1024, g.BaseValue.Int())

	// hash/input are metadata, document order is kept
	require.Len(t, g.DataSources, 2)
	assert.Equal(t, "pool_size", g.DataSources[0].Name)
	assert.Equal(t, 1, g.DataSources[0].TypeID.Int())
	assert.Equal(t, "database_pages", g.DataSources[1].Name)
	assert.Equal(t, 2, g.DataSources[1].TypeID.Int())

	require.Len(t, g.Series, 2)
	assert.Equal(t, "pool_size", g.Series[0].Item)
	assert.Equal(t, "3D1500", g.Series[0].Color)
	assert.Equal(t, "AREA", g.Series[0].Type)
	assert.Empty(t, g.Series[0].CDEF)
	assert.Equal(t, "Negate", g.Series[1].CDEF)
}

func TestLoadDefinition_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadDefinition("")
		assert.Error(t, err)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadDefinition("/nonexistent/mysql.def")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, "bad.def", "{ name => 'MySQL', graphs => [ { name => ")
		_, err := LoadDefinition(path)
		assert.Error(t, err)
	})

	t.Run("invalid base value", func(t *testing.T) {
		path := writeFile(t, "bad.def", "{ name => 'MySQL', graphs => [ { name => 'g', base_value => 'abc' } ] }")
		_, err := LoadDefinition(path)
		assert.Error(t, err)
	})

	t.Run("no name", func(t *testing.T) {
		path := writeFile(t, "noname.def", "{ graphs => [] }")
		_, err := LoadDefinition(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})
}

func TestNormalizePerlHash(t *testing.T) {
	in := "{\n  # a => 'b'\n   #x\n  a => 'b',\n  c => 'd=>e',\n}\n"
	got := string(normalizePerlHash([]byte(in)))

	assert.Equal(t, "{\n\n\n  a : 'b',\n  c : 'd:e',\n}\n\n", got)
}
