package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zabbix-template/internal/model"
)

func TestLoadTriggers(t *testing.T) {
	content := `
- name: MySQL is down
  expression: '{TEMPLATE:proc.num[mysqld].last(0)}=0'
  severity: High
- name: Slave is stopped
  expression: '{TEMPLATE:MySQL.running-slave.last(0)}=0'
  severity: Average
  dependencies:
    - MySQL is down
`
	path := writeFile(t, "mysql.yml", content)

	triggers, err := LoadTriggers(path, false)
	require.NoError(t, err)
	require.Len(t, triggers, 2)

	assert.Equal(t, "MySQL is down", triggers[0].Name)
	assert.Equal(t, "High", triggers[0].Severity)
	assert.Empty(t, triggers[0].Dependencies)
	assert.Equal(t, []string{"MySQL is down"}, triggers[1].Dependencies)
}

func TestLoadTriggers_MissingFile(t *testing.T) {
	t.Run("optional", func(t *testing.T) {
		triggers, err := LoadTriggers("/nonexistent/mysql.yml", false)
		require.NoError(t, err)
		assert.Empty(t, triggers)
	})

	t.Run("required", func(t *testing.T) {
		_, err := LoadTriggers("/nonexistent/mysql.yml", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestLoadTriggers_EmptyDocument(t *testing.T) {
	path := writeFile(t, "empty.yml", "# no triggers yet\n")

	triggers, err := LoadTriggers(path, true)
	require.NoError(t, err)
	assert.Empty(t, triggers)
}

func TestLoadTriggers_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown severity",
			content: "- name: t\n  expression: '{TEMPLATE:x.last(0)}=0'\n  severity: Critical\n",
			want:    "severity",
		},
		{
			name:    "missing expression",
			content: "- name: t\n",
			want:    "expression",
		},
		{
			name:    "missing name",
			content: "- expression: '{TEMPLATE:x.last(0)}=0'\n",
			want:    "name",
		},
		{
			name:    "not a list",
			content: "name: t\n",
			want:    "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "triggers.yml", tt.content)
			_, err := LoadTriggers(path, false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadExtraItems(t *testing.T) {
	content := `
- key: slave_lag
  name: Slave lag
  unit: s
  update_interval: 60
- key: MySQL.version
  name: MySQL version
  is_text: true
  do_not_convert_to_trapper: true
- key: wsrep_ready
  name: Galera ready
  is_bool: true
  value_storage_type: As is
  prototype_suffix: '[ready]'
  category: wsrep
`
	path := writeFile(t, "items.yml", content)

	items, err := LoadExtraItems(path)
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.NotNil(t, items[0].UpdateInterval)
	assert.Equal(t, 60, *items[0].UpdateInterval)
	assert.Equal(t, "s", items[0].Unit)

	assert.True(t, items[1].IsText)
	assert.True(t, items[1].DoNotConvertToTrapper)
	assert.Nil(t, items[1].UpdateInterval)

	assert.True(t, items[2].IsBool)
	assert.Equal(t, "As is", items[2].ValueStorageType)
	assert.Equal(t, "[ready]", items[2].PrototypeSuffix)
	assert.Equal(t, model.CategoryWsrep, items[2].Category)
}

func TestLoadExtraItems_MissingFile(t *testing.T) {
	items, err := LoadExtraItems("/nonexistent/items.yml")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadExtraItems_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown storage type", "- key: a\n  name: A\n  value_storage_type: Absolute\n", "value_storage_type"},
		{"unknown category", "- key: a\n  name: A\n  category: replication\n", "category"},
		{"missing key", "- name: A\n", "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "items.yml", tt.content)
			_, err := LoadExtraItems(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

const testPHPScript = `<?php
# Define the variables to output.
$keys = array(
   'Key_read_requests'           =>  'a0',
   # 'Key_reads'                 =>  'a1',
   'Threads_connected'           =>  'a2',
   'pool_size'                   =>  'c3',
);

function ss_get_mysql_stats( $options ) {
   $other = array(
      'x' => 'y',
   );
}
`

func TestLoadKeyTable(t *testing.T) {
	path := writeFile(t, "ss_get_mysql_stats.php", testPHPScript)

	table, err := LoadKeyTable(path)
	require.NoError(t, err)

	assert.Equal(t, model.KeyTable{
		"Key_read_requests": "a0",
		"Threads_connected": "a2",
		"pool_size":         "c3",
	}, table)
}

func TestLoadKeyTable_Errors(t *testing.T) {
	t.Run("file not found", func(t *testing.T) {
		_, err := LoadKeyTable("/nonexistent/script.php")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("no table", func(t *testing.T) {
		path := writeFile(t, "script.php", "<?php\necho 'hello';\n")
		_, err := LoadKeyTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("unterminated", func(t *testing.T) {
		path := writeFile(t, "script.php", "<?php\n$keys = array(\n 'a' => 'b',\n")
		_, err := LoadKeyTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not terminated")
	})
}
