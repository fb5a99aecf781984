package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDSN_Defaults(t *testing.T) {
	dsn, err := getDSN("board", "secret", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "board:secret@tcp(127.0.0.1:3306)/blackboard_db?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestGetDSN_RequiresUser(t *testing.T) {
	_, err := getDSN("", "secret", "db", "3307", "boards")
	assert.Error(t, err)
}
