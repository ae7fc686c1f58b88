package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneForDatabase(t *testing.T) {
	master := &DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "camate",
		Password: "secret",
		DBName:   "camate_master",
		SSLMode:  "require",
	}

	clone := master.CloneForDatabase("ca_caabc123_db")

	assert.Equal(t, "ca_caabc123_db", clone.DBName)
	assert.Equal(t, master.Host, clone.Host)
	assert.Equal(t, master.Port, clone.Port)
	assert.Equal(t, master.User, clone.User)
	assert.Equal(t, master.Password, clone.Password)
	assert.Equal(t, master.SSLMode, clone.SSLMode)

	// The master config itself is untouched.
	assert.Equal(t, "camate_master", master.DBName)
}

func TestBuildDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "camate",
		Password: "secret",
		DBName:   "ca_caabc123_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=camate password=secret dbname=ca_caabc123_db sslmode=disable",
		cfg.buildDSN())
}
