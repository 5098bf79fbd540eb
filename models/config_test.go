package models

import (
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/assert"
)

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

func TestConfig(t *testing.T) {

	t.Setenv("TABLEBOT_SALT", "seekrit")

	var configData = `

log_level   : debug
api_key     : "12345:token"
salt        : "${TABLEBOT_SALT}"
db_location : "data/bot_db.sqlite"
`
	conf, err := LoadConfig(configData)
	assert.Equal(t, nil, err)
	assert.Equal(t, "12345:token", conf.ApiKey)
	// env interpolation keeps secrets out of the file
	assert.Equal(t, "seekrit", conf.Salt)
	assert.Equal(t, "data/bot_db.sqlite", conf.DbLocation)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, nil, conf.Validate())
}

func TestConfigValidate(t *testing.T) {
	conf := &Config{ApiKey: "k", Salt: "", DbLocation: "x"}
	assert.NotEqual(t, nil, conf.Validate())
}
