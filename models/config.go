package models

import (
	"fmt"
	"os"

	"github.com/lytics/confl"
)

// LoadConfigFromFile Read a Confl formatted config file from disk.
// Env vars referenced in the file ( ${TABLEBOT_SALT} etc ) are expanded
// so secrets never need to live in the file itself.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(confBytes))
}

// LoadConfig load a confl formatted config from string (assumes came
//  from file or passed in)
func LoadConfig(conf string) (*Config, error) {
	var c Config
	if _, err := confl.Decode(os.ExpandEnv(conf), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Config for the bot process.
// 1) chat transport credentials
// 2) the tenant-naming salt (long lived secret; rotating it orphans
//    every previously derived tenant table)
// 3) storage file location
type Config struct {
	ApiKey     string `json:"api_key"`     // chat transport api credential
	Salt       string `json:"salt"`        // tenant table naming salt
	DbLocation string `json:"db_location"` // sqlite storage file path
	LogLevel   string `json:"log_level"`   // [debug,info,warn,error]
}

// Validate that the required secrets/paths are present.
func (c *Config) Validate() error {
	if c.ApiKey == "" {
		return fmt.Errorf("config: api_key is required")
	}
	if c.Salt == "" {
		return fmt.Errorf("config: salt is required")
	}
	if c.DbLocation == "" {
		return fmt.Errorf("config: db_location is required")
	}
	return nil
}
