// Copyright 2019 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// Package dbutil implements a string key-value store on top of an SQL
// database. It is used by clef to keep master-password protected secrets in a
// shared database instead of the local filesystem.
//
// The database connection is described by a small YAML file, so that the same
// configuration can point clef at sqlite3, mysql or postgres without
// recompiling. The supported adapters are the ones whose drivers the binary
// imports.
package dbutil

import (
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/CodeSandwich/ethers-go/log"
	"gopkg.in/yaml.v2"
)

const (
	// PasswordTable is the table holding the clef credential storage.
	PasswordTable = "clef_passwords"

	// KeysTable is the table holding encrypted keystore keys.
	KeysTable = "clef_keys"

	// JSTable is the table holding the storage exposed to the rule engine.
	JSTable = "clef_jsstorage"
)

// Config describes an SQL database connection.
type Config struct {
	Adapter  string            `yaml:"adapter"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	Protocol string            `yaml:"protocol"`
	Host     string            `yaml:"host"`
	Port     string            `yaml:"port"`
	Database string            `yaml:"database"`
	Params   map[string]string `yaml:"params"`
}

// readConfigYAML loads the database connection settings from the given file.
func readConfigYAML(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	conf := new(Config)
	if err := yaml.Unmarshal(raw, conf); err != nil {
		return nil, err
	}
	if conf.Adapter == "" {
		return nil, fmt.Errorf("missing adapter in database config %v", path)
	}
	return conf, nil
}

// DataSourceName assembles the driver specific connection string.
func (c *Config) DataSourceName() string {
	switch c.Adapter {
	case "mysql":
		// user:password@protocol(host:port)/database?param=value
		return fmt.Sprintf("%s:%s@%s(%s:%s)/%s%s", c.Username, c.Password, c.Protocol, c.Host, c.Port, c.Database, c.paramString())
	case "postgres":
		// postgresql://[user[:password]@][netloc][:port][/dbname][?param1=value1&...]
		return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s%s", c.Username, c.Password, c.Host, c.Port, c.Database, c.paramString())
	default:
		// sqlite3 and friends take a bare path or URI
		return c.Database
	}
}

// paramString renders the extra connection parameters as a query string. The
// parameters are sorted to keep the DSN stable.
func (c *Config) paramString() string {
	if len(c.Params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+c.Params[k])
	}
	return "?" + strings.Join(pairs, "&")
}

// KVStore is a named key-value table inside an SQL database. Keys retain their
// insertion order, updating a value does not move the key.
type KVStore struct {
	DB    *sql.DB
	Conf  *Config
	Table string
}

// NewKVStore opens the database described by the given config file and binds
// the store to the given table, creating it if needed.
func NewKVStore(configPath string, table string) (*KVStore, error) {
	conf, err := readConfigYAML(configPath)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(conf.Adapter, conf.DataSourceName())
	if err != nil {
		return nil, err
	}
	kv := &KVStore{
		DB:    db,
		Conf:  conf,
		Table: table,
	}
	if err := kv.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return kv, nil
}

// createTable sets up the backing table. The auto incremented id column
// defines the iteration order of All.
func (kv *KVStore) createTable() error {
	var ddl string
	switch kv.Conf.Adapter {
	case "mysql":
		ddl = "CREATE TABLE IF NOT EXISTS %s (id INT NOT NULL AUTO_INCREMENT PRIMARY KEY, k VARCHAR(255) NOT NULL UNIQUE, v TEXT NOT NULL)"
	case "postgres":
		ddl = "CREATE TABLE IF NOT EXISTS %s (id SERIAL PRIMARY KEY, k TEXT NOT NULL UNIQUE, v TEXT NOT NULL)"
	default:
		ddl = "CREATE TABLE IF NOT EXISTS %s (id INTEGER PRIMARY KEY AUTOINCREMENT, k TEXT NOT NULL UNIQUE, v TEXT NOT NULL)"
	}
	_, err := kv.DB.Exec(fmt.Sprintf(ddl, kv.Table))
	return err
}

// rebind rewrites ? placeholders into the $n form where the driver wants it.
func (kv *KVStore) rebind(query string) string {
	if kv.Conf.Adapter != "postgres" {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Put stores a value by key. Existing keys are updated in place so that their
// position in All is retained.
func (kv *KVStore) Put(key, value string) error {
	if kv.Exists(key) {
		_, err := kv.DB.Exec(kv.rebind(fmt.Sprintf("UPDATE %s SET v = ? WHERE k = ?", kv.Table)), value, key)
		return err
	}
	_, err := kv.DB.Exec(kv.rebind(fmt.Sprintf("INSERT INTO %s (k, v) VALUES (?, ?)", kv.Table)), key, value)
	return err
}

// Get returns the previously stored value, or sql.ErrNoRows if the key is
// unknown.
func (kv *KVStore) Get(key string) (string, error) {
	var value string
	if err := kv.DB.QueryRow(kv.rebind(fmt.Sprintf("SELECT v FROM %s WHERE k = ?", kv.Table)), key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

// Del removes a key-value pair. If the key doesn't exist, the method is a noop.
func (kv *KVStore) Del(key string) error {
	_, err := kv.DB.Exec(kv.rebind(fmt.Sprintf("DELETE FROM %s WHERE k = ?", kv.Table)), key)
	return err
}

// Exists reports whether the key is present in the store.
func (kv *KVStore) Exists(key string) bool {
	var one int
	err := kv.DB.QueryRow(kv.rebind(fmt.Sprintf("SELECT 1 FROM %s WHERE k = ?", kv.Table)), key).Scan(&one)
	return err == nil
}

// All returns every key in the store in insertion order.
func (kv *KVStore) All() []string {
	rows, err := kv.DB.Query(fmt.Sprintf("SELECT k FROM %s ORDER BY id", kv.Table))
	if err != nil {
		log.Warn("Failed to iterate keys", "table", kv.Table, "err", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			log.Warn("Failed to scan key", "table", kv.Table, "err", err)
			return nil
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		log.Warn("Failed to iterate keys", "table", kv.Table, "err", err)
	}
	return keys
}

// Size returns the number of entries in the store.
func (kv *KVStore) Size() int {
	var count int
	if err := kv.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", kv.Table)).Scan(&count); err != nil {
		log.Warn("Failed to count keys", "table", kv.Table, "err", err)
		return 0
	}
	return count
}

// Close tears down the database connection.
func (kv *KVStore) Close() error {
	return kv.DB.Close()
}
