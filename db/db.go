package db

import (
	"blog/config"
	"strings"

	godrv "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// Init opens the database configured in config: MySQL if MYSQL_DSN is set,
// otherwise SQLite (in-memory if SQLITE_FILE is empty too).
func Init() {
	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	var db *gorm.DB
	var err error
	if config.MYSQL_DSN != "" {
		// Fail fast on a bad DSN instead of at first query
		if _, err = godrv.ParseDSN(config.MYSQL_DSN); err != nil {
			panic(err)
		}
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(sqliteDSN(config.SQLITE_FILE)), gormConfig)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

// sqliteDSN enables foreign key enforcement, which SQLite leaves off by
// default. The Post cascade rules depend on it.
func sqliteDSN(file string) string {
	if file == "" {
		file = "file::memory:?cache=shared"
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	return file + "?_foreign_keys=on"
}
