package metadata

import (
	"entitygraph-pipeline/logging"
	"entitygraph-pipeline/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type SQLiteConfig struct {
	Path string
}

type Config struct {
	SQLite         SQLiteConfig
	CheckMigration bool
}

func GenerateTestConfig() *Config {
	return &Config{
		SQLite: SQLiteConfig{
			// 每个连接共享同一份内存库，gorm 连接池下必须带 cache=shared
			Path: "file::memory:?cache=shared",
		},
		CheckMigration: true,
	}
}

var db *gorm.DB

func CreateDatabase(config *Config) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        config.SQLite.Path,
	}, &gorm.Config{
		Logger: logger.New(
			&sqlLogger{logger: logging.NewLogger(), level: logrus.DebugLevel},
			logger.Config{LogLevel: logger.Warn}),
	})
	if err != nil {
		return nil, utils.WrapError(err, "db connection fail")
	}

	if config.CheckMigration {
		err = migration(database)
		if err != nil {
			return nil, utils.WrapError(err, "migration fail")
		}
	}

	return database, nil
}

func migration(db *gorm.DB) error {
	tables := []interface{}{
		&Document{},
		&Entity{}, &Relationship{},
		&Run{},
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return utils.WrapError(err, "AutoMigrate fail")
	}

	if err := createSearchIndex(db); err != nil {
		return utils.WrapError(err, "create search index fail")
	}

	return nil
}

func Init(config *Config) {
	database, err := CreateDatabase(config)
	if err != nil {
		panic(err)
	}

	db = database
}

func DatabaseRaw() *gorm.DB {
	return db
}
