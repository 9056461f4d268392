package metadata

import (
	"github.com/sirupsen/logrus"
)

// sqlLogger 把 gorm 的 SQL 日志转发到 logrus，转发等级由构造方指定
type sqlLogger struct {
	logger *logrus.Logger
	level  logrus.Level
}

func (l *sqlLogger) Printf(fmt string, args ...interface{}) {
	l.logger.Logf(l.level, fmt, args...)
}
