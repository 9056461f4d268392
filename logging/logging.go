package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

/*
Config 日志配置。

	FileLevel 写入文件的日志等级；
	ConsoleLevel 输出到控制台的日志等级；
	FileDir 日志文件所在目录，为空则不写文件；
	DisableConsole 是否关闭控制台输出；
*/
type Config struct {
	FileLevel      logrus.Level
	ConsoleLevel   logrus.Level
	FileDir        string
	DisableConsole bool
}

var (
	defaultConfig = Config{
		FileLevel:    logrus.DebugLevel,
		ConsoleLevel: logrus.InfoLevel,
	}
	defaultLogger     *logrus.Logger
	defaultLoggerOnce sync.Once
)

func SetDefaultConfig(config *Config) {
	defaultConfig = *config
}

type consoleHook struct {
	writer io.Writer
	level  logrus.Level
	fmt    logrus.Formatter
}

func (h *consoleHook) Levels() []logrus.Level {
	return logrus.AllLevels[:h.level+1]
}

func (h *consoleHook) Fire(entry *logrus.Entry) error {
	line, err := h.fmt.Format(entry)
	if err != nil {
		return err
	}

	_, err = h.writer.Write(line)
	return err
}

/*
NewLogger 按照默认配置构建一个 logger。文件输出经过 lumberjack 滚动切割。
*/
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(defaultConfig.FileLevel)

	if len(defaultConfig.FileDir) != 0 {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join(defaultConfig.FileDir, "entitygraph.log"),
			MaxSize:    64, // MB
			MaxBackups: 8,
		})
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetOutput(io.Discard)
	}

	if !defaultConfig.DisableConsole {
		logger.AddHook(&consoleHook{
			writer: os.Stderr,
			level:  defaultConfig.ConsoleLevel,
			fmt:    &logrus.TextFormatter{},
		})
	}

	return logger
}

func Default() *logrus.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger()
	})
	return defaultLogger
}
