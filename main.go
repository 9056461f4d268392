package main

import (
	"context"
	"os"
	"path/filepath"

	"entitygraph-pipeline/config"
	"entitygraph-pipeline/domain/graph"
	"entitygraph-pipeline/domain/pipeline"
	"entitygraph-pipeline/logging"
	"entitygraph-pipeline/repository/metadata"
	"entitygraph-pipeline/utils"
	"entitygraph-pipeline/utils/email"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flags struct {
	storePath   string
	catalogDir  string
	rosterPath  string
	workers     int
	notifyEmail string
	logDir      string
}

func loggingConf() *logging.Config {
	return &logging.Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.InfoLevel,
		FileDir:        flags.logDir,
		DisableConsole: false,
	}
}

func emailConf() *email.Config {
	host := os.Getenv(config.EnvKeyEmailSMTPHost)
	if len(host) == 0 {
		return email.GenerateTestConfig()
	}

	return &email.Config{SMTP: email.SMTPConfig{
		Identity: os.Getenv(config.EnvKeyEmailSMTPIdentity),
		Host:     host,
		Port:     utils.MustAtoi(os.Getenv(config.EnvKeyEmailSMTPPort)),
		UserName: os.Getenv(config.EnvKeyEmailSMTPUserName),
		Password: os.Getenv(config.EnvKeyEmailSMTPPassword),
	}}
}

func metadataConf() *metadata.Config {
	path := flags.storePath
	if len(path) == 0 {
		path = os.Getenv(config.EnvKeyStorePath)
	}

	return &metadata.Config{
		SQLite:         metadata.SQLiteConfig{Path: path},
		CheckMigration: true,
	}
}

func graphConf() *graph.Setting {
	return &graph.Setting{
		GetMetadataDatabase: metadata.DatabaseRaw,
		Logger:              logging.NewLogger(),
	}
}

func pipelineConf() *pipeline.Setting {
	return &pipeline.Setting{
		GetMetadataDatabase: metadata.DatabaseRaw,
		Logger:              logging.NewLogger(),
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	logging.SetDefaultConfig(loggingConf())

	email.Init(emailConf())

	metadata.Init(metadataConf())

	graph.Init(graphConf())

	pipeline.Init(pipelineConf())

	_, err := pipeline.Run(context.Background(), &pipeline.RunConfig{
		CanonicalCatalogPath: filepath.Join(flags.catalogDir, "canonical.yaml"),
		ContextCatalogPath:   filepath.Join(flags.catalogDir, "context.yaml"),
		RosterPath:           flags.rosterPath,
		Workers:              flags.workers,
		NotifyEmail:          flags.notifyEmail,
	})

	return err
}

func main() {
	root := &cobra.Command{
		Use:   "entitygraph",
		Short: "对文档语料做实体抽取、归并、风险评分与共现关系推断的离线批处理",
		Args:  cobra.NoArgs,
		RunE:  runBatch,

		SilenceUsage: true,
	}

	root.Flags().StringVar(&flags.storePath, "store", "", "目标 sqlite 库路径（含文档语料表）")
	root.Flags().StringVar(&flags.catalogDir, "catalogs", "catalogs", "规则目录所在目录")
	root.Flags().StringVar(&flags.rosterPath, "roster", "", "名册文件路径，可选")
	root.Flags().IntVar(&flags.workers, "workers", pipeline.DefaultWorkers, "抽取 worker 数")
	root.Flags().StringVar(&flags.notifyEmail, "notify", "", "接收汇总报告的邮箱，可选")
	root.Flags().StringVar(&flags.logDir, "log-dir", "logs", "日志目录")

	if err := root.Execute(); err != nil {
		logging.Default().WithError(err).Errorf("run fail:\n%v", err)
		os.Exit(1)
	}
}
