package config

import (
	"os"

	"entitygraph-pipeline/utils"
	"gopkg.in/yaml.v3"
)

// 环境变量的 key
const (
	EnvKeyEmailSMTPIdentity = "ENTITYGRAPH_SMTP_IDENTITY"
	EnvKeyEmailSMTPHost     = "ENTITYGRAPH_SMTP_HOST"
	EnvKeyEmailSMTPPort     = "ENTITYGRAPH_SMTP_PORT"
	EnvKeyEmailSMTPUserName = "ENTITYGRAPH_SMTP_USERNAME"
	EnvKeyEmailSMTPPassword = "ENTITYGRAPH_SMTP_PASSWORD"

	EnvKeyStorePath = "ENTITYGRAPH_STORE_PATH"
)

/*
LoadYAML 从文件中加载一个 yaml 格式的配置对象。规则目录下的所有配置（canonical.yaml、
context.yaml）均通过此函数加载，加载后在一次运行内不可变。
*/
func LoadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return utils.WrapErrorf(err, "read config file [%s] fail", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return utils.WrapErrorf(err, "unmarshal config file [%s] fail", path)
	}

	return nil
}
