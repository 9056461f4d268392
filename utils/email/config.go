package email

type SMTPConfig struct {
	Identity string
	Host     string
	Port     int
	UserName string
	Password string
}

type Config struct {
	SMTP SMTPConfig
}

var globalConfig = Config{}

func Init(config *Config) {
	globalConfig = *config
}

func GenerateTestConfig() *Config {
	return &Config{SMTP: SMTPConfig{
		Identity: "entitygraph_sender@example.com",
		Host:     "localhost",
		Port:     25,
		UserName: "entitygraph_sender@example.com",
		Password: "test",
	}}
}
