package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int64  `default:"10485760" env:"APP_BODY_LIMIT"` // bytes
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"onboard-tools" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret       string `default:"change-me" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec  int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		ManagerLogin    string `default:"manager" env:"AUTH_MANAGER_LOGIN"`
		ManagerPassword string `default:"" env:"AUTH_MANAGER_PASSWORD"`
		ManagerName     string `default:"Onboarding manager" env:"AUTH_MANAGER_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"onboard-files" env:"S3_BUCKET_NAME"`
	}
	Seed struct {
		OnStart *bool `default:"true" env:"SEED_ON_START"` // seed demo applicants when the table is empty
		Count   int   `default:"300" env:"SEED_COUNT"`
	}
	Worker struct {
		StaleCheckPeriodMin int `default:"60" env:"WORKER_STALE_CHECK_PERIOD_MIN"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
