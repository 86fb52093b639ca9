package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address            string
		ShutdownTimeout    time.Duration
		MaxUploadBytes     string
		DisableRequestLogs bool
	}

	Config struct {
		Debug              bool
		TestMode           bool
		Env                string
		AppName            string
		Build              string
		SecretKey          string
		DataDir            string
		UploadDir          string
		AnnouncementWindow time.Duration
		RollbarToken       string
		SendgridApiKey     string
		Server             ServerConfig

		defaultFromEmail string
	}
)

// NewConfig reads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed with the current env, eg. `DEV_SECRETKEY`.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "School Portal")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "myschoolsecret")
	v.SetDefault("dataDir", "data")
	v.SetDefault("uploadDir", "uploads")
	v.SetDefault("announcementWindow", 7*24*time.Hour)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("defaultFromEmail", "School Portal <noreply@localhost>")
	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.maxUploadBytes", "32M")
	v.SetDefault("server.disableRequestLogs", false)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Debug:              v.GetBool("debug"),
		TestMode:           v.GetBool("testMode"),
		Env:                env,
		AppName:            v.GetString("appName"),
		Build:              v.GetString("build"),
		SecretKey:          v.GetString("secretKey"),
		DataDir:            v.GetString("dataDir"),
		UploadDir:          v.GetString("uploadDir"),
		AnnouncementWindow: v.GetDuration("announcementWindow"),
		RollbarToken:       v.GetString("rollbarToken"),
		SendgridApiKey:     v.GetString("sendgridApiKey"),
		Server: ServerConfig{
			Address:            v.GetString("server.address"),
			ShutdownTimeout:    v.GetDuration("server.shutdownTimeout"),
			MaxUploadBytes:     v.GetString("server.maxUploadBytes"),
			DisableRequestLogs: v.GetBool("server.disableRequestLogs"),
		},
		defaultFromEmail: v.GetString("defaultFromEmail"),
	}
}

// DataFile returns the path of the JSON document holding the named collection.
func (conf *Config) DataFile(name string) string {
	return filepath.Join(conf.DataDir, name+".json")
}

func (conf *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(conf.defaultFromEmail)
	if err != nil {
		return mail.Address{Name: conf.AppName, Address: conf.defaultFromEmail}
	}
	return *addr
}

// SetDefaultFromEmail overrides the sender address, mostly for tests.
func (conf *Config) SetDefaultFromEmail(addr string) {
	conf.defaultFromEmail = addr
}
