package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	LinkedIn LinkedIn `mapstructure:",squash"`
	Groq     Groq     `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// LinkedIn aponta para a API de perfis do RapidAPI (linkedin-data-api)
type LinkedIn struct {
	URL     string        `mapstructure:"rapidapi_url"`
	Host    string        `mapstructure:"rapidapi_host"`
	APIKey  string        `mapstructure:"rapidapi_key"`
	Timeout time.Duration `mapstructure:"linkedin_timeout"`
}

// Groq aponta para a API de chat completions compatível com OpenAI
type Groq struct {
	URL     string        `mapstructure:"groq_url"`
	APIKey  string        `mapstructure:"groq_api_key"`
	Model   string        `mapstructure:"groq_model"`
	Timeout time.Duration `mapstructure:"groq_timeout"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/outflo?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("RAPIDAPI_URL", "https://linkedin-data-api.p.rapidapi.com")
	viper.SetDefault("RAPIDAPI_HOST", "linkedin-data-api.p.rapidapi.com")
	viper.SetDefault("RAPIDAPI_KEY", "")
	viper.SetDefault("LINKEDIN_TIMEOUT", "30s")

	viper.SetDefault("GROQ_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_MODEL", "llama3-70b-8192")
	viper.SetDefault("GROQ_TIMEOUT", "30s")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.LinkedIn.APIKey == "" {
		logrus.Warn("RAPIDAPI_KEY não configurada, a busca de perfis vai falhar")
	}

	if config.Groq.APIKey == "" {
		logrus.Warn("GROQ_API_KEY não configurada, a geração de mensagens vai falhar")
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão a partir das partes configuradas
func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
