package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tube-catalog/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	Catalog     Catalog     `json:"catalog"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
	YouTube     YouTube     `json:"youtube"`
}

type App struct {
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

type Database struct {
	Mongo     Db        `json:"mongo"`
	Cassandra Cassandra `json:"cassandra"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type Cassandra struct {
	Hosts       []string      `json:"hosts"`
	Keyspace    string        `json:"keyspace"`
	User        string        `json:"user"`
	Password    string        `json:"password"`
	Consistency string        `json:"consistency"`
	Timeout     time.Duration `json:"timeout"`
}

// Catalog selects the storage backend and the paging limits.
type Catalog struct {
	Backend       string        `json:"backend"`
	DefaultLimit  int           `json:"defaultLimit"`
	MaxLimit      int           `json:"maxLimit"`
	CategoryStore string        `json:"categoryStore"`
	CategoryTTL   time.Duration `json:"categoryTTL"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type Logger struct {
	Level string `json:"level"`
}

type YouTube struct {
	APIKey string `json:"apiKey"`
}

const (
	BackendMongo     = "mongo"
	BackendCassandra = "cassandra"

	CategoryStoreBackend = "backend"
	CategoryStoreRedis   = "redis"
)

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initCatalog(&C)
	initApp(&C)
	logger.SetLevel(C.Logger.Level)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	mongo := &C.Database.Mongo
	mongo.Name = getConfigValue(mongo.Name, "MONGO_DB_NAME", "tube")
	mongo.Host = getConfigValue(mongo.Host, "MONGO_HOST", "localhost")
	mongo.Port = getConfigValue(mongo.Port, "MONGO_PORT", "27017")
	mongo.User = getConfigValue(mongo.User, "MONGO_USER", "")
	mongo.Password = getConfigValue(mongo.Password, "MONGO_PASSWORD", "")

	cassandra := &C.Database.Cassandra
	if v := os.Getenv("CASSANDRA_HOSTS"); v != "" {
		cassandra.Hosts = splitCSV(v)
	}
	if len(cassandra.Hosts) == 0 {
		cassandra.Hosts = []string{"localhost:9042"}
	}
	cassandra.Keyspace = getConfigValue(cassandra.Keyspace, "CASSANDRA_KEYSPACE", "tube")
	cassandra.User = getConfigValue(cassandra.User, "CASSANDRA_USER", "")
	cassandra.Password = getConfigValue(cassandra.Password, "CASSANDRA_PASSWORD", "")
	cassandra.Consistency = getConfigValue(cassandra.Consistency, "CASSANDRA_CONSISTENCY", "LOCAL_QUORUM")
	if cassandra.Timeout == 0 {
		cassandra.Timeout = 10 * time.Second
	}

	redis := &C.RedisClient
	redis.Host = getConfigValue(redis.Host, "REDIS_HOST", "localhost")
	redis.Port = getConfigValue(redis.Port, "REDIS_PORT", "6379")
	redis.Username = getConfigValue(redis.Username, "REDIS_USERNAME", "")
	redis.Password = getConfigValue(redis.Password, "REDIS_PASSWORD", "")

	logger.GetLogger().
		WithField("mongoHost", mongo.Host).
		WithField("cassandraHosts", cassandra.Hosts).
		Info("Database configuration")
}

func initCatalog(C *Config) {
	catalog := &C.Catalog
	catalog.Backend = strings.ToLower(getConfigValue(catalog.Backend, "CATALOG_BACKEND", BackendMongo))
	catalog.CategoryStore = strings.ToLower(getConfigValue(catalog.CategoryStore, "CATEGORY_STORE", CategoryStoreBackend))
	if catalog.DefaultLimit <= 0 {
		catalog.DefaultLimit = 25
	}
	if catalog.MaxLimit <= 0 {
		catalog.MaxLimit = 50
	}
	if catalog.CategoryTTL == 0 {
		catalog.CategoryTTL = 24 * time.Hour
	}
	C.YouTube.APIKey = getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", "")
	if C.YouTube.APIKey == "" {
		logger.GetLogger().Warn("YouTube API key not set; category lookups for unseen regions will fail")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		C.App.AllowedOrigins = splitCSV(v)
	}
	if len(C.App.AllowedOrigins) == 0 {
		C.App.AllowedOrigins = []string{"http://localhost:4200"}
	}
	C.Logger.Level = getConfigValue(C.Logger.Level, "LOG_LEVEL", "")
}

// getConfigValue gets value from the environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}

func splitCSV(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
