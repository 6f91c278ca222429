package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values

	"github.com/joho/godotenv" // For loading .env files
)

// S3Config holds the object storage settings used when StorageDriver is "s3"
type S3Config struct {
	Endpoint        string // Custom endpoint (R2, MinIO); empty uses AWS
	Region          string // Bucket region
	Bucket          string // Bucket name
	AccessKeyID     string // Static access key
	SecretAccessKey string // Static secret key
	PublicBaseURL   string // Base URL objects are publicly reachable under
}

// Config holds the application configuration
type Config struct {
	AppPort          string   // Application port
	DBDriver         string   // mysql, postgres or sqlite
	DBDSN            string   // Full DSN, overrides the parts below
	DBUser           string   // Database user
	DBPassword       string   // Database password
	DBHost           string   // Database host
	DBPort           string   // Database port
	DBName           string   // Database name
	JWTSecret        string   // JWT secret key
	RedisAddr        string   // Redis server address, empty disables caching
	RedisPass        string   // Redis password
	RedisDB          int      // Redis database number
	IsProd           bool     // Is production environment
	StorageDriver    string   // local or s3
	UploadDir        string   // Directory for locally stored images
	S3               S3Config // Object storage settings
	AMQPURL          string   // RabbitMQ URL, empty disables events
	AMQPExchange     string   // Exchange token events are published to
	SandboxStorePath string   // Flat-file store for the sandbox mint path
	PublicBaseURL    string   // Frontend base URL used in verification links
	CORSOrigins      []string // Allowed CORS origins
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DBDriver:         getEnv("DB_DRIVER", "mysql"),
		DBDSN:            os.Getenv("DB_DSN"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          redisDB,
		IsProd:           os.Getenv("IS_PROD") == "true",
		StorageDriver:    getEnv("STORAGE_DRIVER", "local"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		AMQPURL:          os.Getenv("AMQP_URL"),
		AMQPExchange:     getEnv("AMQP_EXCHANGE", "soulid.events"),
		SandboxStorePath: getEnv("SANDBOX_STORE_PATH", "data/store.json"),
		PublicBaseURL:    strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		CORSOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		S3: S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			Region:          getEnv("S3_REGION", "auto"),
			Bucket:          os.Getenv("S3_BUCKET"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL:   strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
		},
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	switch c.DBDriver {
	case "postgres":
		return "host=" + c.DBHost + " user=" + c.DBUser + " password=" + c.DBPassword +
			" dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=disable"
	case "sqlite":
		return c.DBName + ".db"
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
}

// Gets the env by key or falls back
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
