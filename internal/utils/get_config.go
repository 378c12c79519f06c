package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// App
	AppURL  string `yaml:"APP_URL"`
	AppPort string `yaml:"APP_PORT"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Azure Computer Vision (OCR)
	AzureCVEndpoint string `yaml:"AZURE_CV_ENDPOINT"`
	AzureCVKey      string `yaml:"AZURE_CV_KEY"`

	// Advisory generation (OpenAI-compatible endpoint; mock used when unset)
	AdvisoryAPIURL string `yaml:"ADVISORY_API_URL"`
	AdvisoryAPIKey string `yaml:"ADVISORY_API_KEY"`
	AdvisoryModel  string `yaml:"ADVISORY_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("AZURE_CV_ENDPOINT", config.AzureCVEndpoint)
	os.Setenv("AZURE_CV_KEY", config.AzureCVKey)
	os.Setenv("ADVISORY_API_URL", config.AdvisoryAPIURL)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_URL":
		return config.AppURL
	case "APP_PORT":
		return config.AppPort
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AZURE_CV_ENDPOINT":
		return config.AzureCVEndpoint
	case "AZURE_CV_KEY":
		return config.AzureCVKey
	case "ADVISORY_API_URL":
		return config.AdvisoryAPIURL
	case "ADVISORY_API_KEY":
		return config.AdvisoryAPIKey
	case "ADVISORY_MODEL":
		return config.AdvisoryModel
	default:
		return ""
	}
}
