package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	// Object storage (S3 or any S3-compatible endpoint).
	S3Endpoint     string
	S3CustomDomain string
	S3Bucket       string
	S3Region       string
	S3AccessKeyID  string
	S3SecretKey    string
	S3UseSSL       bool

	// Image validation and rendition sizes. Sizes are edge lengths in
	// pixels; the smallest one is used as the thumbnail.
	ImageMinEdge int
	ImageMaxEdge int
	ImageSizes   []int

	// Ceilings. Category ceilings bound one unit's images of that
	// category; MaxImagesPerUnit bounds the unit total and gates
	// upload-authorization batches.
	MaxUnits                  int
	MaxDocumentsPerUnit       int
	MaxMoveInPicturesPerUnit  int
	MaxMoveOutPicturesPerUnit int
	MaxImagesPerUnit          int
	MaxUploadBatch            int

	// Browser upload policy constraints.
	UploadMinBytes    int64
	UploadMaxBytes    int64
	UploadContentType string
	SignatureExpiry   time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),

		S3Endpoint:     getEnv("S3_ENDPOINT_URL", ""),
		S3CustomDomain: getEnv("S3_CUSTOM_DOMAIN", ""),
		S3Bucket:       getEnv("S3_BUCKET", "renters-rights-uploads"),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:  getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3UseSSL:       getEnvAsBool("S3_USE_SSL", true),

		ImageMinEdge: getEnvAsInt("UNIT_IMAGE_MIN_EDGE", 200),
		ImageMaxEdge: getEnvAsInt("UNIT_IMAGE_MAX_EDGE", 8000),
		ImageSizes:   getEnvAsIntSlice("UNIT_IMAGE_SIZES", []int{200, 800, 1600}),

		MaxUnits:                  getEnvAsInt("MAX_UNITS", 10),
		MaxDocumentsPerUnit:       getEnvAsInt("MAX_DOCUMENTS_PER_UNIT", 20),
		MaxMoveInPicturesPerUnit:  getEnvAsInt("MAX_MOVE_IN_PICTURES_PER_UNIT", 50),
		MaxMoveOutPicturesPerUnit: getEnvAsInt("MAX_MOVE_OUT_PICTURES_PER_UNIT", 50),
		MaxImagesPerUnit:          getEnvAsInt("MAX_IMAGES_PER_UNIT", 120),
		MaxUploadBatch:            getEnvAsInt("MAX_UPLOAD_BATCH", 20),

		UploadMinBytes:    getEnvAsInt64("UPLOAD_MIN_BYTES", 5000),
		UploadMaxBytes:    getEnvAsInt64("UPLOAD_MAX_BYTES", 15000000),
		UploadContentType: getEnv("UPLOAD_CONTENT_TYPE", "image/png"),
		SignatureExpiry:   time.Duration(getEnvAsInt64("SIGNATURE_EXPIRY_SECONDS", 3600)) * time.Second,
	}

	sort.Ints(config.ImageSizes)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsIntSlice(key string, defaultValue []int) []int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var sizes []int
	for _, part := range strings.Split(value, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || size <= 0 {
			return defaultValue
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return defaultValue
	}
	return sizes
}
