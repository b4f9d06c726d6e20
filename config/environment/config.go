package environment

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads an optional .env file and binds every setting to the process
// environment. Call it once before anything reads configuration.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment and defaults")
	}

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DRIVER", "firestore")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("STORES_ON_SCHEDULE", "")
	viper.SetDefault("COMMISSION_RATE", 0.075)
	viper.SetDefault("FAST_DELIVERY_MINUTES", 30)
	viper.SetDefault("SLOW_DELIVERY_MINUTES", 45)
	viper.SetDefault("NOTIFY_RATE_PER_MINUTE", 30)
	viper.SetDefault("AUTH_DISABLED", false)
}

func GetPort() string {
	return viper.GetString("PORT")
}

func GetGinMode() string {
	return viper.GetString("GIN_MODE")
}

func GetLogLevel() string {
	return viper.GetString("LOG_LEVEL")
}

// GetStoreDriver is either "firestore" or "memory".
func GetStoreDriver() string {
	return strings.ToLower(viper.GetString("STORE_DRIVER"))
}

func GetFirebaseKey() string {
	return viper.GetString("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return viper.GetString("FIREBASE_PROJECT_ID")
}

func GetFirebaseStorageBucket() string {
	return viper.GetString("FIREBASE_STORAGE_BUCKET")
}

func GetAllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetTaskSigningKey() string {
	return viper.GetString("TASK_SIGNING_KEY")
}

// GetStoresOnSchedule returns the cron spec for automatic store activation.
// Empty disables the job.
func GetStoresOnSchedule() string {
	return viper.GetString("STORES_ON_SCHEDULE")
}

func GetCommissionRate() float64 {
	return viper.GetFloat64("COMMISSION_RATE")
}

func GetFastDelivery() time.Duration {
	return time.Duration(viper.GetInt("FAST_DELIVERY_MINUTES")) * time.Minute
}

func GetSlowDelivery() time.Duration {
	return time.Duration(viper.GetInt("SLOW_DELIVERY_MINUTES")) * time.Minute
}

func GetNotifyRatePerMinute() int {
	return viper.GetInt("NOTIFY_RATE_PER_MINUTE")
}

// IsAuthDisabled only takes effect with the memory store driver.
func IsAuthDisabled() bool {
	return viper.GetBool("AUTH_DISABLED") && GetStoreDriver() == "memory"
}
