package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret       string
	StripeSecretKey string
	MongoURI        string
	DBName          string
	AppEnv          string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	StripeSecretKey = GetEnv("STRIPE_SECRET_KEY")
	MongoURI = GetEnv("MONGODB_URI")
	DBName = GetEnv("DB_NAME", "skillup")
	AppEnv = GetEnv("APP_ENV", "development")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	if StripeSecretKey == "" {
		log.Println("❌ STRIPE_SECRET_KEY belum diset!")
	}
	if MongoURI == "" {
		log.Println("❌ MONGODB_URI belum diset!")
	}
}

// IsProduction menentukan atribut cookie (Secure + SameSite=None)
func IsProduction() bool {
	return AppEnv == "production"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
