package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"skillup_backend/internals/configs"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func ConnectDB() {
	log.Println("🔌 Koneksi ke MongoDB...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(configs.MongoURI).
		SetMaxPoolSize(20).
		SetMaxConnIdleTime(60 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ Ping MongoDB gagal: %v", err)
	}

	Client = client
	DB = client.Database(configs.DBName)
	log.Println("✅ DB connected.")
}

func Disconnect(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("[ERROR] disconnect mongo: %v", err)
	}
}
