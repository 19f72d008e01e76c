package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafabene/gamehub-backend/internal/domain/ports"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/config"
)

const connectTimeout = 10 * time.Second

// NewDatabaseConnection cria uma nova conexão com o MongoDB
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Ping para verificar conexão
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"database", cfg.Name,
	)

	return client.Database(cfg.Name), nil
}

// Disconnect encerra a conexão com o MongoDB
func Disconnect(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}
