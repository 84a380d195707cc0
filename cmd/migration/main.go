package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/storage"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/users"
	sharedStorage "clinic-service/internal/app/services/shared/storage"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const commandTimeout = time.Minute

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	app := &cli.App{
		Name:  "clinic-migration",
		Usage: "Prepare MongoDB and MinIO for the clinic service.",
		Commands: []*cli.Command{
			indexesCommand(driverConfig, log),
			seedAdminCommand(driverConfig, log),
			bucketCommand(driverConfig, internalConfig, log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("Migration failed")
		os.Exit(1)
	}
}

func indexesCommand(driverConfig *config.DriverConfig, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "indexes",
		Usage: "Create the MongoDB indexes, including the unique occupied slot index.",
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
			defer cancel()

			client := database.NewMongoDB(driverConfig)
			defer client.Disconnect(context.Background())

			created, err := database.EnsureIndexes(ctx, client.Database(driverConfig.MongoDB.DbName))
			if err != nil {
				return fmt.Errorf("ensuring indexes: %w", err)
			}
			for _, name := range created {
				log.WithField("index", name).Info("Index ensured")
			}
			log.WithField("count", len(created)).Info("Indexes ready")
			return nil
		},
	}
}

func seedAdminCommand(driverConfig *config.DriverConfig, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "seed-admin",
		Usage: "Create the administrator account when it does not exist yet.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Value: "admin", Usage: "Administrator username."},
			&cli.StringFlag{Name: "email", Required: true, Usage: "Administrator email."},
			&cli.StringFlag{Name: "name", Value: constvars.DefaultProviderName, Usage: "Display name."},
			&cli.StringFlag{Name: "password", EnvVars: []string{"ADMIN_PASSWORD"}, Required: true, Usage: "Administrator password."},
		},
		Action: func(c *cli.Context) error {
			if len(c.String("password")) < 6 {
				return errors.New("password must be at least 6 characters")
			}

			ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
			defer cancel()

			client := database.NewMongoDB(driverConfig)
			defer client.Disconnect(context.Background())

			userRepository := users.NewUserMongoRepository(client, driverConfig.MongoDB.DbName)
			username := c.String("username")

			existing, err := userRepository.FindByUsernameAndRole(ctx, username, constvars.RoleAdmin)
			if err != nil {
				return fmt.Errorf("looking up admin: %w", err)
			}
			if existing != nil {
				log.WithField("username", username).Info("Admin already exists, nothing to do")
				return nil
			}

			hashedPassword, err := utils.HashPassword(c.String("password"))
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}

			admin := &models.User{
				Username:  username,
				Email:     c.String("email"),
				Password:  hashedPassword,
				Name:      c.String("name"),
				Role:      constvars.RoleAdmin,
				CreatedAt: time.Now(),
			}
			if err := userRepository.Create(ctx, admin); err != nil {
				return fmt.Errorf("creating admin: %w", err)
			}

			log.WithFields(logrus.Fields{
				"username": username,
				"id":       admin.ID.Hex(),
			}).Info("Admin created")
			return nil
		},
	}
}

func bucketCommand(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "bucket",
		Usage: "Create the attachments bucket in MinIO.",
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
			defer cancel()

			objectStorage := sharedStorage.NewMinioStorage(storage.NewMinio(driverConfig), zap.NewNop())
			bucketName := internalConfig.Minio.BucketName

			created, err := objectStorage.EnsureBucket(ctx, bucketName)
			if err != nil {
				return fmt.Errorf("ensuring bucket: %w", err)
			}

			log.WithFields(logrus.Fields{
				"bucket":  bucketName,
				"created": created,
			}).Info("Bucket ready")
			return nil
		},
	}
}
