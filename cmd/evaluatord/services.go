package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	evaluator "github.com/Norikachi123/Container-Evaluator"
	"github.com/Norikachi123/Container-Evaluator/blob"
	"github.com/Norikachi123/Container-Evaluator/i18n"
	"github.com/Norikachi123/Container-Evaluator/mail"
	"github.com/Norikachi123/Container-Evaluator/pdf"
	"github.com/Norikachi123/Container-Evaluator/postgres"
	"github.com/Norikachi123/Container-Evaluator/review"
)

// Services holds all application services.
type Services struct {
	InspectionService evaluator.InspectionService
	SequenceService   evaluator.SequenceService
	FileStorage       evaluator.FileStorage
	EmailService      evaluator.EmailService
	ReviewService     *review.Service
	Exporter          *pdf.Exporter
	APITokens         map[string]*evaluator.User
}

// initServices initializes all application services.
func initServices(ctx context.Context, pool *pgxpool.Pool, cfg *Config, logger *slog.Logger) (*Services, error) {
	// Initialize database wrapper with all domain services
	db := postgres.NewDB(pool)
	logger.Info("database services initialized")

	// Initialize file storage
	fileStorage, err := initFileStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("file storage initialized", slog.String("provider", cfg.StorageProvider))

	// Initialize email service
	emailService := initEmailService(cfg, logger)
	logger.Info("email service initialized", slog.String("provider", cfg.EmailProvider))

	// Initialize the review workflow
	reviewService := review.NewService(review.Config{
		InspectionService: db.InspectionService,
		SequenceService:   db.SequenceService,
		EmailService:      emailService,
		Logger:            logger,
	})

	// Initialize the document exporter
	exporter := pdf.NewExporter(fileStorage, i18n.NewCatalog(), cfg.DocumentLanguage, logger)
	logger.Info("document exporter initialized", slog.String("language", cfg.DocumentLanguage))

	// Parse API tokens
	tokens, err := initAPITokens(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		InspectionService: db.InspectionService,
		SequenceService:   db.SequenceService,
		FileStorage:       fileStorage,
		EmailService:      emailService,
		ReviewService:     reviewService,
		Exporter:          exporter,
		APITokens:         tokens,
	}, nil
}

// initFileStorage creates the appropriate file storage implementation.
func initFileStorage(ctx context.Context, cfg *Config, logger *slog.Logger) (evaluator.FileStorage, error) {
	logger.Debug("storage service configuration",
		slog.String("provider", cfg.StorageProvider),
		slog.String("local_path", cfg.StorageLocalPath),
		slog.String("s3_bucket", cfg.StorageS3Bucket),
		slog.String("s3_region", cfg.StorageS3Region))

	storageCfg := evaluator.StorageConfig{
		Provider:  cfg.StorageProvider,
		LocalPath: cfg.StorageLocalPath,
		LocalURL:  cfg.StorageLocalURL,
		S3Bucket:  cfg.StorageS3Bucket,
		S3Region:  cfg.StorageS3Region,
		S3BaseURL: cfg.StorageS3BaseURL,
	}

	return blob.NewFileStorage(ctx, logger, storageCfg)
}

// initEmailService creates the appropriate email service implementation.
func initEmailService(cfg *Config, logger *slog.Logger) evaluator.EmailService {
	logger.Debug("email service configuration",
		slog.String("provider", cfg.EmailProvider),
		slog.String("from_address", cfg.EmailFromAddress),
		slog.String("from_name", cfg.EmailFromName))

	emailCfg := evaluator.EmailConfig{
		Provider:             cfg.EmailProvider,
		FromAddress:          cfg.EmailFromAddress,
		FromName:             cfg.EmailFromName,
		PostmarkServerToken:  cfg.EmailPostmarkToken,
		PostmarkAccountToken: cfg.EmailPostmarkAccount,
	}

	return mail.NewEmailService(logger, emailCfg)
}

// initAPITokens parses the configured token:name:role entries.
// Outside production a default reviewer token is provided when none are
// configured.
func initAPITokens(cfg *Config, logger *slog.Logger) (map[string]*evaluator.User, error) {
	tokens := map[string]*evaluator.User{}

	if cfg.APITokens == "" {
		if cfg.isProduction() {
			return nil, fmt.Errorf("no API tokens configured")
		}
		tokens["local-dev-token"] = &evaluator.User{
			ID:   uuid.New(),
			Name: "Local Developer",
			Role: evaluator.RoleAdmin,
		}
		logger.Warn("no API tokens configured, using local-dev-token")
		return tokens, nil
	}

	for _, entry := range strings.Split(cfg.APITokens, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("malformed API token entry %q, want token:name:role", entry)
		}
		role := evaluator.Role(parts[2])
		if !role.Valid() {
			return nil, fmt.Errorf("unknown role %q in API token entry", parts[2])
		}
		tokens[parts[0]] = &evaluator.User{
			ID:   uuid.New(),
			Name: parts[1],
			Role: role,
		}
	}

	logger.Info("API tokens loaded", slog.Int("count", len(tokens)))
	return tokens, nil
}
