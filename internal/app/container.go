package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/config"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/auth"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/database"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/media"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/notifications"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/repositories"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *database.RedisClient

	UserRepo    domain.UserRepository
	SessionRepo domain.SessionRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	MailSvc     domain.MailService
	MediaSvc    domain.MediaService
	AccountSvc  domain.AccountService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	return c.RedisClient.Ping(context.Background())
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient.Client, c.Config.SessionTTL)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.ActivationSecret,
		c.Config.AccessSecret,
		c.Config.RefreshSecret,
		c.Config.JWTIssuer,
		c.Config.ActivationTTL,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)

	mailSvc, err := notifications.NewMailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)
	if err != nil {
		return err
	}
	c.MailSvc = mailSvc

	mediaSvc, err := media.NewS3Service(media.Config{
		Region:    c.Config.S3Region,
		Endpoint:  c.Config.S3Endpoint,
		Bucket:    c.Config.S3Bucket,
		AccessKey: c.Config.S3AccessKey,
		SecretKey: c.Config.S3SecretKey,
		Folder:    c.Config.AvatarFolder,
		Width:     c.Config.AvatarWidth,
	})
	if err != nil {
		return err
	}
	c.MediaSvc = mediaSvc

	c.AccountSvc = services.NewAccountService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.MailSvc,
		c.MediaSvc,
	)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
