package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/skywrite/internal/blogservice"
	"github.com/sushihentaime/skywrite/internal/common"
	"github.com/sushihentaime/skywrite/internal/mailservice"
	"github.com/sushihentaime/skywrite/internal/mediaservice"
	"github.com/sushihentaime/skywrite/internal/userservice"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	issuer      *userservice.TokenIssuer
	userService *userservice.UserService
	blogService *blogservice.BlogService
	mediaClient *mediaservice.Client
	mailService *mailservice.MailService
	broker      *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupUserExchange(broker)
	if err != nil {
		logger.Error("failed to setup the user exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	issuer := userservice.NewTokenIssuer(cfg.JWTSecret)
	verifier := userservice.NewGoogleVerifier(cfg.GoogleUserInfoURL)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:      cfg,
		logger:      logger,
		issuer:      issuer,
		userService: userservice.NewUserService(db, broker, issuer, verifier),
		blogService: blogservice.NewBlogService(db, cache),
		mediaClient: mediaservice.NewClient(cfg.MediaBaseURL, cfg.MediaCloudName, cfg.MediaUploadPreset, cfg.MediaFolder),
		mailService: mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, logger),
		broker:      broker,
	}

	app.mailService.SendWelcomeEmail()
	defer app.mailService.Close()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
