package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gramsahayak/internal/complaint"
	"gramsahayak/internal/db"
	"gramsahayak/internal/server"
	"gramsahayak/internal/storage"
	"gramsahayak/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx, config.AWSRegion)
	if err != nil {
		return err
	}

	s3Client := s3.NewFromConfig(awsConfig)
	uploads := storage.NewS3Storage(s3Client, config.AWSBucketName, config.AWSRegion)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	villagersRepo := store.NewVillagerRepository(pool)
	officialsRepo := store.NewOfficialRepository(pool)
	contractorsRepo := store.NewContractorRepository(pool)
	complaintsRepo := store.NewComplaintRepository(pool)
	schemesRepo := store.NewSchemeRepository(pool)
	proposalsRepo := store.NewProposalRepository(pool)
	projectsRepo := store.NewProjectRepository(pool)
	discussionsRepo := store.NewDiscussionRepository(pool)

	engine := complaint.NewEngine(villagersRepo, officialsRepo, complaintsRepo, logger)

	srv, err := server.New(
		config,
		logger,
		pool,
		engine,
		villagersRepo,
		officialsRepo,
		contractorsRepo,
		schemesRepo,
		proposalsRepo,
		projectsRepo,
		discussionsRepo,
		uploads,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
