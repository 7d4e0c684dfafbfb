package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sentilab/sentiment-api/internal/api"
	"github.com/sentilab/sentiment-api/internal/config"
	"github.com/sentilab/sentiment-api/internal/core"
	"github.com/sentilab/sentiment-api/internal/logging"
	"github.com/sentilab/sentiment-api/internal/model"
	"github.com/sentilab/sentiment-api/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	logging.InitLogger(config.AppConfig.LogLevel)

	// Initialize database store
	dbStore, err := store.NewSQLiteStore(config.AppConfig.DatabaseURL)
	if err != nil {
		slog.Error("Failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbStore.Close()
	slog.Info("Database ready", slog.String("path", config.AppConfig.DatabaseURL))

	// Load model artifacts once; they stay immutable for the process lifetime
	encoder, classifier, err := loadModel()
	if err != nil {
		slog.Error("Failed to load model artifacts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize Prediction service
	predictionService := core.NewPredictionService(dbStore, encoder, classifier)

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(predictionService)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		slog.Info("Starting server. Press Ctrl+C to quit.", slog.String("addr", serverAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Could not listen", slog.String("addr", serverAddr), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	// Give active connections time to finish
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Server exiting gracefully")
}

// loadModel builds the encoder/classifier pair from the configured artifact
// files, or falls back to the built-in lexicon model when none are set.
func loadModel() (core.Encoder, core.Classifier, error) {
	vecPath := config.AppConfig.VectorizerPath
	modelPath := config.AppConfig.ModelPath

	if vecPath == "" && modelPath == "" {
		slog.Info("No model artifacts configured, using the built-in lexicon model")
		return model.NewLexiconEncoder(), model.LexiconClassifier{}, nil
	}
	if vecPath == "" || modelPath == "" {
		return nil, nil, fmt.Errorf("VECTORIZER_PATH and MODEL_PATH must both be set")
	}

	vectorizer, err := model.LoadVectorizer(vecPath)
	if err != nil {
		return nil, nil, err
	}
	classifier, err := model.LoadClassifier(modelPath)
	if err != nil {
		return nil, nil, err
	}
	if classifier.NumFeatures() != vectorizer.Dim() {
		return nil, nil, fmt.Errorf("classifier expects %d features, vectorizer produces %d", classifier.NumFeatures(), vectorizer.Dim())
	}
	if classifier.NumClasses() != core.NumLabels() {
		return nil, nil, fmt.Errorf("classifier scores %d classes, label table has %d", classifier.NumClasses(), core.NumLabels())
	}

	slog.Info("Model artifacts loaded",
		slog.String("vectorizer", vecPath),
		slog.String("model", modelPath),
		slog.Int("features", vectorizer.Dim()))
	return vectorizer, classifier, nil
}
