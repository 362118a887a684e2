package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/config"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/llm"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/media"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/search"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/server"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/storage"
	"github.com/Mombinjenga/AI-Shopping-Assistant/internal/visualize"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	uploader, err := media.NewUploader(ctx, media.Config{
		Bucket:         cfg.Media.Bucket,
		Region:         cfg.Media.Region,
		Endpoint:       cfg.Media.Endpoint,
		PublicURL:      cfg.Media.PublicURL,
		KeyPrefix:      cfg.Media.KeyPrefix,
		ForcePathStyle: cfg.Media.ForcePathStyle,
		AccessKey:      cfg.Media.AccessKey,
		SecretKey:      cfg.Media.SecretKey,
	})
	if err != nil {
		log.Fatalf("failed to init media uploader: %v", err)
	}

	openAIClient := llm.NewOpenAIClient(cfg.AI.OpenAI.APIKey, cfg.AI.OpenAI.Model, cfg.ProviderTimeout)

	var chatClient llm.Client = openAIClient
	var analyzer visualize.Analyzer = visualize.NewOpenAIAnalyzer(openAIClient)
	if cfg.AI.Provider == "gemini" {
		chatClient = llm.NewGeminiClient(cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model, cfg.ProviderTimeout, nil)
		analyzer = visualize.NewGeminiAnalyzer(cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model, cfg.ProviderTimeout)
		log.Println("chat provider: Gemini")
	} else {
		log.Println("chat provider: OpenAI")
	}

	var renderer visualize.Renderer
	switch cfg.AI.ImageProvider {
	case "gemini":
		renderer = visualize.NewGeminiRenderer(cfg.AI.Gemini.APIKey, cfg.AI.Gemini.ImageModel, cfg.ProviderTimeout)
		log.Println("image provider: Gemini")
	case "imagen":
		renderer = visualize.NewVertexImagenRenderer(visualize.VertexImagenConfig{
			ProjectID:          cfg.Imagen.ProjectID,
			Location:           cfg.Imagen.Location,
			Model:              cfg.Imagen.Model,
			ServiceAccountJSON: cfg.Imagen.ServiceAccountJSON,
		})
		log.Println("image provider: Vertex Imagen")
	default:
		renderer = visualize.NewOpenAIRenderer(openAIClient)
		log.Println("image provider: OpenAI")
	}

	searchHandler := search.Handler{
		Assistant: search.NewAssistant(chatClient),
		Policy:    cfg.FailurePolicy,
		Timeout:   cfg.ProviderTimeout,
	}

	visualizeHandler := visualize.Handler{
		Analyzer: analyzer,
		Renderer: renderer,
		Uploader: uploader,
		Policy:   cfg.FailurePolicy,
		Timeout:  cfg.ProviderTimeout,
	}

	staticFS := http.FileServer(http.Dir("web"))
	srv := server.New(cfg.Port, searchHandler, visualizeHandler, staticFS)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("shutting down server...")
		if err := srv.Close(); err != nil {
			log.Printf("server close error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
