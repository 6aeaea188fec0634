package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"firdesk/pkg/analysis"
	"firdesk/pkg/extract"
	"firdesk/pkg/inference"
	"firdesk/pkg/schema"
	"firdesk/pkg/server"
	"firdesk/pkg/utils"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGKILL)

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	openAI := inference.NewOpenAIInferencer(apiKey, model)
	if apiKey == "" {
		openAI.ChangeBaseURL("http://localhost:1234/v1")
		openAI.SetModel("")
	}
	var inf inference.Inferencer = openAI

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey != "" {
		gemini, err := inference.NewGeminiInferencer(geminiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize Gemini backend: %v", err)
		}
		inf = gemini
	}

	extractor := extract.New(inf)
	analyzer := analysis.NewClient(os.Getenv("ANALYSIS_URL"))

	srv := server.NewServer(ctx, extractor, analyzer)
	srv.Echo.Logger.SetLevel(log.DEBUG)

	if path := os.Getenv("HISTORY_FILE"); path != "" {
		srv.HistoryPath = path
	}

	history, err := utils.Load[map[string]schema.Record](srv.HistoryPath)
	if err == nil && history != nil {
		srv.History = history
		log.Infof("Loaded %d filed FIRs from %s", len(history), srv.HistoryPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Failed to load %s: %v", srv.HistoryPath, err)
	}

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}
