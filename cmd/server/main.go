package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/zester4/RaidenAlpha/internal/api"
	"github.com/zester4/RaidenAlpha/internal/memory"
	"github.com/zester4/RaidenAlpha/internal/providers/nlp"
	"github.com/zester4/RaidenAlpha/internal/service"
	"github.com/zester4/RaidenAlpha/internal/tools"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx := context.Background()
	provider := nlp.NewFromEnv(ctx)
	store := memory.NewStore(provider)

	reg := tools.NewRegistry()
	reg.Register(tools.NewTextAnalysisTool(provider, store))
	reg.Register(&tools.FetchURLTool{})
	reg.Register(&tools.HTMLToTextTool{})
	reg.Register(&tools.ExtractLinksTool{})
	reg.Register(&tools.PDFExtractTool{})
	reg.Register(&tools.MemorySearchTool{Store: store})

	svc := service.New(reg)

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, svc, store)

	log.Printf("server listening on %s (tools: %v)", addr, reg.Names())
	if err := http.ListenAndServe(addr, cors(mux)); err != nil {
		log.Fatal(err)
	}
}

// simple CORS middleware for local dev
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
