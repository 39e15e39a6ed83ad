package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-internmatch-portal/internal/api"
	"go-internmatch-portal/internal/config"
	"go-internmatch-portal/internal/models"
	"go-internmatch-portal/internal/recommend"
	"go-internmatch-portal/internal/reporter"
	"go-internmatch-portal/internal/session"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. API: %s", cfg.APIBaseURL)

	//setup context with timeout = 2 mins
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Println("🚀 Starting InternMatch notifier...")

	//restore the saved session
	client := api.NewClient(cfg.APIBaseURL)
	store := session.New(client, session.NewFileStore(cfg.SessionPath))
	store.Initialize(ctx)
	if !store.IsAuthenticated() {
		log.Fatal("❌ No saved session. Sign in with the portal first.")
	}
	sess := store.User()
	log.Printf("👤 Signed in as %s %s", sess.FirstName, sess.LastName)

	//fetch and re-rank recommendations
	svc := recommend.NewService(client, recommend.NewSeenCache(cfg.CachePath))
	recs, err := svc.FetchFor(ctx, sess, cfg.TopN)
	if err != nil {
		log.Fatalf("❌ Failed to fetch recommendations: %v", err)
	}
	log.Printf("📦 Received %d recommendations", len(recs))

	//keep only internships we have not notified about yet
	fresh := svc.Unseen(recs)
	log.Printf("🔍 Deduplication: %d total -> %d new", len(recs), len(fresh))
	if len(fresh) == 0 {
		log.Println("🏁 Nothing new. Done.")
		return
	}

	//send new matches to telegram
	if cfg.TelegramEnabled() {
		bot, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		for _, rec := range fresh {
			log.Printf("  [%.1f%%] %s @ %s", rec.Match, rec.Title, rec.Company)
			if err := bot.SendRecommendation(rec); err != nil {
				log.Printf("⚠️ Failed to send recommendation to Telegram: %v", err)
			}
			//1 second delay to avoid 429
			time.Sleep(1 * time.Second)
		}
		statusMsg := fmt.Sprintf("Found %d new internship matches.", len(fresh))
		if err := bot.SendStatus(statusMsg); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	} else {
		log.Println("ℹ️ Telegram not configured; printing matches only.")
		for _, rec := range fresh {
			log.Printf("  [%.1f%%] %s @ %s (%s)", rec.Match, rec.Title, rec.Company, rec.Location)
		}
	}

	svc.MarkSeen(fresh)
	log.Printf("💾 Marked %d internships as seen", len(fresh))

	//save results
	saveRecommendations(fresh)

	log.Println("🏁 Execution finished.")
}

func saveRecommendations(recs []models.Recommendation) {
	if len(recs) == 0 {
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: recommendations-YYYY-MM-DD.json
	filename := fmt.Sprintf("recommendations-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(recs, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal recommendations to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
