package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gramsetu/noticeboard/internal/config"
	"github.com/gramsetu/noticeboard/internal/core"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/core/phone"
	"github.com/gramsetu/noticeboard/internal/driver"
	"github.com/gramsetu/noticeboard/internal/llm"
	"github.com/gramsetu/noticeboard/internal/media"
	"github.com/gramsetu/noticeboard/internal/scheduler"
	"github.com/gramsetu/noticeboard/internal/transport"
)

type Server struct {
	Board     *core.Noticeboard
	Sender    transport.Sender
	Scheduler *scheduler.Scheduler
	Config    *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Env overrides for everything secret-shaped.
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		cfg.WhatsApp.AccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		cfg.WhatsApp.AuthToken = v
	}
	if v := os.Getenv("ADMIN_PHONE"); v != "" {
		cfg.WhatsApp.AdminPhone = v
	}
	if cfg.Memgraph.URI == "" {
		cfg.Memgraph.URI = "bolt://localhost:7687"
	}

	d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	board := core.NewNoticeboard(d, llmClient, cfg)
	if err := board.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	sender := transport.NewWhatsAppSender(cfg.WhatsApp.AccountSID, cfg.WhatsApp.AuthToken, cfg.WhatsApp.FromNumber)

	sched, err := scheduler.New(board.Store, sender, cfg.Scheduler.ReminderCron)
	if err != nil {
		log.Fatalf("Failed to set up scheduler: %v", err)
	}

	return &Server{
		Board:     board,
		Sender:    sender,
		Scheduler: sched,
		Config:    cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/webhook", s.Webhook)
	r.GET("/admin/events", s.ListEvents)
	r.PATCH("/admin/events/:index/status", s.UpdateStatus)
	r.POST("/admin/broadcast", s.Broadcast)

	return r
}

// Webhook is the provider's inbound-message callback. One request is
// processed synchronously to completion; a media batch runs in
// attachment order with no fan-out.
func (s *Server) Webhook(c *gin.Context) {
	from := strings.TrimPrefix(c.PostForm("From"), "whatsapp:")
	body := strings.TrimSpace(c.PostForm("Body"))
	numMedia, _ := strconv.Atoi(c.PostForm("NumMedia"))

	fromPhone, ok := phone.Normalize(from)
	if !ok {
		log.Printf("webhook from unparseable number %q", from)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	ctx := c.Request.Context()
	isAdmin := s.isAdmin(fromPhone)

	var replies []string
	switch {
	case isAdmin && numMedia > 0:
		replies = s.ingestMediaBatch(ctx, fromPhone, numMedia, c)
	case isAdmin:
		replies = []string{s.Board.IngestText(ctx, body, fromPhone)}
	case strings.EqualFold(body, "stop") || strings.EqualFold(body, "band karo"):
		replies = []string{s.optOut(ctx, fromPhone)}
	default:
		replies = []string{s.Board.Answer(ctx, body, fromPhone)}
	}

	for _, reply := range replies {
		if reply == "" {
			continue
		}
		if err := s.Sender.Send(fromPhone, reply); err != nil {
			log.Printf("failed to send reply to %s: %v", fromPhone, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) ingestMediaBatch(ctx context.Context, fromPhone string, numMedia int, c *gin.Context) []string {
	replies := make([]string, 0, numMedia)
	for i := 0; i < numMedia; i++ {
		url := c.PostForm(fmt.Sprintf("MediaUrl%d", i))
		contentType := c.PostForm(fmt.Sprintf("MediaContentType%d", i))
		if url == "" {
			continue
		}

		localPath, err := media.Download(ctx, url, s.Config.WhatsApp.AccountSID, s.Config.WhatsApp.AuthToken)
		if err != nil {
			log.Printf("media download failed for item %d: %v", i, err)
			replies = append(replies, "Maaf kijiye, media download nahi ho paya.")
			continue
		}

		replies = append(replies, s.Board.IngestMedia(ctx, localPath, media.CoarseType(contentType), url, fromPhone))
		os.Remove(localPath)
	}
	return replies
}

func (s *Server) optOut(ctx context.Context, fromPhone string) string {
	if err := s.Board.Store.SetOptOut(ctx, fromPhone, true); err != nil {
		log.Printf("opt-out failed for %s: %v", fromPhone, err)
		return "Maaf kijiye, kuch gadbad ho gayi. Kripya thodi der baad koshish karein."
	}
	return "Aapko ab suchnayein nahi bheji jayengi."
}

func (s *Server) isAdmin(normalizedPhone string) bool {
	admin, ok := phone.Normalize(s.Config.WhatsApp.AdminPhone)
	return ok && admin == normalizedPhone
}

func (s *Server) ListEvents(c *gin.Context) {
	events, err := s.Board.Store.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

type statusRequest struct {
	Status model.EventStatus `json:"status"`
}

func (s *Server) UpdateStatus(c *gin.Context) {
	index, err := strconv.ParseInt(c.Param("index"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event index"})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	switch req.Status {
	case model.StatusPending, model.StatusConfirmed, model.StatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	found, err := s.Board.Store.UpdateStatus(c.Request.Context(), index, req.Status)
	if err != nil {
		log.Printf("failed to update status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type broadcastRequest struct {
	Message string `json:"message"`
}

func (s *Server) Broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sent, err := s.Scheduler.Broadcast(c.Request.Context(), req.Message)
	if err != nil {
		log.Printf("broadcast failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to broadcast"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "sent": sent})
}
