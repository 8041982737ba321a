package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/middleware"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/service"
	ws "github.com/campushire/driveport-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams email delivery progress to company dashboards.
type WSHandler struct {
	rdb          *redis.Client
	driveService *service.DriveService
	emailService *service.EmailService
	log          zerolog.Logger
	upgrader     websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, driveService *service.DriveService, emailService *service.EmailService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:          rdb,
		driveService: driveService,
		emailService: emailService,
		log:          log.With().Str("component", "ws_handler").Logger(),
		upgrader:     buildUpgrader(allowedOrigins),
	}
}

// EmailProgressStream godoc
// WS /ws/company/drives/:drive_id/email-progress?token=
// Relays the drive's email send progress as it happens. Sends one snapshot
// from the Redis counters on connect, then forwards every worker event.
func (h *WSHandler) EmailProgressStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	companyID := claims.UserID

	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	// Ownership check before the upgrade so a plain 404 comes back over HTTP.
	if _, err := h.driveService.GetForCompany(c.Request.Context(), driveID, companyID); err != nil {
		failDomain(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	writer := ws.NewWriter(conn)

	wsLog := h.log.With().
		Int("company_id", companyID).
		Int("drive_id", driveID).
		Logger()
	wsLog.Info().Msg("Company connected to progress stream")

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, config.CacheKey.EmailProgressChannel(driveID))
	defer sub.Close()

	h.sendSnapshot(writer, driveID, companyID, c)

	// Reader goroutine: the client only ever sends pings, but reading also
	// detects the close frame so the relay loop can stop.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				}
				return
			}
			switch msg.Action {
			case ws.ActionPing:
				writer.WriteTyped(ws.PongResponse{Event: ws.EventPong})
			default:
				writer.WriteError("unknown action: " + string(msg.Action))
			}
		}
	}()

	events := sub.Channel()
	for {
		select {
		case <-done:
			wsLog.Debug().Msg("Connection closed")
			return
		case <-ctx.Done():
			return
		case msg, open := <-events:
			if !open {
				return
			}
			var event model.EmailProgressEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				wsLog.Warn().Err(err).Msg("Malformed progress event")
				continue
			}
			if err := writer.WriteTyped(ws.ProgressResponse{Event: ws.EventProgress, Progress: event}); err != nil {
				return
			}
			if event.Done {
				wsLog.Info().Int("sent", event.Sent).Int("failed", event.Failed).Msg("Email send finished")
			}
		}
	}
}

// sendSnapshot pushes the current counter values so late subscribers see
// where the send already stands.
func (h *WSHandler) sendSnapshot(writer *ws.Writer, driveID, companyID int, c *gin.Context) {
	status, err := h.emailService.Status(c.Request.Context(), driveID, companyID)
	if err != nil {
		h.log.Warn().Err(err).Int("drive_id", driveID).Msg("Snapshot read failed")
		return
	}
	snapshot := model.EmailProgressEvent{
		DriveID: driveID,
		Sent:    status.Sent,
		Failed:  status.Failed,
		Total:   status.Total,
		Done:    status.Total > 0 && status.Sent+status.Failed >= status.Total,
	}
	writer.WriteTyped(ws.ProgressResponse{Event: ws.EventProgress, Progress: snapshot})
}
