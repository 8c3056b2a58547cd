package ws

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"go_seo/internal/db"
	"go_seo/internal/model"
)

// handleRequestAudits handles the request:audits event. The client may
// pass a requestId to receive only the reports of one run.
func handleRequestAudits(s socketio.Conn, data interface{}) {
	log.Printf("[WebSocket] request:audits from client %s, data: %v", s.ID(), data)

	requestID := ""
	if dataMap, ok := data.(map[string]interface{}); ok {
		if id, ok := dataMap["requestId"].(string); ok {
			requestID = id
		}
	}

	query := db.Get().Model(&model.AuditReport{})
	if requestID != "" {
		query = query.Where("request_id = ?", requestID)
	}

	// Limit to the most recent runs for safety
	var reports []model.AuditReport
	if err := query.Order("id DESC").Limit(500).Find(&reports).Error; err != nil {
		log.Printf("[WebSocket] Failed to query audit reports: %v", err)
		s.Emit("error", map[string]interface{}{
			"message": "Failed to query audit reports",
		})
		return
	}

	s.Emit("audits:initial", map[string]interface{}{
		"items": reports,
		"total": len(reports),
	})

	log.Printf("[WebSocket] Sent audit reports: total=%d, requestId=%q", len(reports), requestID)
}

// PublishAuditEvent broadcasts a finished audit to all connected clients.
// Broadcast failure should not affect the main flow, so there is no error
// return.
func PublishAuditEvent(event string, payload interface{}) {
	BroadcastToAll(event, payload)
	log.Printf("[WebSocket] Event broadcasted: %s", event)
}
