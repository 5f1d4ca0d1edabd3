package chatHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"

	"rtlmac/internal/api/chat"
	contextPkg "rtlmac/pkg/context"
	"rtlmac/pkg/handlerUtil"
	"rtlmac/pkg/log"
)

func (h *ChatHandler) Query(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat query request")

	var req chat.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.chatService.HandleQuery(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "handle_query")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"query_type": result.QueryType,
		}).Info("Chat query resolved")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatHandler) Catalog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Serving API catalog")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.chatService.Catalog())
}

func (h *ChatHandler) handleChatWebSocket(c *websocket.Conn) {
	h.log.Info("Chat WebSocket client connected")
	defer h.log.Info("Chat WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var req chat.QueryRequest
		if err := c.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Chat WebSocket error: %v", err)
			} else {
				h.log.Info("Chat WebSocket connection closed")
			}
			break
		}

		if req.Message == "" {
			if writeErr := c.WriteJSON(map[string]string{"error": "message is required"}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		result, err := h.chatService.HandleQuery(ctx, req)
		cancel()

		if err != nil {
			h.log.Errorf("Error handling chat query: %v", err)
			if writeErr := c.WriteJSON(map[string]string{"error": "failed to process query"}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(result); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
