package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"tablebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// messageResponse is the XML reply envelope the messaging provider expects.
type messageResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// WebhookHandler receives one inbound chat message (application/x-www-form-
// urlencoded: From, Body, NumMedia) and answers with the bot's reply.
func (hb *HandlerBundle) WebhookHandler(c *gin.Context) {
	from := strings.TrimSpace(c.PostForm("From"))
	body := c.PostForm("Body")
	numMedia := c.PostForm("NumMedia")

	if from == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing sender", "The From field is required")
		return
	}

	if numMedia != "" && numMedia != "0" {
		c.XML(http.StatusOK, messageResponse{
			Message: "I can only read text messages for now! Please type your request.",
		})
		return
	}

	if strings.TrimSpace(body) == "" {
		c.XML(http.StatusOK, messageResponse{
			Message: "Please send a message so I can help you!",
		})
		return
	}

	reply := hb.Conversation.Handle(from, body)

	utils.GetLogger().Debug("webhook reply sent",
		zap.String("from", from), zap.Int("replyLength", len(reply)))

	c.XML(http.StatusOK, messageResponse{Message: reply})
}

// ChatHandler is the JSON twin of the webhook for web clients and testing:
// {"userId": "...", "message": "..."} in, {"reply": "..."} out.
func (hb *HandlerBundle) ChatHandler(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId" binding:"required"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	reply := hb.Conversation.Handle(req.UserID, req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
