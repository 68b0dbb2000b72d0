package middleware

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"sort"
	"strings"

	"tablebot/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookAuthMiddleware validates the messaging provider's request signature:
// HMAC-SHA1 over the full callback URL plus the sorted form parameters,
// base64 encoded. Validation is skipped outside production and when no auth
// token is configured, so local testing works with plain curl.
func WebhookAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.WebhookAuthToken
		if !config.IsProduction() || token == "" {
			c.Next()
			return
		}

		signature := c.GetHeader("X-Webhook-Signature")
		if signature == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Missing webhook signature"})
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid form body"})
			return
		}

		expected := computeSignature(token, requestURL(c), c.Request.PostForm)
		if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
			zap.L().Warn("Webhook signature mismatch", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid webhook signature"})
			return
		}

		c.Next()
	}
}

func requestURL(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil && c.GetHeader("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}

func computeSignature(token, url string, form map[string][]string) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(url)
	for _, k := range keys {
		for _, v := range form[k] {
			b.WriteString(k)
			b.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(token))
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
