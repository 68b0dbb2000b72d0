package handlers

import (
	"net/http"

	"tablebot/models"

	"github.com/gin-gonic/gin"
)

func requestLang(c *gin.Context) string {
	if c.Query("lang") == models.LangTamil {
		return models.LangTamil
	}
	return models.LangEnglish
}

// GetMenuHandler lists the menu packs, optionally localized with ?lang=ta.
func (hb *HandlerBundle) GetMenuHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packs":     hb.Catalog.Packs(),
		"formatted": hb.Catalog.FormatMenuList(requestLang(c)),
	})
}

// GetAddonsHandler lists the bookable addons.
func (hb *HandlerBundle) GetAddonsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"addons":    hb.Catalog.Addons(),
		"formatted": hb.Catalog.FormatAddonList(requestLang(c)),
	})
}
