package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/northern-oak/assets"
)

// SetupAssets serves the embedded CSS, JS and images under /assets.
func SetupAssets(r *gin.Engine) error {
	if _, err := assets.Assets.ReadDir("css"); err != nil {
		return err
	}
	r.StaticFS("/assets", http.FS(assets.Assets))
	return nil
}
