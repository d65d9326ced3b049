package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rm-hull/camfilter/internal/export"
	"github.com/rm-hull/camfilter/internal/filter"
	"github.com/rm-hull/camfilter/internal/preview"
)

type FilterInfo struct {
	Name string      `json:"name"`
	Kind filter.Kind `json:"-"`
	CSS  string      `json:"css"`
}

func Filters() []FilterInfo {
	kinds := filter.Kinds()
	infos := make([]FilterInfo, len(kinds))
	for i, k := range kinds {
		infos[i] = FilterInfo{Name: k.String(), Kind: k, CSS: preview.CSS(k)}
	}
	return infos
}

// Register adds the read-only page metadata routes. Frames never reach the
// server: filtering happens in the browser.
func Register(r gin.IRouter, format export.Format) {
	v1 := r.Group("/v1")

	v1.GET("/filters", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"filters": Filters()})
	})

	v1.GET("/filters/:name", func(c *gin.Context) {
		kind, err := filter.Parse(c.Param("name"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, FilterInfo{Name: kind.String(), Kind: kind, CSS: preview.CSS(kind)})
	})

	v1.GET("/share", func(c *gin.Context) {
		c.JSON(http.StatusOK, export.NewShare(format))
	})

	v1.GET("/grid", func(c *gin.Context) {
		c.JSON(http.StatusNotImplemented, gin.H{"message": StyleGridMessage})
	})
}

const StyleGridMessage = "Style Grid feature coming soon! This will generate multiple AI filter variations."
