package server

import (
	_ "embed"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const openAPIPath = "/api-docs/openapi.json"

//go:embed openapi.json
var openAPIDocument []byte

// registerDocs serves the OpenAPI document and the Swagger UI under /docs.
// GET /docs is redirected to /docs/ by gin and from there to /docs/index.html.
func registerDocs(r *gin.Engine) {
	r.GET(openAPIPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", openAPIDocument)
	})

	swaggerUI := ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(openAPIPath),
		ginSwagger.DocExpansion("list"),
	)
	r.GET("/docs/*any", func(c *gin.Context) {
		if strings.Trim(c.Param("any"), "/") == "" {
			c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
			return
		}
		swaggerUI(c)
	})
}
