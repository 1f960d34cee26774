package routes

import (
	"quotebot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathProjects = "/projects"
	PathCatalog  = "/catalog"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.GET("/:id/proposal", h.GetProposal)

		// One endpoint per gate decision; the use case picks the gate from the status.
		projects.PATCH("/:id/approve", h.ApproveProject)
		projects.PATCH("/:id/modify", h.ModifyProject)
		projects.PATCH("/:id/reject", h.RejectProject)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathCatalog, h.ListCatalog)
}
