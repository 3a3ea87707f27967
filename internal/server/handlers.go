package server

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	discovery "github.com/allbin/zwave-ports"
)

type handler struct {
	discoverer Discoverer
}

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	Count     int                  `json:"count"`
	Endpoints []discovery.Endpoint `json:"endpoints"`
}

type validateResponse struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) listEndpoints(c *gin.Context) {
	endpoints := h.discoverer.List()
	c.JSON(http.StatusOK, listResponse{Count: len(endpoints), Endpoints: endpoints})
}

// describeEndpoint takes the name as a query parameter since device paths
// contain slashes. Only well formed, already clean names reach the scanner
// so the route cannot probe arbitrary paths.
func (h *handler) describeEndpoint(c *gin.Context) {
	name, ok := c.GetQuery("name")
	if !ok || name == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "missing name parameter"})
		return
	}
	if !discovery.ValidName(name) || (strings.HasPrefix(name, "/") && path.Clean(name) != name) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid endpoint name"})
		return
	}

	ep, found := h.discoverer.Describe(name)
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: discovery.ErrEndpointNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *handler) validateName(c *gin.Context) {
	name := c.Query("name")
	c.JSON(http.StatusOK, validateResponse{Name: name, Valid: discovery.ValidName(name)})
}
