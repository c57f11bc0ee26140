package pipeview

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferama/rospo-pipes/pkg/conf"
	"github.com/ferama/rospo-pipes/pkg/utils"
	"github.com/gin-gonic/gin"
)

// apiItem is what the rospo web api sends for every pipe
type apiItem struct {
	ID       int            `json:"Id"`
	Listener net.Addr       `json:"Listener"`
	Endpoint utils.Endpoint `json:"Endpoint"`
}

// fakeAPI serves the pipes collection the way rospo does
type fakeAPI struct {
	status int
	// if set it is written as is, otherwise items are json encoded
	raw   string
	items []apiItem
	hits  int
}

func (a *fakeAPI) routes(router *gin.RouterGroup) {
	router.GET("/", func(c *gin.Context) {
		a.hits++
		status := a.status
		if status == 0 {
			status = http.StatusOK
		}
		if a.raw != "" {
			c.Data(status, "application/json", []byte(a.raw))
			return
		}
		if status != http.StatusOK {
			c.JSON(status, gin.H{
				"error": "item not found",
			})
			return
		}
		c.JSON(status, a.items)
	})
}

func startFakeAPI(t *testing.T, a *fakeAPI) (*httptest.Server, *Fetcher) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	a.routes(r.Group("/api/pipes"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := conf.DefaultWebClientConf()
	c.API = srv.URL
	f, err := NewFetcher(c, srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	return srv, f
}

func tcpAddr(ip string, port int) net.Addr {
	return &net.TCPAddr{IP: net.ParseIP(ip), Port: port}
}
