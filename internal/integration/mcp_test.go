//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/suite"

	"github.com/ladiops/ladisales-mcp/internal/ladisales"
	"github.com/ladiops/ladisales-mcp/internal/logging"
	"github.com/ladiops/ladisales-mcp/internal/server/listener"
	"github.com/ladiops/ladisales-mcp/internal/server/tools"
	"github.com/ladiops/ladisales-mcp/internal/testutil"
)

const productTotal = 25

// GatewayIntegrationTestSuite drives the full stack: a streamable MCP client
// session against the listener, backed by a stub LaDiSales upstream.
type GatewayIntegrationTestSuite struct {
	suite.Suite
	ctx    context.Context
	cancel context.CancelFunc
	port   int

	upstream      *httptest.Server
	upstreamMutex sync.Mutex
	upstreamCalls map[string]int

	gateway     *listener.Listener
	runnerErrCh chan error
	mcpClient   *mcpsdk.Client
	mcpSession  *mcpsdk.ClientSession
}

func (s *GatewayIntegrationTestSuite) SetupSuite() {
	logging.Setup("debug", "text")

	s.ctx, s.cancel = context.WithCancel(s.T().Context())
	s.port = testutil.GetRandomPort(s.T())
	s.runnerErrCh = make(chan error, 1)
	s.upstreamCalls = make(map[string]int)

	s.upstream = httptest.NewServer(http.HandlerFunc(s.serveUpstream))

	client, err := ladisales.New(s.upstream.URL, "integration-key",
		ladisales.WithRetryMax(0),
		ladisales.WithTimeout(5*time.Second),
	)
	s.Require().NoError(err)

	registry, err := tools.New(client, slog.Default(), "integration")
	s.Require().NoError(err)

	s.gateway, err = listener.New(
		fmt.Sprintf("127.0.0.1:%d", s.port),
		registry,
		listener.Timeouts{Drain: time.Second},
		slog.Default(),
	)
	s.Require().NoError(err)

	go func() {
		s.runnerErrCh <- s.gateway.Run(s.ctx)
	}()

	s.Require().Eventually(func() bool {
		select {
		case err := <-s.runnerErrCh:
			s.T().Fatalf("gateway failed to start: %v", err)
			return false
		default:
			return s.gateway.IsRunning()
		}
	}, time.Second, 10*time.Millisecond, "gateway should start")

	mcpURL := fmt.Sprintf("http://127.0.0.1:%d/mcp", s.port)

	// Wait for the server to be fully ready before creating the session
	// used by the tests.
	s.Require().Eventually(func() bool {
		transport := &mcpsdk.StreamableClientTransport{Endpoint: mcpURL}
		tempClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "probe-client", Version: "1.0.0"}, nil)
		session, err := tempClient.Connect(s.ctx, transport, nil)
		if err != nil {
			return false
		}
		session.Close() //nolint:errcheck
		return true
	}, 10*time.Second, 100*time.Millisecond, "gateway should accept MCP connections")

	transport := &mcpsdk.StreamableClientTransport{Endpoint: mcpURL}
	s.mcpClient = mcpsdk.NewClient(&mcpsdk.Implementation{Name: "integration-test-client", Version: "1.0.0"}, nil)

	s.mcpSession, err = s.mcpClient.Connect(s.ctx, transport, nil)
	s.Require().NoError(err, "failed to establish MCP session")
}

func (s *GatewayIntegrationTestSuite) TearDownSuite() {
	if s.mcpSession != nil {
		s.mcpSession.Close() //nolint:errcheck
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.gateway != nil {
		s.gateway.Stop()
		s.Require().Eventually(func() bool {
			return !s.gateway.IsRunning()
		}, time.Second, 10*time.Millisecond, "gateway should stop")
	}
	if s.upstream != nil {
		s.upstream.Close()
	}
}

// serveUpstream is the stub LaDiSales API.
func (s *GatewayIntegrationTestSuite) serveUpstream(w http.ResponseWriter, r *http.Request) {
	s.upstreamMutex.Lock()
	s.upstreamCalls[r.URL.Path]++
	s.upstreamMutex.Unlock()

	if r.Header.Get("Api-Key") != "integration-key" {
		http.Error(w, `{"message":"missing api key"}`, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/product/list":
		var body struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		start := (body.Page - 1) * body.Limit
		items := []any{}
		for i := start; i < productTotal && i < start+body.Limit; i++ {
			items = append(items, map[string]any{"id": i + 1, "name": fmt.Sprintf("product-%d", i+1)})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "total": productTotal})
	case "/customer/show":
		http.Error(w, `{"message":"customer not found"}`, http.StatusNotFound)
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "path": r.URL.Path})
	}
}

func (s *GatewayIntegrationTestSuite) callCount(path string) int {
	s.upstreamMutex.Lock()
	defer s.upstreamMutex.Unlock()
	return s.upstreamCalls[path]
}

func (s *GatewayIntegrationTestSuite) textContent(result *mcpsdk.CallToolResult) string {
	s.Require().NotEmpty(result.Content)
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	s.Require().True(ok, "content should be text")
	return text.Text
}

func (s *GatewayIntegrationTestSuite) TestListToolsReturnsFullCatalog() {
	result, err := s.mcpSession.ListTools(s.ctx, &mcpsdk.ListToolsParams{})
	s.Require().NoError(err)
	s.Require().Len(result.Tools, 21)

	toolNames := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		toolNames[i] = tool.Name
	}
	s.Contains(toolNames, "list_products")
	s.Contains(toolNames, "create_discount")
	s.Contains(toolNames, "search_customers")
	s.Contains(toolNames, "list_ward")
}

func (s *GatewayIntegrationTestSuite) TestGetProductRoundTrip() {
	before := s.callCount("/product/show")

	result, err := s.mcpSession.CallTool(s.ctx, &mcpsdk.CallToolParams{
		Name:      "get_product",
		Arguments: map[string]any{"product_id": 7},
	})
	s.Require().NoError(err)
	s.Require().False(result.IsError)

	var doc map[string]any
	s.Require().NoError(json.Unmarshal([]byte(s.textContent(result)), &doc))
	s.Equal(true, doc["ok"])

	s.Equal(before+1, s.callCount("/product/show"), "one tool call, one upstream call")
}

func (s *GatewayIntegrationTestSuite) TestListProductsAggregatesAllPages() {
	before := s.callCount("/product/list")

	result, err := s.mcpSession.CallTool(s.ctx, &mcpsdk.CallToolParams{
		Name:      "list_products",
		Arguments: map[string]any{"page": 1, "limit": 10, "max_items": productTotal},
	})
	s.Require().NoError(err)
	s.Require().False(result.IsError)

	var out struct {
		Products []map[string]any `json:"products"`
		Pages    int              `json:"pages"`
	}
	s.Require().NoError(json.Unmarshal([]byte(s.textContent(result)), &out))
	s.Require().Len(out.Products, productTotal)
	s.Equal(3, out.Pages)
	for i, product := range out.Products {
		s.EqualValues(i+1, product["id"], "products must arrive in upstream order")
	}

	s.Equal(before+3, s.callCount("/product/list"))
}

func (s *GatewayIntegrationTestSuite) TestValidationErrorSkipsUpstream() {
	before := s.callCount("/product/show")

	result, err := s.mcpSession.CallTool(s.ctx, &mcpsdk.CallToolParams{
		Name:      "get_product",
		Arguments: map[string]any{"product_id": 0},
	})
	s.Require().NoError(err, "tool errors surface as results, not protocol errors")
	s.Require().True(result.IsError)
	s.Contains(s.textContent(result), "ValidationError")

	s.Equal(before, s.callCount("/product/show"), "invalid input must not reach the upstream")
}

func (s *GatewayIntegrationTestSuite) TestUpstreamRejectionSurfaces() {
	result, err := s.mcpSession.CallTool(s.ctx, &mcpsdk.CallToolParams{
		Name:      "get_customer",
		Arguments: map[string]any{"customer_id": "42"},
	})
	s.Require().NoError(err)
	s.Require().True(result.IsError)

	text := s.textContent(result)
	s.Contains(text, "UpstreamRejected")
	s.Contains(text, "customer not found")
}

func (s *GatewayIntegrationTestSuite) TestUnknownToolNeverHitsUpstream() {
	s.upstreamMutex.Lock()
	totalBefore := 0
	for _, n := range s.upstreamCalls {
		totalBefore += n
	}
	s.upstreamMutex.Unlock()

	result, err := s.mcpSession.CallTool(s.ctx, &mcpsdk.CallToolParams{
		Name:      "no_such_tool",
		Arguments: map[string]any{},
	})
	if err == nil {
		s.Require().True(result.IsError)
	}

	s.upstreamMutex.Lock()
	totalAfter := 0
	for _, n := range s.upstreamCalls {
		totalAfter += n
	}
	s.upstreamMutex.Unlock()
	s.Equal(totalBefore, totalAfter)
}

func TestGatewayIntegrationSuite(t *testing.T) {
	suite.Run(t, new(GatewayIntegrationTestSuite))
}
