package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"chat-relay/infrastructure/http/server"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/services"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config     Config
	BaseURL    string
	httpClient *http.Client
	server     *server.Server
}

// SetupSuite loads the environment configuration before running tests.
// Without a CHAT_SERVER_URL the whole stack runs in-process, so the
// scenarios work out of the box.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	if s.Config.ServerURL != "" {
		s.BaseURL = s.Config.ServerURL
		return
	}
	s.bootEmbeddedServer()
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(ctx)
}

func (s *BaseHTTPSuite) bootEmbeddedServer() {
	log := logs.GetLoggerFromString("ERROR")
	store := repositories.NewMessageRepository()
	metrics := observability.NewMetrics()
	chatService := services.NewChatService(log, store, metrics)
	s.server = server.NewServer(log, chatService, server.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.BaseURL = "http://" + ln.Addr().String()

	go func() {
		_ = s.server.App().Listener(ln)
	}()

	s.Require().Eventually(func() bool {
		resp, err := s.httpClient.Get(s.BaseURL + "/status")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "embedded chat server never became ready")
}

// Section prints a colorized header for one scenario step in logs
func (s *BaseHTTPSuite) Section(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// DoJSON performs one HTTP call with logging, colors, and JSON debugging.
// A nil payload sends no body. The response body is always returned raw
// so each step asserts exactly what went over the wire.
func (s *BaseHTTPSuite) DoJSON(method, path string, payload any) (int, []byte) {
	var body io.Reader
	var rawRequest []byte
	if payload != nil {
		var err error
		rawRequest, err = json.MarshalIndent(payload, "", "  ")
		s.Require().NoError(err)
		body = bytes.NewReader(rawRequest)
	}

	req, err := http.NewRequest(method, s.BaseURL+path, body)
	s.Require().NoError(err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err, "Failed to reach chat server at "+s.BaseURL)
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		if rawRequest != nil {
			fmt.Fprintln(&logBuilder, "\nREQUEST:")
			fmt.Fprintln(&logBuilder, string(rawRequest))
		}
		fmt.Fprintln(&logBuilder, "\nRESPONSE:")
		fmt.Fprintln(&logBuilder, string(responseBody))
	}
	s.T().Log(logBuilder.String())

	return resp.StatusCode, responseBody
}

// GetJSON decodes a GET response into out and returns the status code.
func (s *BaseHTTPSuite) GetJSON(path string, out any) int {
	code, body := s.DoJSON(http.MethodGet, path, nil)
	s.Require().NoError(json.Unmarshal(body, out), "Response is not valid JSON: %s", string(body))
	return code
}

// PostJSON posts payload and decodes the response into out.
func (s *BaseHTTPSuite) PostJSON(path string, payload, out any) int {
	code, body := s.DoJSON(http.MethodPost, path, payload)
	s.Require().NoError(json.Unmarshal(body, out), "Response is not valid JSON: %s", string(body))
	return code
}
