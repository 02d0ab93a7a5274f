// Command server exposes the list comparison over HTTP: a JSON compare
// endpoint, an SVG Venn diagram, TXT/CSV export, and a minimal form page.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	listcompare "github.com/baditaflorin/go_list_compare"
	"github.com/baditaflorin/go_list_compare/internal/adapters/splitter"
	"github.com/baditaflorin/go_list_compare/internal/core/domain"
	"github.com/baditaflorin/go_list_compare/internal/export"
	"github.com/baditaflorin/go_list_compare/internal/render"
)

var (
	cfg    *Config
	logger l.Logger
)

// Request represents a comparison request.
type Request struct {
	ListA           string `json:"list_a"`
	ListB           string `json:"list_b"`
	Delimiter       string `json:"delimiter,omitempty"`
	CustomDelimiter string `json:"custom_delimiter,omitempty"`
	CaseSensitive   bool   `json:"case_sensitive,omitempty"`
	TrimWhitespace  *bool  `json:"trim_whitespace,omitempty"`
	Deduplicate     *bool  `json:"deduplicate,omitempty"`
	SortOutput      bool   `json:"sort_output,omitempty"`
	LabelA          string `json:"label_a,omitempty"`
	LabelB          string `json:"label_b,omitempty"`
}

// Response represents a comparison response.
type Response struct {
	LabelA         string                 `json:"label_a"`
	LabelB         string                 `json:"label_b"`
	SetA           []string               `json:"set_a"`
	SetB           []string               `json:"set_b"`
	Intersection   []string               `json:"intersection"`
	Union          []string               `json:"union"`
	AOnly          []string               `json:"a_only"`
	BOnly          []string               `json:"b_only"`
	TotalA         int                    `json:"total_a"`
	TotalB         int                    `json:"total_b"`
	Jaccard        float64                `json:"jaccard"`
	Overlap        float64                `json:"overlap"`
	ProcessingTime string                 `json:"processing_time,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	var err error
	cfg, err = LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err = createLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting list comparison HTTP server",
		"addr", cfg.Addr,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"warm_up", cfg.WarmUp,
	)

	if cfg.WarmUp {
		// Warm a default pipeline so pools and fold tables are hot.
		if _, err := listcompare.New(
			listcompare.WithLogger(logger),
			listcompare.WithFastNormalizer(),
			listcompare.WithWarmUp(true),
		); err != nil {
			logger.Error("Warmup failed", "error", err)
		}
	}

	server := &fasthttp.Server{
		Handler:            requestHandler,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxRequestSize,
		Concurrency:        cfg.Concurrency,
		TCPKeepalive:       true,
		TCPKeepalivePeriod: 3 * time.Minute,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", cfg.Addr)
	if err := server.ListenAndServe(cfg.Addr); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger builds the server logger, writing to the given file or stdout.
func createLogger(logFile string) (l.Logger, error) {
	output := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
	}
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  logFile != "",
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}

// requestHandler routes requests by path.
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Server", "ListCompareServer")

	switch string(ctx.Path()) {
	case "/":
		handleIndex(ctx)
	case "/health":
		handleHealthCheck(ctx)
	case "/compare":
		handleCompare(ctx)
	case "/venn":
		handleVenn(ctx)
	case "/export":
		handleExport(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests.
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// parseRequest decodes and validates a comparison request body.
func parseRequest(ctx *fasthttp.RequestCtx) (*Request, bool) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return nil, false
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return nil, false
	}
	return &req, true
}

// buildComparator assembles a comparator from a request. An empty custom
// delimiter falls back to the auto mode with a warning rather than failing.
func buildComparator(req *Request) (*listcompare.ListCompare, error) {
	mode := splitter.ModeAuto
	if req.Delimiter != "" {
		parsed, err := splitter.ParseMode(req.Delimiter)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}
	if mode == splitter.ModeCustom && req.CustomDelimiter == "" {
		logger.Warn("Empty custom delimiter, falling back to auto mode")
		mode = splitter.ModeAuto
	}

	opts := []listcompare.Option{
		listcompare.WithLogger(logger),
		listcompare.WithFastNormalizer(),
		listcompare.WithCaseSensitive(req.CaseSensitive),
		listcompare.WithSortOutput(req.SortOutput),
	}
	if mode == splitter.ModeCustom {
		opts = append(opts, listcompare.WithCustomDelimiter(req.CustomDelimiter))
	} else {
		opts = append(opts, listcompare.WithDelimiter(mode))
	}
	if req.TrimWhitespace != nil {
		opts = append(opts, listcompare.WithTrimWhitespace(*req.TrimWhitespace))
	}
	if req.Deduplicate != nil {
		opts = append(opts, listcompare.WithDeduplicate(*req.Deduplicate))
	}
	if req.LabelA != "" || req.LabelB != "" {
		opts = append(opts, listcompare.WithLabels(req.LabelA, req.LabelB))
	}

	return listcompare.New(opts...)
}

// compareFromRequest runs the comparison for a decoded request.
func compareFromRequest(ctx *fasthttp.RequestCtx, req *Request) (domain.Result, bool) {
	lc, err := buildComparator(req)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return domain.Result{}, false
	}

	c, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	return lc.Compare(c, req.ListA, req.ListB), true
}

// handleCompare handles JSON comparison requests.
func handleCompare(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Content-Type", "application/json")

	req, ok := parseRequest(ctx)
	if !ok {
		return
	}

	start := time.Now()
	result, ok := compareFromRequest(ctx, req)
	if !ok {
		return
	}

	writeJSONResponse(ctx, Response{
		LabelA:         result.LabelA,
		LabelB:         result.LabelB,
		SetA:           result.SetA,
		SetB:           result.SetB,
		Intersection:   result.Intersection,
		Union:          result.Union,
		AOnly:          result.AOnly,
		BOnly:          result.BOnly,
		TotalA:         result.TotalA,
		TotalB:         result.TotalB,
		Jaccard:        result.Jaccard,
		Overlap:        result.Overlap,
		ProcessingTime: time.Since(start).String(),
		Details:        result.Details,
	})
}

// handleVenn renders the comparison as an SVG Venn diagram.
func handleVenn(ctx *fasthttp.RequestCtx) {
	req, ok := parseRequest(ctx)
	if !ok {
		return
	}

	result, ok := compareFromRequest(ctx, req)
	if !ok {
		return
	}

	ctx.Response.Header.Set("Content-Type", "image/svg+xml")
	if err := render.VennSVG(ctx, result); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, err.Error())
	}
}

// handleExport writes one comparison region as TXT or CSV. The format and
// region are selected with the "format" and "region" query parameters.
func handleExport(ctx *fasthttp.RequestCtx) {
	req, ok := parseRequest(ctx)
	if !ok {
		return
	}

	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "txt"
	}
	region := domain.Region(ctx.QueryArgs().Peek("region"))
	if region == "" {
		region = domain.RegionIntersection
	}

	result, ok := compareFromRequest(ctx, req)
	if !ok {
		return
	}

	switch format {
	case "txt":
		members := result.Members(region)
		if members == nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			writeJSONError(ctx, "Unknown region: "+string(region))
			return
		}
		ctx.Response.Header.Set("Content-Type", "text/plain; charset=utf-8")
		ctx.Response.Header.Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.Filename(region, "txt")))
		if err := export.WriteTXT(ctx, members); err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			writeJSONError(ctx, err.Error())
		}
	case "csv":
		ctx.Response.Header.Set("Content-Type", "text/csv; charset=utf-8")
		ctx.Response.Header.Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.Filename(domain.RegionUnion, "csv")))
		if err := export.WriteCSV(ctx, result); err != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			writeJSONError(ctx, err.Error())
		}
	default:
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Unknown export format: "+format)
	}
}

// writeJSONResponse serializes a value to the response body.
func writeJSONResponse(ctx *fasthttp.RequestCtx, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, "Failed to serialize response")
		return
	}
	ctx.SetBody(body)
}

// writeJSONError writes an error payload.
func writeJSONError(ctx *fasthttp.RequestCtx, msg string) {
	body, _ := json.Marshal(ErrorResponse{Error: msg})
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.SetBody(body)
}
