package basicstats

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/goccy/go-json"
	fiber "github.com/gofiber/fiber/v3"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/basicstats/internal/constants"
	"github.com/hyp3rd/basicstats/internal/libs/serializer"
	"github.com/hyp3rd/basicstats/internal/sentinel"
)

// ManagementHTTPOption configures the management HTTP server.
type ManagementHTTPOption func(*ManagementHTTPServer)

// ManagementHTTPServer holds Fiber app and settings.
type ManagementHTTPServer struct {
	addr         string
	app          *fiber.App
	readTimeout  time.Duration
	writeTimeout time.Duration
	authFunc     func(fiber.Ctx) error
	serializer   string
	serializers  *serializer.Registry
	ln           net.Listener
	started      bool
}

// WithMgmtAuth sets an auth function (return error to block).
func WithMgmtAuth(fn func(fiber.Ctx) error) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.authFunc = fn }
}

// WithMgmtReadTimeout sets read timeout.
func WithMgmtReadTimeout(d time.Duration) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.readTimeout = d }
}

// WithMgmtWriteTimeout sets write timeout.
func WithMgmtWriteTimeout(d time.Duration) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.writeTimeout = d }
}

// WithMgmtSerializer sets the serializer used for reports when the request has no `format` query.
func WithMgmtSerializer(name string) ManagementHTTPOption {
	return func(s *ManagementHTTPServer) { s.serializer = name }
}

// summarizeRequest is the body accepted by the summarize and compute endpoints.
type summarizeRequest struct {
	Sample []float64 `json:"sample"`
}

// computeResponse is the body returned by the compute endpoint.
type computeResponse struct {
	Statistic string  `json:"statistic" msgpack:"statistic" codec:"statistic"`
	Value     float64 `json:"value"     msgpack:"value"     codec:"value"`
	Defined   bool    `json:"defined"   msgpack:"defined"   codec:"defined"`
}

// NewManagementHTTPServer builds an HTTP server holder (lazy start).
func NewManagementHTTPServer(addr string, opts ...ManagementHTTPOption) *ManagementHTTPServer {
	srv := &ManagementHTTPServer{
		addr:         addr,
		readTimeout:  constants.DefaultMgmtReadTimeout,
		writeTimeout: constants.DefaultMgmtWriteTimeout,
		serializer:   constants.DefaultSerializer,
		serializers:  serializer.NewSerializerRegistry(),
	}
	for _, opt := range opts { // apply options
		opt(srv)
	}

	srv.app = fiber.New(fiber.Config{
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return srv
}

// Start launches listener (idempotent). Caller provides the service for handler wiring.
func (s *ManagementHTTPServer) Start(ctx context.Context, svc Service) error {
	if s.started { // idempotent
		return nil
	}

	// reject a bad default serializer before binding
	_, err := s.serializers.New(s.serializer)
	if err != nil {
		return err
	}

	s.mountRoutes(ctx, svc)

	lc := net.ListenConfig{}

	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return ewrap.Wrap(err, "mgmt listen")
	}

	s.ln = ln

	go func() {
		_ = s.app.Listener(ln)
	}()

	s.started = true

	return nil
}

// Address returns the bound address (useful when passing ":0" for ephemeral port). Empty if not started yet.
func (s *ManagementHTTPServer) Address() string {
	if s.ln == nil {
		return ""
	}

	return s.ln.Addr().String()
}

// Shutdown stops the server.
func (s *ManagementHTTPServer) Shutdown(ctx context.Context) error {
	if !s.started {
		return nil
	}

	ch := make(chan error, 1)

	go func() {
		ch <- s.app.Shutdown()
	}()

	select {
	case <-ctx.Done():
		return sentinel.ErrMgmtHTTPShutdownTimeout
	case err := <-ch:
		return err
	}
}

// mountRoutes registers endpoints onto the Fiber app.
func (s *ManagementHTTPServer) mountRoutes(ctx context.Context, svc Service) {
	useAuth := s.wrapAuth

	s.app.Get("/health", useAuth(func(fiberCtx fiber.Ctx) error { return fiberCtx.SendString("ok") }))
	s.app.Get("/statistics", useAuth(func(fiberCtx fiber.Ctx) error {
		return fiberCtx.JSON(fiber.Map{"statistics": svc.Statistics()})
	}))
	s.app.Post("/summarize", useAuth(func(fiberCtx fiber.Ctx) error {
		return s.handleSummarize(ctx, fiberCtx, svc)
	}))
	s.app.Post("/compute/:name", useAuth(func(fiberCtx fiber.Ctx) error {
		return s.handleCompute(ctx, fiberCtx, svc)
	}))
}

// wrapAuth returns an auth-wrapped handler if authFunc provided.
func (s *ManagementHTTPServer) wrapAuth(handler fiber.Handler) fiber.Handler {
	if s.authFunc == nil {
		return handler
	}

	return func(fiberCtx fiber.Ctx) error {
		authErr := s.authFunc(fiberCtx)
		if authErr != nil {
			return authErr
		}

		return handler(fiberCtx)
	}
}

func (s *ManagementHTTPServer) handleSummarize(ctx context.Context, fiberCtx fiber.Ctx, svc Service) error {
	ser, err := s.serializers.New(fiberCtx.Query("format", s.serializer))
	if err != nil {
		return fiberCtx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sample, err := decodeSample(fiberCtx.Body())
	if err != nil {
		return fiberCtx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := svc.Summarize(ctx, sample)
	if err != nil {
		return err
	}

	return send(fiberCtx, ser, report)
}

func (s *ManagementHTTPServer) handleCompute(ctx context.Context, fiberCtx fiber.Ctx, svc Service) error {
	ser, err := s.serializers.New(fiberCtx.Query("format", s.serializer))
	if err != nil {
		return fiberCtx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sample, err := decodeSample(fiberCtx.Body())
	if err != nil {
		return fiberCtx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	name := fiberCtx.Params("name")

	value, ok, err := svc.Compute(ctx, name, sample)
	if errors.Is(err, sentinel.ErrStatisticNotFound) {
		return fiberCtx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	if err != nil {
		return err
	}

	return send(fiberCtx, ser, computeResponse{Statistic: name, Value: value, Defined: ok})
}

// decodeSample reads the sample out of a request body.
func decodeSample(body []byte) ([]float64, error) {
	if len(body) == 0 {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "body")
	}

	var req summarizeRequest

	err := json.Unmarshal(body, &req)
	if err != nil {
		return nil, ewrap.Wrap(sentinel.ErrInvalidSample, err.Error())
	}

	return req.Sample, nil
}

// send encodes v with ser. Values JSON can't carry (NaN, infinities) get a 422.
func send(fiberCtx fiber.Ctx, ser serializer.ISerializer, v any) error {
	data, err := ser.Marshal(v)
	if err != nil {
		return fiberCtx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	fiberCtx.Set(fiber.HeaderContentType, ser.ContentType())

	return fiberCtx.Send(data)
}
