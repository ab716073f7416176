package grpc

import (
	"context"
	"errors"

	pb "github.com/godilite/score-report/api/v1"
	"github.com/godilite/score-report/internal/reference"
	"github.com/godilite/score-report/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCHandlers adapts ReportService to the ScoreReport service. Report
// building never blocks, so deadlines are left to the caller and the
// transport; a request whose context is already done is rejected up front.
type GRPCHandlers struct {
	pb.UnimplementedScoreReportServer
	report ReportService
	logger *zap.Logger
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(report ReportService, logger *zap.Logger) *GRPCHandlers {
	if report == nil {
		panic("nil ReportService provided to NewGRPCHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandlers{
		report: report,
		logger: logger.Named("grpc-handler"),
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		s.logger.Info("invalid scores", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, reference.ErrConfiguration):
		s.logger.Error("reference data misconfigured", zap.String("op", op), zap.Error(err))
		return status.Error(codes.FailedPrecondition, "reference data is misconfigured")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) BuildReport(ctx context.Context, req *pb.BuildReportRequest) (*pb.BuildReportResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.handleError(ctx, "BuildReport", err)
	}

	report, err := s.report.BuildReport(toSubjectScores(req.GetScores()))
	if err != nil {
		return nil, s.handleError(ctx, "BuildReport", err)
	}

	return &pb.BuildReportResponse{Rows: toProtoRows(report.Rows)}, nil
}

func (s *GRPCHandlers) Classify(ctx context.Context, req *pb.ClassifyRequest) (*pb.ClassifyResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.handleError(ctx, "Classify", err)
	}

	rec := s.report.Classify(fromProtoRows(req.GetRows()))

	return &pb.ClassifyResponse{Above: rec.Above, Below: rec.Below}, nil
}

func (s *GRPCHandlers) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.handleError(ctx, "Analyze", err)
	}

	analysis, err := s.report.Analyze(toSubjectScores(req.GetScores()))
	if err != nil {
		return nil, s.handleError(ctx, "Analyze", err)
	}

	return toProtoAnalysis(analysis), nil
}
