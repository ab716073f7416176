package grpc

import (
	pb "github.com/godilite/score-report/api/v1"
	"github.com/godilite/score-report/internal/service"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toSubjectScores(in []*pb.Score) []service.SubjectScore {
	out := make([]service.SubjectScore, len(in))
	for i, s := range in {
		out[i] = service.SubjectScore{
			Subject: s.GetSubject(),
			Score:   s.GetScore(),
		}
	}
	return out
}

func toProtoRows(rows []service.AnalysisRow) []*pb.ReportRow {
	out := make([]*pb.ReportRow, len(rows))
	for i, r := range rows {
		out[i] = &pb.ReportRow{
			Subject:        r.Subject,
			StudentScore:   r.StudentScore,
			ClassAverage:   r.ClassAverage,
			Difference:     r.Difference,
			PercentileRank: r.PercentileRank,
		}
	}
	return out
}

func fromProtoRows(rows []*pb.ReportRow) service.AnalysisReport {
	report := service.AnalysisReport{Rows: make([]service.AnalysisRow, 0, len(rows))}
	for _, r := range rows {
		if r == nil {
			continue
		}
		report.Rows = append(report.Rows, service.AnalysisRow{
			Subject:        r.GetSubject(),
			StudentScore:   r.GetStudentScore(),
			ClassAverage:   r.ClassAverage,
			Difference:     r.Difference,
			PercentileRank: r.PercentileRank,
		})
	}
	return report
}

func toProtoAnalysis(a service.Analysis) *pb.AnalyzeResponse {
	resp := &pb.AnalyzeResponse{
		Rows:        toProtoRows(a.Report.Rows),
		Above:       a.Recommendation.Above,
		Below:       a.Recommendation.Below,
		GeneratedAt: timestamppb.New(a.GeneratedAt),
	}
	if a.Summary != nil {
		resp.Summary = &pb.Summary{
			Count: int32(a.Summary.Count),
			Mean:  a.Summary.Mean,
			Max:   a.Summary.Max,
			Min:   a.Summary.Min,
		}
	}
	return resp
}
