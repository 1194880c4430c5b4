package forum

import (
	"civicboard/internal/models"

	"github.com/google/uuid"
)

// FileReport records a report against a topic or reply. Reports are
// append-only and repeated reports from the same user against the same
// content are kept as-is: a backlog of duplicates is triage signal.
// Self-reports are rejected.
func (e *Engine) FileReport(actor Identity, req models.CreateReportRequest) (*models.Report, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	if !validReason(req.Reason) {
		return nil, errValidation("invalid report reason %q", req.Reason)
	}

	var authorID string
	switch req.ContentType {
	case models.ReportContentTopic:
		topic, err := e.store.Topic(req.ContentID)
		if err != nil {
			return nil, err
		}
		if topic == nil {
			return nil, errNotFound("topic not found")
		}
		authorID = topic.AuthorID
	case models.ReportContentReply:
		reply, err := e.store.Reply(req.ContentID)
		if err != nil {
			return nil, err
		}
		if reply == nil {
			return nil, errNotFound("reply not found")
		}
		authorID = reply.AuthorID
	default:
		return nil, errValidation("invalid content type %q", req.ContentType)
	}

	if authorID == actor.ID {
		return nil, errForbidden("you cannot report your own content")
	}

	report := &models.Report{
		ID:          uuid.New().String(),
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		ReporterID:  actor.ID,
		Reason:      req.Reason,
		CreatedAt:   e.now(),
		Status:      models.ReportStatusPending,
	}
	if err := e.store.SaveReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns the report backlog. Moderators only.
func (e *Engine) ListReports(actor Identity) ([]models.Report, error) {
	if !actor.IsModerator() {
		return nil, errForbidden("only moderators can view reports")
	}
	return e.store.Reports()
}

// UpdateReportStatus transitions a report's triage state. Moderators only.
func (e *Engine) UpdateReportStatus(actor Identity, id, status string) (*models.Report, error) {
	if !actor.IsModerator() {
		return nil, errForbidden("only moderators can triage reports")
	}
	switch status {
	case models.ReportStatusPending, models.ReportStatusReviewed,
		models.ReportStatusResolved, models.ReportStatusDismissed:
	default:
		return nil, errValidation("invalid report status %q", status)
	}

	report, err := e.store.Report(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, errNotFound("report not found")
	}
	report.Status = status
	if err := e.store.SaveReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

func validReason(reason string) bool {
	for _, r := range models.ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}
