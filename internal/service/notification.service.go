package service

import (
	"bytes"
	"fairvalue/internal/domain"
	"fairvalue/internal/repository"
	"fmt"
	"html/template"
)

// NotificationService emails the requester when an async run finishes.
// It renders the summary but does not compute anything - the report
// arrives fully assembled.
type NotificationService interface {
	SendCompletionEmail(report *domain.ValuationReport) error

	// GenerateCompletionEmail returns the subject and HTML body without
	// sending, for previews and tests.
	GenerateCompletionEmail(report *domain.ValuationReport) (string, string, error)
}

type notificationServiceHandler struct {
	EmailRepository repository.EmailRepository
}

func NewNotificationService(
	emailRepository repository.EmailRepository,
) NotificationService {
	return &notificationServiceHandler{
		EmailRepository: emailRepository,
	}
}

var completionEmailTemplate = template.Must(template.New("completion").Parse(`<html>
<body style="font-family: sans-serif; color: #1a1a1a;">
<h2>Valuation {{if .Failed}}failed{{else}}complete{{end}}: {{.CompanyName}}</h2>
{{if .Failed}}
<p>{{.Error}}</p>
{{else}}
<p>Blended fair value: <strong>${{.FairValue}}</strong></p>
<p>Range: ${{.RangeLow}} &ndash; ${{.RangeHigh}}</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Method</th><th>Weight</th><th>Rationale</th></tr>
{{range .Weights}}
<tr><td>{{.Method}}</td><td>{{.Percent}}</td><td>{{.Rationale}}</td></tr>
{{end}}
</table>
{{end}}
<p style="color: #777; font-size: 12px;">Report {{.ReportID}}</p>
</body>
</html>`))

type completionEmailWeight struct {
	Method    string
	Percent   string
	Rationale string
}

type completionEmailData struct {
	CompanyName string
	Failed      bool
	Error       string
	FairValue   string
	RangeLow    string
	RangeHigh   string
	Weights     []completionEmailWeight
	ReportID    string
}

func (h *notificationServiceHandler) SendCompletionEmail(report *domain.ValuationReport) error {
	to := report.Request.NotifyEmail
	if to == "" {
		return nil
	}

	subject, body, err := h.GenerateCompletionEmail(report)
	if err != nil {
		return err
	}

	if err := h.EmailRepository.SendEmail(to, subject, body); err != nil {
		return fmt.Errorf("failed to send completion email: %w", err)
	}
	return nil
}

func (h *notificationServiceHandler) GenerateCompletionEmail(report *domain.ValuationReport) (string, string, error) {
	data := completionEmailData{
		CompanyName: report.CompanyName,
		ReportID:    report.ID.String(),
	}

	var subject string
	if report.Valuation == nil || report.Error != "" {
		data.Failed = true
		data.Error = report.Error
		if data.Error == "" {
			data.Error = "The valuation could not be completed."
		}
		subject = fmt.Sprintf("Valuation failed: %s", report.CompanyName)
	} else {
		data.FairValue = withCommas(report.Valuation.FairValue)
		data.RangeLow = withCommas(report.Valuation.RangeLow)
		data.RangeHigh = withCommas(report.Valuation.RangeHigh)
		for _, w := range report.Valuation.Weights {
			data.Weights = append(data.Weights, completionEmailWeight{
				Method:    w.Method,
				Percent:   fmt.Sprintf("%.0f%%", w.Weight*100),
				Rationale: w.Rationale,
			})
		}
		subject = fmt.Sprintf("Valuation complete: %s at $%s", report.CompanyName, data.FairValue)
	}

	var body bytes.Buffer
	if err := completionEmailTemplate.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to render completion email: %w", err)
	}
	return subject, body.String(), nil
}
