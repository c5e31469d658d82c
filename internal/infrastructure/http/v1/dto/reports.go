package dto

import "bakhaar/internal/domain/reports"

// ReportQuery binds report filter parameters.
// Dates accept "yyyy-mm-dd" or "dd/mm/yyyy"; user "" or "ALL" means everyone.
type ReportQuery struct {
	Type string `form:"type" binding:"required"`
	From string `form:"from"`
	To   string `form:"to"`
	User string `form:"user"`
}

// ToRequest converts the query to a domain report request.
func (q ReportQuery) ToRequest() reports.Request {
	return reports.Request{
		Type: reports.Type(q.Type),
		From: q.From,
		To:   q.To,
		User: q.User,
	}
}
