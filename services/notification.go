package services

import (
	"fmt"
	"html/template"
	"log"
	"strings"

	"srif-api/config"
	"srif-api/models"
)

// StatusLabel carries the bilingual presentation of a review status used in
// notification emails.
type StatusLabel struct {
	En    string
	Ar    string
	Color string
	Icon  string
}

var statusLabels = map[string]StatusLabel{
	models.StatusApproved: {En: "Approved", Ar: "مقبول", Color: "#10b981", Icon: "✅"},
	models.StatusRejected: {En: "Rejected", Ar: "مرفوض", Color: "#ef4444", Icon: "❌"},
	models.StatusRevision: {En: "Needs Revision", Ar: "يحتاج مراجعة", Color: "#f59e0b", Icon: "🔄"},
	models.StatusPending:  {En: "Under Review", Ar: "قيد المراجعة", Color: "#3b82f6", Icon: "⏳"},
}

// LabelForStatus returns the display label for a status, falling back to the
// pending label for anything unknown.
func LabelForStatus(status string) StatusLabel {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return statusLabels[models.StatusPending]
}

// EmailResult reports the outcome of a best-effort delivery attempt.
type EmailResult struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}

// Notifier sends review-status emails through the injected mail transport.
// Delivery failures are logged and reported in the result, never returned as
// errors; a broken SMTP setup must not fail a status update.
type Notifier struct {
	mailer *config.Mailer
}

func NewNotifier(mailer *config.Mailer) *Notifier {
	return &Notifier{mailer: mailer}
}

// SendStatusEmail notifies the submitting author that their submission moved
// to newStatus. Returns sent=false without dialing when SMTP is not
// configured.
func (n *Notifier) SendStatusEmail(snap models.SubmissionSnapshot, track models.Track, newStatus, reviewerNotes string) EmailResult {
	if !n.mailer.Configured() {
		log.Println("SMTP not configured, skipping email notification")
		return EmailResult{Sent: false, Reason: "SMTP not configured"}
	}

	label := LabelForStatus(newStatus)
	subject := fmt.Sprintf("%s SRIF 2026 - Submission %s | الطلب %s", label.Icon, label.En, label.Ar)
	html := buildStatusEmailHTML(snap, track, newStatus, reviewerNotes)

	if err := n.mailer.Send([]string{snap.Email}, subject, html); err != nil {
		log.Printf("Failed to send status email to %s: %v", snap.Email, err)
		return EmailResult{Sent: false, Reason: err.Error()}
	}

	log.Printf("Status email sent to %s (submission %s)", snap.Email, snap.SubmissionID)
	return EmailResult{Sent: true}
}

func trackLabel(track models.Track) string {
	if track == models.TrackInnovation {
		return "Innovation / الابتكار"
	}
	return "Scientific Research / البحث العلمي"
}

// buildStatusEmailHTML renders the bilingual status email. All user-supplied
// values are escaped before interpolation.
func buildStatusEmailHTML(snap models.SubmissionSnapshot, track models.Track, status, reviewerNotes string) string {
	label := LabelForStatus(status)

	author := template.HTMLEscapeString(snap.AuthorName)
	title := template.HTMLEscapeString(snap.Title)
	code := template.HTMLEscapeString(snap.SubmissionID)

	var b strings.Builder

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background:#f1f5f9;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background:#f1f5f9;padding:40px 20px;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:16px;overflow:hidden;box-shadow:0 4px 24px rgba(0,0,0,0.08);">
<tr>
<td style="background:linear-gradient(135deg,#0a0f1a 0%%,#1e293b 100%%);padding:32px 40px;text-align:center;">
<h1 style="color:#00d4ff;margin:0;font-size:28px;letter-spacing:2px;">SRIF 2026</h1>
<p style="color:#94a3b8;margin:8px 0 0;font-size:13px;">Scientific Research &amp; Innovation Forum</p>
<p style="color:#94a3b8;margin:4px 0 0;font-size:13px;">منتدى البحث العلمي والابتكار</p>
</td>
</tr>
<tr><td style="padding:0;">
<div style="background:%s;padding:16px 40px;text-align:center;">
<span style="color:#ffffff;font-size:20px;font-weight:700;">%s Submission %s / الطلب %s</span>
</div>
</td></tr>
<tr><td style="padding:40px;">
<p style="color:#334155;font-size:16px;line-height:1.6;margin:0 0 20px;">Dear <strong>%s</strong>,</p>
<p style="color:#334155;font-size:15px;line-height:1.6;margin:0 0 24px;">Your submission status has been updated. Here are the details:</p>
<table width="100%%" cellpadding="0" cellspacing="0" style="background:#f8fafc;border-radius:12px;border:1px solid #e2e8f0;margin:0 0 24px;">
<tr><td style="padding:20px;">
<table width="100%%" cellpadding="4" cellspacing="0">
<tr><td style="color:#64748b;font-size:13px;padding:6px 0;width:140px;">Submission ID:</td><td style="color:#0f172a;font-size:14px;font-weight:600;padding:6px 0;">%s</td></tr>
<tr><td style="color:#64748b;font-size:13px;padding:6px 0;">Track / المسار:</td><td style="color:#0f172a;font-size:14px;padding:6px 0;">%s</td></tr>
<tr><td style="color:#64748b;font-size:13px;padding:6px 0;">Title / العنوان:</td><td style="color:#0f172a;font-size:14px;font-weight:600;padding:6px 0;">%s</td></tr>
<tr><td style="color:#64748b;font-size:13px;padding:6px 0;">Status / الحالة:</td><td style="padding:6px 0;"><span style="background:%s;color:#fff;padding:4px 14px;border-radius:20px;font-size:13px;font-weight:600;">%s / %s</span></td></tr>
</table>
</td></tr>
</table>`,
		label.Color, label.Icon, label.En, label.Ar,
		author, code, trackLabel(track), title,
		label.Color, label.En, label.Ar,
	)

	if strings.TrimSpace(reviewerNotes) != "" {
		notes := template.HTMLEscapeString(reviewerNotes)
		fmt.Fprintf(&b, `
<div style="background:#fffbeb;border-left:4px solid #f59e0b;padding:16px 20px;border-radius:0 8px 8px 0;margin:0 0 24px;">
<p style="color:#92400e;font-size:13px;margin:0 0 6px;font-weight:600;">Reviewer Notes / ملاحظات المراجع:</p>
<p style="color:#78350f;font-size:14px;margin:0;line-height:1.5;">%s</p>
</div>`, notes)
	}

	switch status {
	case models.StatusApproved:
		b.WriteString(`
<div style="background:#ecfdf5;border-left:4px solid #10b981;padding:16px 20px;border-radius:0 8px 8px 0;margin:0 0 24px;">
<p style="color:#065f46;font-size:14px;margin:0;line-height:1.5;">🎉 Congratulations! Your submission has been accepted. Further details about presentation scheduling will be sent soon.<br><br>تهانينا! تم قبول طلبك. سيتم إرسال تفاصيل إضافية حول جدولة العرض قريبًا.</p>
</div>`)
	case models.StatusRevision:
		b.WriteString(`
<div style="background:#fef3c7;border-left:4px solid #f59e0b;padding:16px 20px;border-radius:0 8px 8px 0;margin:0 0 24px;">
<p style="color:#92400e;font-size:14px;margin:0;line-height:1.5;">Please review the notes above and resubmit your updated abstract.<br><br>يرجى مراجعة الملاحظات أعلاه وإعادة تقديم ملخصك المحدث.</p>
</div>`)
	}

	b.WriteString(`
<p style="color:#64748b;font-size:14px;line-height:1.6;margin:24px 0 0;">If you have any questions, please contact us at: <a href="mailto:rs@um.edu.sa" style="color:#0ea5e9;">rs@um.edu.sa</a></p>
</td></tr>
<tr><td style="background:#0f172a;padding:24px 40px;text-align:center;">
<p style="color:#64748b;font-size:12px;margin:0;">© 2026 Scientific Research &amp; Innovation Forum | AlMaarefa University</p>
<p style="color:#475569;font-size:11px;margin:8px 0 0;">منتدى البحث العلمي والابتكار | جامعة المعرفة</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`)

	return b.String()
}

// SendContactEmail forwards a contact-form message to the forum inbox.
// Best-effort like the status email.
func (n *Notifier) SendContactEmail(to, name, email, subject, message string) EmailResult {
	if !n.mailer.Configured() {
		return EmailResult{Sent: false, Reason: "SMTP not configured"}
	}

	if strings.TrimSpace(subject) == "" {
		subject = "New contact message"
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:24px;background:#f9fafb;font-family:'Segoe UI',Tahoma,Arial,sans-serif;">
<div style="max-width:640px;margin:0 auto;background:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px;">
<h2 style="margin:0 0 16px;color:#0f172a;font-size:18px;">Contact form message</h2>
<p style="margin:0 0 8px;color:#334155;font-size:14px;"><strong>From:</strong> %s &lt;%s&gt;</p>
<p style="margin:0 0 16px;color:#334155;font-size:14px;"><strong>Subject:</strong> %s</p>
<p style="margin:0;color:#111827;font-size:15px;line-height:1.7;word-break:break-word;">%s</p>
</div>
</body>
</html>`,
		template.HTMLEscapeString(name),
		template.HTMLEscapeString(email),
		template.HTMLEscapeString(subject),
		strings.ReplaceAll(template.HTMLEscapeString(message), "\n", "<br />"),
	)

	if err := n.mailer.Send([]string{to}, "SRIF 2026 - "+subject, html); err != nil {
		log.Printf("Failed to send contact email: %v", err)
		return EmailResult{Sent: false, Reason: err.Error()}
	}
	return EmailResult{Sent: true}
}
