package utils

import (
	"fmt"
	"internhub/config"
	"log"
	"net/smtp"
)

func getEmailTemplate(title, bodyHTML string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 20px auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
			.header { background: #1a73e8; color: #ffffff; padding: 20px; text-align: center; }
			.content { padding: 30px; color: #333333; line-height: 1.6; }
			.footer { background: #f4f4f4; padding: 15px; text-align: center; font-size: 12px; color: #888888; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h2>InternHub</h2></div>
			<div class="content">
				<h3>%s</h3>
				%s
			</div>
			<div class="footer">This is an automated message from InternHub. Please do not reply.</div>
		</div>
	</body>
	</html>`, title, bodyHTML)
}

// SendEmail sends an HTML mail through the configured SMTP relay. Callers
// run it in a goroutine after commit; a failed mail is logged and dropped.
func SendEmail(to, subject, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	message := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
		htmlBody)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message); err != nil {
		log.Println("Failed to send email to", to, ":", err)
		return err
	}
	return nil
}

// SendEnrollmentApprovedEmail notifies the student their enrollment went
// through, with the internship window.
func SendEnrollmentApprovedEmail(to, name, internshipTitle, startDate, endDate string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! Your enrollment for <b>%s</b> has been approved.</p>
		<p>Your internship runs from <b>%s</b> to <b>%s</b>.</p>
		<p>Your offer letter and MOU are now available in your dashboard.</p>`,
		name, internshipTitle, startDate, endDate)
	SendEmail(to, "Enrollment Approved - "+internshipTitle, getEmailTemplate("Enrollment Approved!", body))
}

// SendEnrollmentRejectedEmail notifies the student of a rejected request.
func SendEnrollmentRejectedEmail(to, name, internshipTitle, note string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your enrollment request for <b>%s</b> was not approved.</p>
		<p>Note from the team: %s</p>`,
		name, internshipTitle, note)
	SendEmail(to, "Enrollment Update - "+internshipTitle, getEmailTemplate("Enrollment Request Rejected", body))
}

// SendCompletionReviewedEmail tells the student their completion review is
// done, with marks and grade.
func SendCompletionReviewedEmail(to, name, internshipTitle string, marks int, grade string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your internship <b>%s</b> has been reviewed.</p>
		<p>Marks: <b>%d / 50</b> &nbsp; Grade: <b>%s</b></p>
		<p>Your completion letter is now available in your dashboard.</p>`,
		name, internshipTitle, marks, grade)
	SendEmail(to, "Internship Reviewed - "+internshipTitle, getEmailTemplate("Completion Reviewed!", body))
}

// SendCertificateIssuedEmail delivers the verification code to the student.
func SendCertificateIssuedEmail(to, name, internshipTitle, verificationCode string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your certificate for <b>%s</b> has been issued.</p>
		<p>Verification code: <b>%s</b></p>
		<p>Anyone can verify your certificate with this code on the InternHub portal.</p>`,
		name, internshipTitle, verificationCode)
	SendEmail(to, "Certificate Issued - "+internshipTitle, getEmailTemplate("Certificate Issued!", body))
}

// SendWithdrawalDecisionEmail reports the admin decision on a withdrawal
// request.
func SendWithdrawalDecisionEmail(to, name, internshipTitle string, approved bool, note string) {
	decision := "approved"
	extra := "<p>Your relieving letter and partial completion letter are now available.</p>"
	if !approved {
		decision = "not approved"
		extra = "<p>You may submit a new withdrawal request if needed.</p>"
	}
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your withdrawal request for <b>%s</b> has been %s.</p>
		<p>Note from the team: %s</p>
		%s`,
		name, internshipTitle, decision, note, extra)
	SendEmail(to, "Withdrawal Update - "+internshipTitle, getEmailTemplate("Withdrawal Request Update", body))
}
